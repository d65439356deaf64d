package config

// CLIOverrides holds command-line flag overrides. A nil field was not given
// on the command line and leaves lower-precedence sources untouched.
type CLIOverrides struct {
	URL          *string
	Verify       *bool
	CABundle     *string
	LoginCert    *string
	LoginCertKey *string
	Username     *string
	PasswordFile *string
	TokenFile    *string
	BasePath     *string
	SafeWrite    *bool
	SelectConfig *string
}

// Map returns the explicit overrides as Settings, skipping unset fields.
func (o *CLIOverrides) Map() Settings {
	out := Settings{}
	if o == nil {
		return out
	}

	setIfGiven(out, "url", o.URL)
	setIfGiven(out, "verify", o.Verify)
	setIfGiven(out, "ca_bundle", o.CABundle)
	setIfGiven(out, "login_cert", o.LoginCert)
	setIfGiven(out, "login_cert_key", o.LoginCertKey)
	setIfGiven(out, "username", o.Username)
	setIfGiven(out, "password_file", o.PasswordFile)
	setIfGiven(out, "token_file", o.TokenFile)
	setIfGiven(out, "base_path", o.BasePath)
	setIfGiven(out, "safe_write", o.SafeWrite)
	setIfGiven(out, "select_config", o.SelectConfig)

	return out
}

func setIfGiven[T any](out Settings, name string, value *T) {
	if value != nil {
		out[name] = *value
	}
}
