package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/vault-cli/internal/application"
	"github.com/eugenenazirov/vault-cli/internal/config"
	"github.com/eugenenazirov/vault-cli/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "vault-cli: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, resolves settings and writes the selected command's output.
// opts are forwarded to the resolver (primarily for tests).
func run(args []string, stdout io.Writer, opts ...config.Option) error {
	kingpinApp := kingpin.New("vault-cli", "Resolve vault-cli settings from config files, environment and flags")
	verbosity := kingpinApp.Flag("verbose", "Increase log verbosity (repeat for debug)").Short('v').Counter()

	var overrides config.CLIOverrides
	apply := []func(){
		optionalString(kingpinApp, "url", "Vault address", &overrides.URL),
		optionalBool(kingpinApp, "verify", "Verify the server certificate (--no-verify to disable)", &overrides.Verify),
		optionalString(kingpinApp, "ca-bundle", "Path to a CA bundle", &overrides.CABundle),
		optionalString(kingpinApp, "login-cert", "Client certificate for TLS login", &overrides.LoginCert),
		optionalString(kingpinApp, "login-cert-key", "Key of the client certificate", &overrides.LoginCertKey),
		optionalString(kingpinApp, "username", "Username for userpass authentication", &overrides.Username),
		optionalString(kingpinApp, "password-file", "File holding the password, - for stdin", &overrides.PasswordFile),
		optionalString(kingpinApp, "token-file", "File holding the token, - for stdin", &overrides.TokenFile),
		optionalString(kingpinApp, "base-path", "Prefix prepended to every secret path", &overrides.BasePath),
		optionalBool(kingpinApp, "safe-write", "Refuse to overwrite existing secrets", &overrides.SafeWrite),
		optionalString(kingpinApp, "select-config", "Named profile from the configs block", &overrides.SelectConfig),
	}

	settingsCmd := kingpinApp.Command("settings", "Print the resolved settings as YAML").Default()
	showSecrets := settingsCmd.Flag("show-secrets", "Print password and token unmasked").Bool()
	filesCmd := kingpinApp.Command("config-files", "List candidate config files, lowest priority first")

	command, err := kingpinApp.Parse(keepStdinPaths(args))
	if err != nil {
		return err
	}
	for _, fn := range apply {
		fn()
	}

	logger, err := logging.New(*verbosity)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := application.New(logger, opts...)

	switch command {
	case filesCmd.FullCommand():
		return app.WriteConfigFiles(stdout)
	case settingsCmd.FullCommand():
		settings, err := app.Settings(&overrides)
		if err != nil {
			return err
		}
		logger.Info("writing resolved settings", zap.Bool("show_secrets", *showSecrets))
		return app.WriteSettings(stdout, settings, *showSecrets)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// optionalString registers a string flag whose value is copied into target
// only when the user passed it.
func optionalString(app *kingpin.Application, name, help string, target **string) func() {
	var set bool
	value := app.Flag(name, help).IsSetByUser(&set).String()
	return func() {
		if set {
			*target = value
		}
	}
}

// optionalBool is optionalString for negatable boolean flags.
func optionalBool(app *kingpin.Application, name, help string, target **bool) func() {
	var set bool
	value := app.Flag(name, help).IsSetByUser(&set).Bool()
	return func() {
		if set {
			*target = value
		}
	}
}

// stdinPathFlags accept "-" to read the value from standard input.
var stdinPathFlags = []string{"--password-file", "--token-file"}

// keepStdinPaths rewrites "--token-file -" as "--token-file=-". kingpin
// otherwise treats a lone "-" after a flag as an empty value.
func keepStdinPaths(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if slices.Contains(stdinPathFlags, arg) && i+1 < len(args) && args[i+1] == config.StdinPath {
			out = append(out, arg+"="+config.StdinPath)
			i++
			continue
		}
		out = append(out, arg)
	}
	return out
}
