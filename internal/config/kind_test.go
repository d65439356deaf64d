package config

import "testing"

func TestKindOf(t *testing.T) {
	t.Parallel()

	var nilMap map[string]any
	var nilPtr *string
	text := "x"

	tests := []struct {
		name  string
		value any
		want  Kind
	}{
		{name: "nil", value: nil, want: KindNull},
		{name: "nil pointer", value: nilPtr, want: KindNull},
		{name: "string", value: "prod", want: KindScalar},
		{name: "pointer to string", value: &text, want: KindScalar},
		{name: "bool", value: false, want: KindScalar},
		{name: "int", value: 3, want: KindScalar},
		{name: "sequence", value: []any{"a"}, want: KindSequence},
		{name: "string map", value: map[string]any{}, want: KindMapping},
		{name: "nil map", value: nilMap, want: KindMapping},
		{name: "settings", value: Settings{}, want: KindMapping},
		{name: "interface map", value: map[any]any{1: "a"}, want: KindMapping},
	}

	for _, tc := range tests {
		if got := KindOf(tc.value); got != tc.want {
			t.Fatalf("%s: KindOf() = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestIsFalsy(t *testing.T) {
	t.Parallel()

	falsy := []any{nil, false, "", 0, 0.0, []any{}, map[string]any{}}
	for _, v := range falsy {
		if !isFalsy(v) {
			t.Fatalf("expected %#v to be falsy", v)
		}
	}

	truthy := []any{true, "prod", 1, []any{"a"}, map[string]any{"a": 1}}
	for _, v := range truthy {
		if isFalsy(v) {
			t.Fatalf("expected %#v to be truthy", v)
		}
	}
}

func TestAsMappingConvertsKeys(t *testing.T) {
	t.Parallel()

	got, ok := asMapping(map[any]any{1: "one", "two": 2})
	if !ok {
		t.Fatalf("expected a mapping")
	}
	if got["1"] != "one" || got["two"] != 2 {
		t.Fatalf("unexpected conversion: %v", got)
	}
	if _, ok := asMapping("scalar"); ok {
		t.Fatalf("expected scalar not to convert")
	}
}
