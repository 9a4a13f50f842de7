package groupcfg

import (
	"errors"
	"testing"
)

func newArgsRegistry(t *testing.T) *Registry {
	t.Helper()

	reg, err := New([]string{"foo", "bar"}, []Declaration{
		{Key: "S1", Default: 10, Groups: map[string]any{"foo": 20}},
		{Key: "SECOND_OPTION", Default: true, Groups: map[string]any{"bar": false}},
		{Key: "S3", Default: "a", Groups: map[string]any{"foo": "b", "bar": "c"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return reg
}

func TestParseArgsValues(t *testing.T) {
	t.Parallel()

	reg := newArgsRegistry(t)

	if err := reg.ParseArgs([]string{"--s1", "30", "--second-option", "false"}, ""); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}

	if got := reg.Int("S1"); got != 30 {
		t.Fatalf("S1: got %d, want 30", got)
	}
	if got := reg.Bool("SECOND_OPTION"); got != false {
		t.Fatalf("SECOND_OPTION: got %v, want false", got)
	}
	if got := reg.String("S3"); got != "a" {
		t.Fatalf("S3: got %q, want a", got)
	}
}

func TestParseArgsGroup(t *testing.T) {
	t.Parallel()

	reg := newArgsRegistry(t)

	if err := reg.ParseArgs([]string{"--configuration", "foo"}, ""); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}

	if got := reg.ActiveGroup(); got != "foo" {
		t.Fatalf("active group: got %q, want foo", got)
	}
	if got := reg.Int("S1"); got != 20 {
		t.Fatalf("S1: got %d, want 20", got)
	}
	if got := reg.Bool("SECOND_OPTION"); got != true {
		t.Fatalf("SECOND_OPTION: got %v, want true", got)
	}
	if got := reg.String("S3"); got != "b" {
		t.Fatalf("S3: got %q, want b", got)
	}
}

func TestParseArgsShortGroupFlag(t *testing.T) {
	t.Parallel()

	reg := newArgsRegistry(t)

	if err := reg.ParseArgs([]string{"-c", "bar"}, ""); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if got := reg.ActiveGroup(); got != "bar" {
		t.Fatalf("active group: got %q, want bar", got)
	}
}

func TestParseArgsGroupAndValues(t *testing.T) {
	t.Parallel()

	reg := newArgsRegistry(t)

	if err := reg.ParseArgs([]string{"--s3", "d", "--configuration", "foo"}, ""); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}

	if got := reg.Int("S1"); got != 20 {
		t.Fatalf("S1: got %d, want 20", got)
	}
	if got := reg.String("S3"); got != "d" {
		t.Fatalf("explicit value must win over group, got %q", got)
	}
}

func TestParseArgsResetsGroupSelection(t *testing.T) {
	t.Parallel()

	reg := newArgsRegistry(t)

	if err := reg.SetGroup("foo"); err != nil {
		t.Fatalf("SetGroup: %v", err)
	}
	if err := reg.ParseArgs([]string{}, ""); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if got := reg.ActiveGroup(); got != DefaultGroup {
		t.Fatalf("parse without -c must restore the default marker, got %q", got)
	}
}

func TestParseArgsBoolTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "Lower", token: "false", want: false},
		{name: "Upper", token: "TRUE", want: true},
		{name: "Mixed", token: "False", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reg := newArgsRegistry(t)
			if err := reg.ParseArgs([]string{"--second-option", tt.token}, ""); err != nil {
				t.Fatalf("ParseArgs: %v", err)
			}
			if got := reg.Bool("SECOND_OPTION"); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseArgsBoolInvalidToken(t *testing.T) {
	t.Parallel()

	reg := newArgsRegistry(t)

	err := reg.ParseArgs([]string{"--second-option", "yes"}, "")
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestParseArgsInvalidInput(t *testing.T) {
	t.Parallel()

	reg := newArgsRegistry(t)

	if err := reg.ParseArgs([]string{"--no-such-flag", "1"}, ""); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
	if err := reg.ParseArgs([]string{"--s1", "notanint"}, ""); err == nil {
		t.Fatalf("expected error for malformed integer")
	}
	if err := reg.ParseArgs([]string{"--configuration", "nope"}, ""); err == nil {
		t.Fatalf("expected error for unknown group choice")
	}
}

func TestParseArgsInferredTypeFromGroup(t *testing.T) {
	t.Parallel()

	reg, err := New([]string{"g1"}, []Declaration{
		{Key: "WIDTH", Default: nil, Groups: map[string]any{"g1": 7}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := reg.ParseArgs([]string{"--width", "12"}, ""); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if got := reg.Int("WIDTH"); got != 12 {
		t.Fatalf("WIDTH: got %d, want 12", got)
	}
}

func TestParseArgsAmbiguousType(t *testing.T) {
	t.Parallel()

	reg, err := New(nil, []Declaration{{Key: "MYSTERY", Default: nil}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Unsupplied: stays None, no error.
	if err := reg.ParseArgs([]string{}, ""); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	v, err := reg.Get("MYSTERY")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !v.IsNone() {
		t.Fatalf("expected None, got %v", v)
	}

	// Supplied with no inferable type: rejected.
	if err := reg.ParseArgs([]string{"--mystery", "5"}, ""); !errors.Is(err, ErrAmbiguousType) {
		t.Fatalf("expected ErrAmbiguousType, got %v", err)
	}
}

func TestParseArgsLayersUnderLaterOverrides(t *testing.T) {
	t.Parallel()

	reg := newArgsRegistry(t)

	if err := reg.ParseArgs([]string{"--s1", "5"}, ""); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if got := reg.Int("S1"); got != 5 {
		t.Fatalf("S1: got %d, want 5", got)
	}

	handle, err := reg.Override(Overrides{"S1": 7})
	if err != nil {
		t.Fatalf("Override: %v", err)
	}
	if got := reg.Int("S1"); got != 7 {
		t.Fatalf("later override must win, got %d", got)
	}

	handle.Release()
	if got := reg.Int("S1"); got != 5 {
		t.Fatalf("command line layer must survive release, got %d", got)
	}
}

func TestParseArgsNoGroupFlagWithoutGroups(t *testing.T) {
	t.Parallel()

	reg, err := New(nil, []Declaration{{Key: "A", Default: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.ParseArgs([]string{"--configuration", "foo"}, ""); err == nil {
		t.Fatalf("expected unknown flag error when grouping is disabled")
	}
}

func TestFlagName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want string
	}{
		{key: "S1", want: "s1"},
		{key: "SECOND_OPTION", want: "second-option"},
		{key: "NUM_LAYERS", want: "num-layers"},
	}

	for _, tt := range tests {
		if got := flagName(tt.key); got != tt.want {
			t.Fatalf("flagName(%q): got %q, want %q", tt.key, got, tt.want)
		}
	}
}
