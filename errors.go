package groupcfg

import "errors"

var (
	// ErrTypeMismatch is returned when a declared or overridden value's type
	// conflicts with the type established by a setting's other values.
	ErrTypeMismatch = errors.New("value type conflicts with the setting's declared type")
	// ErrUnknownGroup is returned when a referenced group name is not in the
	// registry's group list.
	ErrUnknownGroup = errors.New("group is not declared")
	// ErrDuplicateGroup is returned when the group list repeats a name or
	// uses the reserved default marker.
	ErrDuplicateGroup = errors.New("duplicate group name")
	// ErrUnknownSetting is returned when an override or a command line value
	// names a key with no matching declaration.
	ErrUnknownSetting = errors.New("no setting declared with this key")
	// ErrDuplicateSetting is returned when two declarations share a key.
	ErrDuplicateSetting = errors.New("setting key declared more than once")
	// ErrAmbiguousType is returned when a command line value arrives for a
	// setting whose scalar type cannot be inferred from any declared value.
	ErrAmbiguousType = errors.New("cannot infer a scalar type for the setting")
	// ErrInvalidKey is returned when a setting key does not match the
	// required [A-Z][A-Z0-9_]* form.
	ErrInvalidKey = errors.New("setting keys must match [A-Z][A-Z0-9_]*")
)
