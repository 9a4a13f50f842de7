package groupcfg

import (
	"fmt"
	"regexp"
)

var settingKeyRE = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// Declaration describes one configuration key before validation: its default
// value and, optionally, per-group values that replace the default while the
// named group is active.
type Declaration struct {
	Key     string
	Default any
	Groups  map[string]any
}

// Setting is the validated, immutable form of a Declaration. All of its
// concrete values share a single kind; None is permitted anywhere and marks
// the value as unset.
type Setting struct {
	key    string
	def    Value
	groups map[string]Value
	kind   Kind
}

// newSetting validates a declaration and infers the setting's type family.
// The family is the default's kind when concrete, otherwise the kind shared
// by the group values, otherwise KindNone.
func newSetting(d Declaration) (*Setting, error) {
	if !settingKeyRE.MatchString(d.Key) {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidKey, d.Key)
	}

	def, err := ValueOf(d.Default)
	if err != nil {
		return nil, fmt.Errorf("setting %q: %w", d.Key, err)
	}

	s := &Setting{
		key:    d.Key,
		def:    def,
		groups: make(map[string]Value, len(d.Groups)),
		kind:   def.Kind(),
	}

	for _, group := range sortedKeys(d.Groups) {
		v, err := ValueOf(d.Groups[group])
		if err != nil {
			return nil, fmt.Errorf("setting %q, group %q: %w", d.Key, group, err)
		}
		if !v.IsNone() {
			if s.kind == KindNone {
				s.kind = v.Kind()
			} else if v.Kind() != s.kind {
				return nil, fmt.Errorf(
					"setting %q, group %q: %w: got %s, want %s",
					d.Key, group, ErrTypeMismatch, v.Kind(), s.kind,
				)
			}
		}
		s.groups[group] = v
	}

	return s, nil
}

// Key returns the setting's key.
func (s *Setting) Key() string { return s.key }

// Default returns the declared default value.
func (s *Setting) Default() Value { return s.def }

// Type returns the setting's inferred type family. KindNone means no
// concrete value exists anywhere in the declaration.
func (s *Setting) Type() Kind { return s.kind }

// GroupValue returns the value declared for the named group, if any.
func (s *Setting) GroupValue(group string) (Value, bool) {
	v, ok := s.groups[group]
	return v, ok
}
