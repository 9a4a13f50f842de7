package groupcfg

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultGroup is the marker reported by ActiveGroup when no group is
// selected. It is never a member of the declared group list; it is the
// "default" choice exposed by the --configuration flag.
const DefaultGroup = "default"

// Registry holds one logical configuration: the declared settings, the list
// of valid group names, the currently active group, and the override stack.
// Every read resolves the effective value from that state, so group and
// override changes are observed immediately.
//
// A Registry is not safe for concurrent use; callers that mutate it from
// multiple goroutines must provide their own locking.
type Registry struct {
	name        string
	groups      []string
	order       []string
	settings    map[string]*Setting
	activeGroup string
	overrides   []*overrideLayer
	logger      *zap.Logger
}

// New builds a registry from an ordered list of declarations. The order
// determines flag order in help text and key order in rendered output.
//
// Construction fails when the group list repeats a name or uses the reserved
// default marker, when two declarations share a key, when a declaration's
// values disagree on type, or when a declaration references a group absent
// from the group list.
func New(groups []string, decls []Declaration, opts ...Option) (*Registry, error) {
	r := &Registry{
		name:        "config",
		groups:      make([]string, 0, len(groups)),
		order:       make([]string, 0, len(decls)),
		settings:    make(map[string]*Setting, len(decls)),
		activeGroup: DefaultGroup,
		logger:      zap.NewNop(),
	}

	known := make(map[string]struct{}, len(groups))
	for _, group := range groups {
		if group == DefaultGroup {
			return nil, fmt.Errorf("%w: %q is reserved for the no-group marker", ErrDuplicateGroup, group)
		}
		if _, dup := known[group]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateGroup, group)
		}
		known[group] = struct{}{}
		r.groups = append(r.groups, group)
	}

	for _, d := range decls {
		if _, dup := r.settings[d.Key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSetting, d.Key)
		}
		s, err := newSetting(d)
		if err != nil {
			return nil, err
		}
		for _, group := range sortedKeys(s.groups) {
			if _, ok := known[group]; !ok {
				return nil, fmt.Errorf("setting %q: %w: %q", d.Key, ErrUnknownGroup, group)
			}
		}
		r.order = append(r.order, d.Key)
		r.settings[d.Key] = s
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// resolve computes the effective value for one setting: the active group's
// value (or the default), then the override layers oldest to newest, where
// the last layer containing the key wins.
func (r *Registry) resolve(s *Setting) Value {
	v := s.def
	if r.activeGroup != DefaultGroup {
		if gv, ok := s.groups[r.activeGroup]; ok {
			v = gv
		}
	}
	for _, layer := range r.overrides {
		if lv, ok := layer.values[s.key]; ok {
			v = lv
		}
	}
	return v
}

// Get returns the resolved value for a key, or ErrUnknownSetting when no
// declaration matches.
func (r *Registry) Get(key string) (Value, error) {
	s, ok := r.settings[key]
	if !ok {
		return None(), fmt.Errorf("%w: %q", ErrUnknownSetting, key)
	}
	return r.resolve(s), nil
}

// Int returns the resolved integer value for a key. A None resolution yields
// zero. The method panics when the key is undeclared or the setting's type
// family is not integer; both are programmer errors against a static
// declaration set.
func (r *Registry) Int(key string) int {
	return r.mustResolve(key, KindInt).i
}

// Float returns the resolved floating-point value for a key. See Int for
// None and panic behavior.
func (r *Registry) Float(key string) float64 {
	return r.mustResolve(key, KindFloat).f
}

// String returns the resolved string value for a key. See Int for None and
// panic behavior.
func (r *Registry) String(key string) string {
	return r.mustResolve(key, KindString).s
}

// Bool returns the resolved boolean value for a key. See Int for None and
// panic behavior.
func (r *Registry) Bool(key string) bool {
	return r.mustResolve(key, KindBool).b
}

func (r *Registry) mustResolve(key string, want Kind) Value {
	s, ok := r.settings[key]
	if !ok {
		panic(fmt.Sprintf("groupcfg: unknown setting %q", key))
	}
	if s.kind != KindNone && s.kind != want {
		panic(fmt.Sprintf("groupcfg: setting %q holds %s values, not %s", key, s.kind, want))
	}
	return r.resolve(s)
}

// SetGroup selects the active group. The reserved default marker deselects
// any group. Fails with ErrUnknownGroup otherwise; never touches the
// override stack.
func (r *Registry) SetGroup(name string) error {
	if name != DefaultGroup {
		found := false
		for _, group := range r.groups {
			if group == name {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %q", ErrUnknownGroup, name)
		}
	}
	r.activeGroup = name
	r.logger.Debug("group selected", zap.String("group", name))
	return nil
}

// ResetToDefaults clears the override stack and deselects the active group,
// returning the registry to its just-declared state. Declarations are
// untouched. Idempotent.
func (r *Registry) ResetToDefaults() {
	r.overrides = nil
	r.activeGroup = DefaultGroup
	r.logger.Debug("reset to defaults")
}

// ActiveGroup returns the selected group name, or DefaultGroup when none is
// selected.
func (r *Registry) ActiveGroup() string { return r.activeGroup }

// Groups returns a copy of the declared group names.
func (r *Registry) Groups() []string {
	out := make([]string, len(r.groups))
	copy(out, r.groups)
	return out
}

// Keys returns the setting keys in declaration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Setting returns the declaration for a key, if any.
func (r *Registry) Setting(key string) (*Setting, bool) {
	s, ok := r.settings[key]
	return s, ok
}
