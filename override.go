package groupcfg

import (
	"fmt"

	"go.uber.org/zap"
)

// Overrides maps setting keys to replacement values for one override layer.
type Overrides map[string]any

// overrideLayer is one pushed layer. Layers are compared by pointer identity
// when released, so interleaved scopes remove the right one.
type overrideLayer struct {
	values map[string]Value
}

// OverrideHandle releases the override layer returned by Override.
type OverrideHandle struct {
	reg   *Registry
	layer *overrideLayer
}

// Override validates the given values against the declared settings and
// pushes them as a new layer on the override stack. The most recently pushed
// layer containing a key wins during resolution. The returned handle removes
// exactly this layer; callers wanting a scoped override pair the call with
// defer:
//
//	handle, err := reg.Override(groupcfg.Overrides{"TIMEOUT": 5})
//	if err != nil {
//		return err
//	}
//	defer handle.Release()
//
// A layer that is never released stays in effect until ResetToDefaults.
func (r *Registry) Override(values Overrides) (*OverrideHandle, error) {
	layer := &overrideLayer{values: make(map[string]Value, len(values))}

	for _, key := range sortedKeys(values) {
		s, ok := r.settings[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSetting, key)
		}
		v, err := ValueOf(values[key])
		if err != nil {
			return nil, fmt.Errorf("setting %q: %w", key, err)
		}
		if !compatible(v, Value{kind: s.kind}) {
			return nil, fmt.Errorf(
				"setting %q: %w: got %s, want %s",
				key, ErrTypeMismatch, v.Kind(), s.kind,
			)
		}
		layer.values[key] = v
	}

	r.overrides = append(r.overrides, layer)
	r.logger.Debug("override layer pushed",
		zap.Int("settings", len(layer.values)),
		zap.Int("depth", len(r.overrides)),
	)
	return &OverrideHandle{reg: r, layer: layer}, nil
}

// Release removes the layer this handle was created for, by identity, no
// matter how many layers were pushed or released in between. Safe to call
// more than once and on a nil handle; after ResetToDefaults it is a no-op.
func (h *OverrideHandle) Release() {
	if h == nil || h.layer == nil {
		return
	}
	r := h.reg
	for i, layer := range r.overrides {
		if layer == h.layer {
			r.overrides = append(r.overrides[:i], r.overrides[i+1:]...)
			r.logger.Debug("override layer released", zap.Int("depth", len(r.overrides)))
			break
		}
	}
	h.layer = nil
}
