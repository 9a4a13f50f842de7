package groupcfg

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Snapshot returns the resolved value of every setting, keyed by setting
// name. None resolutions appear as nil.
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, len(r.order))
	for _, key := range r.order {
		out[key] = r.resolve(r.settings[key]).Interface()
	}
	return out
}

// MarshalYAML renders the resolved settings as a mapping in declaration
// order. yaml.v3 has no ordered map type, so the mapping is built as a node.
func (r *Registry) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range r.order {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		valNode, err := yamlValueNode(r.resolve(r.settings[key]))
		if err != nil {
			return nil, fmt.Errorf("setting %q: %w", key, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// WriteYAML writes the resolved settings to w as YAML, in declaration order.
func (r *Registry) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(r); err != nil {
		_ = enc.Close()
		return fmt.Errorf("encode settings: %w", err)
	}
	return enc.Close()
}

func yamlValueNode(v Value) (*yaml.Node, error) {
	if v.IsNone() {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
	node := &yaml.Node{}
	if err := node.Encode(v.Interface()); err != nil {
		return nil, err
	}
	return node, nil
}
