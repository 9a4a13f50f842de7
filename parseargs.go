package groupcfg

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
)

// argValue binds one setting to its command line flag and records whether
// the user actually supplied it.
type argValue struct {
	setting *Setting
	set     bool
	s       *string
	i       *int
	f       *float64
}

// ParseArgs reads configuration from the command line. A nil argv means
// os.Args[1:]. Each setting is exposed as an optional flag named by
// lower-casing the key and replacing underscores with hyphens; boolean
// settings take the literal tokens "true" or "false" (case-insensitive).
// When groups are declared, --configuration/-c selects one of them.
//
// The group selection is applied first, then every supplied value is pushed
// as a single override layer, so later Override calls still win. Usage
// errors and -h follow kingpin's conventions.
func (r *Registry) ParseArgs(argv []string, description string) error {
	if argv == nil {
		argv = os.Args[1:]
	}

	app := kingpin.New(r.name, description)

	var groupFlag *string
	if len(r.groups) > 0 {
		choices := make([]string, 0, len(r.groups)+1)
		choices = append(choices, DefaultGroup)
		choices = append(choices, r.groups...)
		groupFlag = app.Flag("configuration", "Settings group to apply.").
			Short('c').
			Default(DefaultGroup).
			Enum(choices...)
	}

	bound := make([]*argValue, 0, len(r.order))
	for _, key := range r.order {
		s := r.settings[key]
		av := &argValue{setting: s}
		clause := app.Flag(flagName(key), fmt.Sprintf("Value for %s.", key)).
			IsSetByUser(&av.set)
		switch s.kind {
		case KindBool:
			av.s = clause.HintOptions("true", "false").String()
		case KindInt:
			av.i = clause.Int()
		case KindFloat:
			av.f = clause.Float64()
		default:
			// Strings, and settings whose type could not be inferred.
			av.s = clause.String()
		}
		bound = append(bound, av)
	}

	if _, err := app.Parse(argv); err != nil {
		return fmt.Errorf("parse arguments: %w", err)
	}

	if groupFlag != nil {
		if err := r.SetGroup(*groupFlag); err != nil {
			return err
		}
	}

	supplied := Overrides{}
	for _, av := range bound {
		if !av.set {
			continue
		}
		key := av.setting.key
		switch av.setting.kind {
		case KindBool:
			b, err := parseBoolToken(*av.s)
			if err != nil {
				return fmt.Errorf("setting %q: %w", key, err)
			}
			supplied[key] = b
		case KindInt:
			supplied[key] = *av.i
		case KindFloat:
			supplied[key] = *av.f
		case KindString:
			supplied[key] = *av.s
		default:
			return fmt.Errorf("setting %q: %w", key, ErrAmbiguousType)
		}
	}

	if len(supplied) > 0 {
		if _, err := r.Override(supplied); err != nil {
			return err
		}
		r.logger.Debug("command line values applied", zap.Int("settings", len(supplied)))
	}

	return nil
}

// flagName converts a setting key to its command line flag name, e.g.
// NUM_LAYERS becomes num-layers.
func flagName(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "_", "-")
}

// parseBoolToken accepts the literal tokens "true" and "false" in any case.
func parseBoolToken(token string) (bool, error) {
	switch strings.ToLower(token) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: boolean settings take true or false, got %q", ErrTypeMismatch, token)
	}
}
