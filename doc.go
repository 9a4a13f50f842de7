// Package groupcfg provides process-wide configuration values that can be
// grouped into named presets, selected and overridden from the command line,
// and temporarily overridden for testing.
//
// A registry is built once from an ordered list of declarations:
//
//	reg, err := groupcfg.New(
//		[]string{"large", "small"},
//		[]groupcfg.Declaration{
//			{Key: "NUM_LAYERS", Default: 5, Groups: map[string]any{"large": 10, "small": 3}},
//			{Key: "LEARNING_RATE", Default: 0.1},
//			{Key: "OPTIMIZER", Default: "adam"},
//		},
//	)
//
// Reads resolve the effective value on every call, so group and override
// changes are observed immediately:
//
//	reg.Int("NUM_LAYERS")   // 5
//	reg.SetGroup("large")
//	reg.Int("NUM_LAYERS")   // 10
//
// Overrides stack on top of the group-resolved values and release by
// identity, so nested and interleaved scopes behave:
//
//	handle, _ := reg.Override(groupcfg.Overrides{"NUM_LAYERS": 2})
//	defer handle.Release()
//
// ParseArgs exposes one flag per setting plus --configuration/-c for group
// selection, and ResetToDefaults returns the registry to its just-declared
// state.
package groupcfg
