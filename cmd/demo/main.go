// Command demo declares a grouped experiment configuration, resolves it
// from the command line, and prints the effective settings as YAML.
//
// Try:
//
//	demo
//	demo --configuration large
//	demo -c small --num-units 64 --use-skip-connections true
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/eugenenazirov/groupcfg"
	"github.com/eugenenazirov/groupcfg/internal/logging"
)

func main() {
	logger, err := logging.New()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	experiments, err := groupcfg.New(
		[]string{"large", "small"},
		[]groupcfg.Declaration{
			{Key: "NUM_LAYERS", Default: 5, Groups: map[string]any{"large": 10, "small": 3}},
			{Key: "NUM_UNITS", Default: 128, Groups: map[string]any{"large": 512, "small": 32}},
			{Key: "USE_SKIP_CONNECTIONS", Default: true, Groups: map[string]any{"small": false}},
			{Key: "LEARNING_RATE", Default: 0.1},
			{Key: "OPTIMIZER", Default: "adam"},
			{Key: "CHECKPOINT_PATH", Default: nil, Groups: map[string]any{"large": "ckpt/large"}},
		},
		groupcfg.WithName("demo"),
		groupcfg.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal("invalid settings declaration", zap.Error(err))
	}

	if err := experiments.ParseArgs(nil, "Resolve a grouped experiment configuration from the command line."); err != nil {
		logger.Fatal("failed to parse arguments", zap.Error(err))
	}

	if err := experiments.WriteYAML(os.Stdout); err != nil {
		logger.Fatal("failed to render settings", zap.Error(err))
	}
}
