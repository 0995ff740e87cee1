package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"emoji-catalog/core/catalog"
	"emoji-catalog/core/config"
	"emoji-catalog/core/logger"
	"emoji-catalog/core/transport"

	"go.uber.org/zap"
)

// outputJSON switches command output from text tables to JSON.
var outputJSON bool

// env bundles what every command needs.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	client *catalog.Client
}

// newEnv loads configuration and builds the logger and catalog client.
func newEnv(opts ...catalog.Option) (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	fetcher, err := transport.NewClient(cfg.Client)
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}

	opts = append([]catalog.Option{catalog.WithLogger(logg)}, opts...)
	return &env{
		cfg:    cfg,
		logger: logg,
		client: catalog.New(fetcher, opts...),
	}, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
