package cmd

import (
	"fmt"
	"os"

	"emoji-catalog/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "emoji-catalog",
	Short: "emoji.gg catalog client",
	Long: `emoji-catalog fetches the emoji.gg catalog (emojis, packs, categories and
site statistics) into an in-memory cache. It can print collections, serve a
read-only HTTP mirror and export cache snapshots to S3 compatible storage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format and debug level give readable ISO8601 output for CLI errors.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Print results as JSON")
}
