package cmd

import (
	"fmt"

	"emoji-catalog/core/storage"
	"emoji-catalog/feature/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var listSnapshots bool

// snapshotCmd fetches the catalog and writes it to object storage.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Fetch the catalog and export it to object storage",
	Long: `Fetches emojis, packs and categories, then writes them as one JSON object
to the configured bucket. With --list the stored snapshots are printed instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newEnv()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		store, err := storage.NewClient(rt.cfg.Storage)
		if err != nil {
			return err
		}
		svc := snapshot.NewService(rt.client, store, rt.cfg.Storage, rt.logger)

		if listSnapshots {
			objects, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(objects)
			}
			for _, o := range objects {
				fmt.Printf("%s  %8d  %s\n", o.LastModified.Format("2006-01-02 15:04:05"), o.Size, o.Key)
			}
			return nil
		}

		summary, err := rt.client.RefreshAll(cmd.Context())
		if err != nil {
			return err
		}
		rt.logger.Info("Catalog fetched",
			zap.Int("emojis", summary.Emojis),
			zap.Int("packs", summary.Packs),
			zap.Int("categories", summary.Categories))

		res, err := svc.Export(cmd.Context())
		if err != nil {
			return err
		}
		if outputJSON {
			return printJSON(res)
		}
		fmt.Printf("Snapshot written to %s/%s (%d bytes)\n", rt.cfg.Storage.Bucket, res.Object, res.Size)
		return nil
	},
}

func init() {
	snapshotCmd.Flags().BoolVar(&listSnapshots, "list", false, "List stored snapshots instead of exporting")
	RootCmd.AddCommand(snapshotCmd)
}
