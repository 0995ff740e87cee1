package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"emoji-catalog/core/model"

	"github.com/aquilax/truncate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var emojisCmd = &cobra.Command{
	Use:   "emojis",
	Short: "Fetch and list all emojis",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newEnv()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		// Categories first so the listing can show names.
		if _, err := rt.client.RefreshCategories(cmd.Context()); err != nil {
			rt.logger.Warn("Category names unavailable", zap.Error(err))
		}
		emojis, err := rt.client.RefreshEmojis(cmd.Context())
		if err != nil {
			return err
		}
		if outputJSON {
			return printJSON(emojis)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tFAVES\tIMAGE")
		for _, e := range emojis {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", e.ID(), column(e.Title()), categoryName(e), e.Faves(), e.ImageURL())
		}
		return w.Flush()
	},
}

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "Fetch and list all emoji packs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newEnv()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		packs, err := rt.client.RefreshPacks(cmd.Context())
		if err != nil {
			return err
		}
		if outputJSON {
			return printJSON(packs)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSIZE\tDOWNLOAD")
		for _, p := range packs {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", p.ID(), column(p.Name()), p.Size(), p.DownloadURL())
		}
		return w.Flush()
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Fetch and list emoji categories in order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newEnv()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		categories, err := rt.client.RefreshCategories(cmd.Context())
		if err != nil {
			return err
		}
		if outputJSON {
			return printJSON(categories)
		}
		for _, c := range categories {
			fmt.Printf("%3d  %s\n", c.Index(), c.Name())
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show emoji.gg site statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newEnv()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		stats, err := rt.client.RequestStats(cmd.Context())
		if err != nil {
			return err
		}
		if outputJSON {
			return printJSON(stats)
		}
		fmt.Println("\n--- emoji.gg Statistics ---")
		fmt.Printf("Emojis:            %d\n", stats.EmojiCount)
		fmt.Printf("Users:             %d\n", stats.UserCount)
		fmt.Printf("Total Faves:       %d\n", stats.TotalFaves)
		fmt.Printf("Pending Approvals: %d\n", stats.PendingApprovals)
		return nil
	},
}

var emojiCmd = &cobra.Command{
	Use:   "emoji [id]",
	Short: "Show a single emoji",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid emoji id %q", args[0])
		}
		rt, err := newEnv()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if _, err := rt.client.RefreshCategories(cmd.Context()); err != nil {
			rt.logger.Warn("Category names unavailable", zap.Error(err))
		}
		e, err := rt.client.RequestEmojiByID(cmd.Context(), id)
		if err != nil {
			return err
		}
		if outputJSON {
			return printJSON(e)
		}

		fmt.Println("\n--- Emoji Detail View ---")
		fmt.Printf("ID:           %d\n", e.ID())
		fmt.Printf("Title:        %s\n", e.Title())
		fmt.Printf("Slug:         %s\n", e.Slug())
		fmt.Printf("Image:        %s\n", e.ImageURL())
		fmt.Printf("Category:     %s\n", categoryName(e))
		fmt.Printf("Faves:        %d\n", e.Faves())
		fmt.Printf("Submitted By: %s\n", e.SubmittedBy())
		if d := e.Description(); d != "" {
			fmt.Printf("Description:  %s\n", d)
		}
		if l, ok := e.License(); ok {
			fmt.Printf("License:      %s\n", l)
		}
		if s, ok := e.Source(); ok {
			fmt.Printf("Source:       %s\n", s)
		}
		if w, ok := e.Width(); ok {
			h, _ := e.Height()
			fmt.Printf("Dimensions:   %dx%d\n", w, h)
		}
		if size, ok := e.Filesize(); ok {
			fmt.Printf("Filesize:     %d bytes\n", size)
		}
		return nil
	},
}

var packCmd = &cobra.Command{
	Use:   "pack [id]",
	Short: "Show a single emoji pack",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid pack id %q", args[0])
		}
		rt, err := newEnv()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		p, err := rt.client.RequestPackByID(cmd.Context(), id)
		if err != nil {
			return err
		}
		if outputJSON {
			return printJSON(p)
		}

		fmt.Println("\n--- Pack Detail View ---")
		fmt.Printf("ID:          %d\n", p.ID())
		fmt.Printf("Name:        %s\n", p.Name())
		fmt.Printf("Slug:        %s\n", p.Slug())
		fmt.Printf("Description: %s\n", p.Description())
		fmt.Printf("Emojis:      %d\n", p.Size())
		fmt.Printf("Download:    %s\n", p.DownloadURL())
		if img := p.ImageURL(); img != nil {
			fmt.Printf("Image:       %s\n", img)
		}
		return nil
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch all collections concurrently and report counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newEnv()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		summary, err := rt.client.RefreshAll(cmd.Context())
		if err != nil {
			return err
		}
		if outputJSON {
			return printJSON(summary)
		}
		fmt.Printf("Emojis: %d  Packs: %d  Categories: %d\n", summary.Emojis, summary.Packs, summary.Categories)
		return nil
	},
}

// column shortens free text so table rows stay aligned.
func column(s string) string {
	return truncate.Truncate(s, 40, "...", truncate.PositionEnd)
}

func categoryName(e *model.Emoji) string {
	ref := e.Category()
	if c, ok := ref.Resolve(); ok {
		return c.Name()
	}
	return "#" + strconv.Itoa(ref.Index())
}

func init() {
	RootCmd.AddCommand(emojisCmd, packsCmd, categoriesCmd, statsCmd, emojiCmd, packCmd, refreshCmd)
}
