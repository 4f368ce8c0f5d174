package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hotones/pkg/cache"
	"hotones/pkg/catalog"
)

func newScrapeCommand(opts *rootOptions) *cobra.Command {
	var noEnhance bool

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Run the scrape pipeline once and write the episode cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup()
			if err != nil {
				return err
			}

			episodes, report, err := runPipeline(cmd.Context(), cfg, logger, noEnhance)
			if err != nil {
				return err
			}
			if err := cache.Save(cfg.CachePath, episodes); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %d episodes to %s\n\n", len(episodes), cfg.CachePath)
			fmt.Fprintln(out, renderQualitySummary(report, catalog.New(episodes).Stats()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&noEnhance, "no-enhance", false, "skip video feed enhancement (every episode gets a search URL)")
	return cmd
}
