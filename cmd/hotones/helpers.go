package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"hotones/pkg/config"
	"hotones/pkg/domain"
	"hotones/pkg/scraper"
)

// timeRounding keeps reported durations readable.
const timeRounding = 10 * time.Millisecond

// runPipeline builds a scraper from the config and runs it once.
func runPipeline(ctx context.Context, cfg config.Config, logger *slog.Logger, noEnhance bool) ([]domain.EpisodeRecord, *scraper.RunReport, error) {
	opts := []scraper.Option{scraper.WithFetchTimeout(cfg.FetchTimeout())}
	if noEnhance || !cfg.Enhance {
		opts = append(opts, scraper.WithoutEnhancement())
	}
	s := scraper.New(cfg.PageURL, cfg.FeedURL, logger, opts...)
	return s.Run(ctx)
}

// stdoutIsTerminal controls prompt decoration and table styling; piped
// output gets the plain forms.
func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
