package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hotones/pkg/cache"
	"hotones/pkg/catalog"
	"hotones/pkg/config"
	"hotones/pkg/domain"
	"hotones/pkg/logging"
)

const browseHelp = `Commands:
  <number>        show episode at that position
  random, r       show a random episode
  stats, s        catalog statistics
  search <term>   find episodes by title or description
  season <n>      list a season's episodes
  help, h         this message
  quit, q, exit   leave`

func newBrowseCommand(opts *rootOptions) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the episode catalog interactively",
		Long:  "browse loads the cached catalog (scraping first when the cache is missing or unreadable) and starts an interactive prompt.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup()
			if err != nil {
				return err
			}

			episodes, err := loadOrScrape(cmd, cfg, logger, refresh)
			if err != nil {
				return err
			}

			return runBrowseLoop(cmd.InOrStdin(), cmd.OutOrStdout(), catalog.New(episodes), stdoutIsTerminal())
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore the cache and scrape fresh data")
	return cmd
}

// loadOrScrape implements the cache contract: a readable, parseable cache
// file wins; anything else triggers a fresh scrape whose result overwrites
// the file.
func loadOrScrape(cmd *cobra.Command, cfg config.Config, logger *slog.Logger, refresh bool) ([]domain.EpisodeRecord, error) {
	if !refresh {
		episodes, err := cache.Load(cfg.CachePath)
		if err == nil {
			logger.Debug("using cached catalog", "path", cfg.CachePath, "episodes", len(episodes))
			return episodes, nil
		}
		logger.Info("cache unavailable, scraping", "path", cfg.CachePath, logging.Err(err))
	}

	episodes, _, err := runPipeline(cmd.Context(), cfg, logger, false)
	if err != nil {
		return nil, err
	}
	if err := cache.Save(cfg.CachePath, episodes); err != nil {
		return nil, err
	}
	return episodes, nil
}

// runBrowseLoop reads commands until quit or EOF.
func runBrowseLoop(in io.Reader, out io.Writer, cat *catalog.Catalog, styled bool) error {
	fmt.Fprintf(out, "%d episodes loaded. Type 'help' for commands.\n", cat.Len())

	scanner := bufio.NewScanner(in)
	for {
		if styled {
			fmt.Fprint(out, "hotones> ")
		}
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		command, argument, _ := strings.Cut(line, " ")
		command = strings.ToLower(command)
		argument = strings.TrimSpace(argument)

		switch command {
		case "quit", "q", "exit":
			return nil
		case "help", "h":
			fmt.Fprintln(out, browseHelp)
		case "random", "r":
			if picked, ok := cat.Random(); ok {
				fmt.Fprintln(out, renderEpisodeDetail(picked))
			} else {
				fmt.Fprintln(out, "catalog is empty")
			}
		case "stats", "s":
			fmt.Fprintln(out, renderStats(cat.Stats(), styled))
		case "search":
			if argument == "" {
				fmt.Fprintln(out, "usage: search <term>")
				continue
			}
			hits := cat.Search(argument)
			if len(hits) == 0 {
				fmt.Fprintf(out, "no episodes match %q\n", argument)
				continue
			}
			fmt.Fprintln(out, renderEpisodeList(hits, styled))
		case "season":
			n, err := strconv.Atoi(argument)
			if err != nil {
				fmt.Fprintln(out, "usage: season <n>")
				continue
			}
			hits := cat.Season(n)
			if len(hits) == 0 {
				fmt.Fprintf(out, "no episodes in season %d\n", n)
				continue
			}
			fmt.Fprintln(out, renderEpisodeList(hits, styled))
		default:
			if position, err := strconv.Atoi(command); err == nil {
				if it, ok := cat.At(position); ok {
					fmt.Fprintln(out, renderEpisodeDetail(it))
				} else {
					fmt.Fprintf(out, "no episode at position %d (catalog has %d)\n", position, cat.Len())
				}
				continue
			}
			fmt.Fprintf(out, "unknown command %q; type 'help'\n", command)
		}
	}
}
