// Package scraper drives the full pipeline: fetch the episode-database page,
// extract and normalize episodes, then enrich them from the video feed.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"hotones/pkg/domain"
	"hotones/pkg/episode"
	"hotones/pkg/extract"
	"hotones/pkg/feed"
	"hotones/pkg/httpclient"
	"hotones/pkg/logging"
)

// ErrFetch wraps the one fatal failure class: the source page could not be
// retrieved. Everything downstream degrades instead of failing.
var ErrFetch = errors.New("episode page fetch failed")

// State tracks where a run is in the pipeline.
type State int

const (
	StateIdle State = iota
	StateFetching
	StateParsing
	StateExtracting
	StateEnhancing
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateParsing:
		return "parsing"
	case StateExtracting:
		return "extracting"
	case StateEnhancing:
		return "enhancing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// DefaultFetchTimeout bounds the page fetch. The feed fetch is deliberately
// left unbounded; see RunReport.FeedFailed for how feed trouble surfaces.
const DefaultFetchTimeout = 15 * time.Second

// RunReport summarizes one run for the data-quality check.
type RunReport struct {
	RunID              string
	SeasonsFound       int
	ItemsSeen          int
	Rejected           int
	MissingDate        int
	MissingDescription int
	UnknownNumbers     int
	DirectMatches      int
	SearchFallbacks    int
	FeedEntries        int
	FeedFailed         bool
	Enhanced           bool
	Duration           time.Duration
}

// Scraper runs the scrape pipeline. Zero value is not usable; construct with
// New.
type Scraper struct {
	pageURL      string
	feedURL      string
	fetchTimeout time.Duration
	enhance      bool

	client    *httpclient.HTTPClient
	feed      *feed.Client
	extractor *extract.Extractor
	logger    *slog.Logger
	state     State
}

// Option tweaks a Scraper at construction time.
type Option func(*Scraper)

// WithFetchTimeout overrides the page-fetch timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Scraper) { s.fetchTimeout = d }
}

// WithoutEnhancement skips the feed-enhancement stage entirely; every
// episode gets a search URL.
func WithoutEnhancement() Option {
	return func(s *Scraper) { s.enhance = false }
}

// New creates a scraper for the given page and feed URLs. A nil logger
// falls back to slog.Default().
func New(pageURL, feedURL string, logger *slog.Logger, opts ...Option) *Scraper {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Scraper{
		pageURL:      pageURL,
		feedURL:      feedURL,
		fetchTimeout: DefaultFetchTimeout,
		enhance:      true,
		feed:         feed.NewClient(logger),
		extractor:    extract.New(logger),
		logger:       logger,
		state:        StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.client = httpclient.NewClient(httpclient.BrowserClient, s.fetchTimeout)
	return s
}

// State reports the pipeline stage of the last (or current) run.
func (s *Scraper) State() State {
	return s.state
}

// Run executes the pipeline once. The page fetch is the only fatal path: on
// a network error, timeout, or non-2xx status it returns ErrFetch-wrapped
// failure and zero records, never a partial list. Extraction trouble
// degrades per item and feed trouble degrades to search URLs; both are
// reflected in the report.
func (s *Scraper) Run(ctx context.Context) ([]domain.EpisodeRecord, *RunReport, error) {
	started := time.Now()
	report := &RunReport{RunID: uuid.NewString()}
	logger := s.logger.With("run_id", report.RunID)

	doc, err := s.fetchDocument(ctx, logger)
	if err != nil {
		s.setState(logger, StateFailed)
		return nil, nil, err
	}

	episodes := s.extractEpisodes(doc, logger, report)

	if s.enhance {
		episodes = s.enhanceEpisodes(ctx, logger, episodes, report)
	} else {
		episodes = feed.Enhance(episodes, nil)
		report.SearchFallbacks = len(episodes)
	}

	s.setState(logger, StateDone)
	report.Duration = time.Since(started)
	logger.Info("scrape complete",
		"episodes", len(episodes),
		"rejected", report.Rejected,
		"direct_matches", report.DirectMatches,
		"duration", report.Duration)
	return episodes, report, nil
}

// fetchDocument covers the FETCHING and PARSING stages.
func (s *Scraper) fetchDocument(ctx context.Context, logger *slog.Logger) (*goquery.Document, error) {
	s.setState(logger, StateFetching)

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	resp, err := s.client.GetContext(fetchCtx, s.pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrFetch, resp.StatusCode)
	}

	s.setState(logger, StateParsing)
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing response body: %v", ErrFetch, err)
	}
	return doc, nil
}

// extractEpisodes covers the EXTRACTING stage: the raw sequence is consumed
// once, each item normalized, rejections and degraded fields counted.
func (s *Scraper) extractEpisodes(doc *goquery.Document, logger *slog.Logger, report *RunReport) []domain.EpisodeRecord {
	s.setState(logger, StateExtracting)
	report.SeasonsFound = s.extractor.SeasonCount(doc)

	var episodes []domain.EpisodeRecord
	for raw := range s.extractor.Episodes(doc) {
		report.ItemsSeen++
		record, ok := episode.Normalize(raw)
		if !ok {
			report.Rejected++
			logger.Warn("rejected episode with empty title",
				"season", raw.SeasonNumber, "label", raw.Label)
			continue
		}
		if record.AirDate == "" {
			report.MissingDate++
		}
		if record.Description == "" {
			report.MissingDescription++
		}
		if record.SeasonNumber == 0 || record.EpisodeNumber == 0 {
			report.UnknownNumbers++
		}
		episodes = append(episodes, record)
	}
	return episodes
}

// enhanceEpisodes covers the optional ENHANCING stage. The feed fetch runs
// without its own timeout; a failure downgrades every episode to a search
// URL and is never fatal.
func (s *Scraper) enhanceEpisodes(ctx context.Context, logger *slog.Logger, episodes []domain.EpisodeRecord, report *RunReport) []domain.EpisodeRecord {
	s.setState(logger, StateEnhancing)
	report.Enhanced = true

	entries, err := s.feed.Fetch(ctx, s.feedURL)
	if err != nil {
		logger.Warn("video feed unavailable, falling back to search URLs", logging.Err(err))
		report.FeedFailed = true
		entries = nil
	}
	report.FeedEntries = len(entries)

	episodes = feed.Enhance(episodes, entries)
	for _, ep := range episodes {
		if ep.VideoURL != "" {
			report.DirectMatches++
		} else {
			report.SearchFallbacks++
		}
	}
	return episodes
}

func (s *Scraper) setState(logger *slog.Logger, next State) {
	s.state = next
	logger.Debug("pipeline stage", "state", next.String())
}
