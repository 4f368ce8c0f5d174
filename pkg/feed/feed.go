// Package feed fetches the show's YouTube channel feed and annotates episode
// records with video metadata, best effort.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/mmcdole/gofeed"

	"hotones/pkg/domain"
)

// Client fetches and parses the channel feed.
type Client struct {
	parser *gofeed.Parser
	logger *slog.Logger
}

// NewClient creates a feed client. A nil logger falls back to slog.Default().
func NewClient(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		parser: gofeed.NewParser(),
		logger: logger,
	}
}

// Fetch downloads and parses the feed, preserving feed order (newest first).
// The request is deliberately not given a deadline beyond ctx: the page
// fetch is the only timed call in the pipeline.
func (c *Client) Fetch(ctx context.Context, feedURL string) ([]domain.VideoFeedEntry, error) {
	parsed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse video feed: %w", err)
	}

	entries := make([]domain.VideoFeedEntry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entries = append(entries, entryFromItem(item))
	}
	c.logger.Debug("fetched video feed", "url", feedURL, "entries", len(entries))
	return entries, nil
}

// entryFromItem flattens a gofeed item, digging the YouTube-specific bits
// out of the yt: and media: extension trees.
func entryFromItem(item *gofeed.Item) domain.VideoFeedEntry {
	entry := domain.VideoFeedEntry{
		Title:       item.Title,
		URL:         item.Link,
		Description: item.Description,
	}
	if item.PublishedParsed != nil {
		entry.PublishedDate = item.PublishedParsed.Format("2006-01-02")
	}

	if ids := item.Extensions["yt"]["videoId"]; len(ids) > 0 {
		entry.VideoID = ids[0].Value
	}
	if groups := item.Extensions["media"]["group"]; len(groups) > 0 {
		group := groups[0]
		if entry.Description == "" {
			if descs := group.Children["description"]; len(descs) > 0 {
				entry.Description = descs[0].Value
			}
		}
		if community := group.Children["community"]; len(community) > 0 {
			if stats := community[0].Children["statistics"]; len(stats) > 0 {
				if views, err := strconv.ParseInt(stats[0].Attrs["views"], 10, 64); err == nil {
					entry.ViewCount = views
				}
			}
		}
	}

	if entry.URL == "" && entry.VideoID != "" {
		entry.URL = "https://www.youtube.com/watch?v=" + entry.VideoID
	}
	return entry
}
