// Package catalog provides the read-side queries over a scraped episode
// list: positional access, search, season filtering, and summary statistics.
package catalog

import (
	"math/rand/v2"
	"sort"
	"strings"

	"hotones/pkg/domain"
)

// Indexed pairs an episode with its 1-based display position, which follows
// the scrape order (never re-sorted).
type Indexed struct {
	Position int
	Episode  domain.EpisodeRecord
}

// Catalog is an immutable view over an episode list.
type Catalog struct {
	episodes []domain.EpisodeRecord
}

// New wraps an episode list. The slice is not copied; callers must not
// mutate it afterwards.
func New(episodes []domain.EpisodeRecord) *Catalog {
	return &Catalog{episodes: episodes}
}

// Len reports the number of episodes.
func (c *Catalog) Len() int {
	return len(c.episodes)
}

// At returns the episode at a 1-based position.
func (c *Catalog) At(position int) (Indexed, bool) {
	if position < 1 || position > len(c.episodes) {
		return Indexed{}, false
	}
	return Indexed{Position: position, Episode: c.episodes[position-1]}, true
}

// Random picks a uniformly random episode.
func (c *Catalog) Random() (Indexed, bool) {
	if len(c.episodes) == 0 {
		return Indexed{}, false
	}
	return c.At(rand.IntN(len(c.episodes)) + 1)
}

// Search finds episodes whose title or description contains term,
// case-insensitively, in display order.
func (c *Catalog) Search(term string) []Indexed {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	var hits []Indexed
	for i, ep := range c.episodes {
		haystack := strings.ToLower(ep.Title + " " + ep.Description)
		if strings.Contains(haystack, term) {
			hits = append(hits, Indexed{Position: i + 1, Episode: ep})
		}
	}
	return hits
}

// Season returns the episodes of one season in display order.
func (c *Catalog) Season(n int) []Indexed {
	var hits []Indexed
	for i, ep := range c.episodes {
		if ep.SeasonNumber == n {
			hits = append(hits, Indexed{Position: i + 1, Episode: ep})
		}
	}
	return hits
}

// CategoryCount is one row of the tag breakdown.
type CategoryCount struct {
	Category string
	Count    int
}

// Stats aggregates the catalog for the stats view and the post-scrape
// quality summary.
type Stats struct {
	Total              int
	Seasons            int
	Categories         []CategoryCount
	WithDirectVideo    int
	MissingDate        int
	MissingDescription int
}

// Stats computes aggregate counts. Category rows are sorted by descending
// count, ties broken alphabetically.
func (c *Catalog) Stats() Stats {
	seasons := make(map[int]struct{})
	categories := make(map[string]int)
	stats := Stats{Total: len(c.episodes)}

	for _, ep := range c.episodes {
		seasons[ep.SeasonNumber] = struct{}{}
		for _, tag := range ep.Tags {
			categories[tag.Category]++
		}
		if ep.VideoURL != "" {
			stats.WithDirectVideo++
		}
		if ep.AirDate == "" {
			stats.MissingDate++
		}
		if ep.Description == "" {
			stats.MissingDescription++
		}
	}

	stats.Seasons = len(seasons)
	for category, count := range categories {
		stats.Categories = append(stats.Categories, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(stats.Categories, func(i, j int) bool {
		if stats.Categories[i].Count != stats.Categories[j].Count {
			return stats.Categories[i].Count > stats.Categories[j].Count
		}
		return stats.Categories[i].Category < stats.Categories[j].Category
	})
	return stats
}
