package feed

import (
	"fmt"
	"net/url"
	"strings"

	"hotones/pkg/domain"
)

const (
	searchBaseURL = "https://www.youtube.com/results?search_query="
	showName      = "hot ones"
	searchSuffix  = "interview hot wings"
)

// Enhance returns a new record list with video metadata attached. Episodes
// whose title resolves against the entry index get the direct link fields;
// the rest get a synthesized search URL. A nil or empty entry slice (the
// feed-failure fallback) degrades every episode to a search URL.
func Enhance(episodes []domain.EpisodeRecord, entries []domain.VideoFeedEntry) []domain.EpisodeRecord {
	index := BuildIndex(entries)

	enhanced := make([]domain.EpisodeRecord, len(episodes))
	for i, ep := range episodes {
		if entry, ok := lookup(index, ep.Title); ok {
			ep.VideoURL = entry.URL
			ep.VideoID = entry.VideoID
			ep.VideoViewCount = entry.ViewCount
			ep.VideoPublishedDate = entry.PublishedDate
		} else {
			ep.VideoSearchURL = SearchURL(ep.Title, ep.SeasonNumber, ep.EpisodeNumber)
		}
		enhanced[i] = ep
	}
	return enhanced
}

// lookup tries the episode title's derived keys against the index, first
// key that hits wins.
func lookup(index map[string]domain.VideoFeedEntry, title string) (domain.VideoFeedEntry, bool) {
	for _, key := range MatchKeys(title) {
		if entry, ok := index[key]; ok {
			return entry, true
		}
	}
	return domain.VideoFeedEntry{}, false
}

// SearchURL builds the fallback video-platform query for an episode with no
// confident feed match. Season and episode terms are included only when both
// numbers are known.
func SearchURL(title string, season, episodeNumber int) string {
	terms := []string{fmt.Sprintf("%q", cleanTitle(title)), showName}
	if season > 0 && episodeNumber > 0 {
		terms = append(terms,
			fmt.Sprintf("season %d", season),
			fmt.Sprintf("episode %d", episodeNumber))
	}
	terms = append(terms, searchSuffix)
	return searchBaseURL + url.QueryEscape(strings.Join(terms, " "))
}

// cleanTitle strips the show-name prefix and any separator-delimited
// trailing chatter, keeping the guest part of the title.
func cleanTitle(title string) string {
	cleaned := strings.TrimSpace(title)
	lower := strings.ToLower(cleaned)
	for _, prefix := range showPrefixes {
		if strings.HasPrefix(lower, prefix) {
			cleaned = strings.TrimSpace(cleaned[len(prefix):])
			lower = strings.ToLower(cleaned)
			break
		}
	}
	for _, sep := range separators {
		if i := strings.Index(lower, sep); i > 0 {
			cleaned = strings.TrimSpace(cleaned[:i])
			lower = strings.ToLower(cleaned)
		}
	}
	return cleaned
}
