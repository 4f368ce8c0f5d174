// Package episode converts raw extracted field sets into validated episode
// records.
package episode

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"hotones/pkg/domain"
	"hotones/pkg/taxonomy"
)

var (
	labelPattern = regexp.MustCompile(`(?i)S(\d+)E(\d+)`)
	datePattern  = regexp.MustCompile(`(January|February|March|April|May|June|July|August|September|October|November|December) \d{1,2}, \d{4}`)
)

const sourceDateLayout = "January 2, 2006"

// Normalize validates one raw episode. The second return value is false when
// the record is rejected; the only rejection rule is an empty title after
// trimming. Everything else degrades: an unmatched label keeps episode
// number 0, a missing date line leaves AirDate empty, a date that fails to
// parse stays as its source text.
func Normalize(raw domain.RawEpisode) (domain.EpisodeRecord, bool) {
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		return domain.EpisodeRecord{}, false
	}

	description := firstParagraph(raw.Paragraphs)

	return domain.EpisodeRecord{
		SeasonNumber:  raw.SeasonNumber,
		EpisodeNumber: parseEpisodeNumber(raw.Label),
		Title:         title,
		AirDate:       NormalizeAirDate(raw.InlineTexts),
		Description:   description,
		Tags:          taxonomy.Classify(title, description),
	}, true
}

// parseEpisodeNumber reads the episode component of an S<season>E<episode>
// label, 0 when the label does not match.
func parseEpisodeNumber(label string) int {
	m := labelPattern.FindStringSubmatch(label)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return 0
	}
	return n
}

// NormalizeAirDate scans the inline texts for the first "<Month> <day>,
// <year>" occurrence and renders it as YYYY-MM-DD. When parsing fails the
// matched text is returned verbatim; when nothing matches the result is
// empty.
func NormalizeAirDate(inlineTexts []string) string {
	for _, text := range inlineTexts {
		matched := datePattern.FindString(text)
		if matched == "" {
			continue
		}
		parsed, err := time.Parse(sourceDateLayout, matched)
		if err != nil {
			return matched
		}
		return parsed.Format("2006-01-02")
	}
	return ""
}

func firstParagraph(paragraphs []string) string {
	for _, p := range paragraphs {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
