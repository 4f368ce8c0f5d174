package feed

import (
	"strings"

	"hotones/pkg/domain"
)

// showPrefixes are the known show-name title prefixes, already lower-cased.
var showPrefixes = []string{
	"hot ones - ",
	"hot ones:",
}

// separators split a feed title into "guest part | episode chatter". The
// prefix before the first occurrence becomes its own matching key.
var separators = []string{"|", "–", "-", ":", " eats "}

// stopWords are dropped from cleaned keys, the show-name tokens included.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "with": {},
	"hot": {}, "ones": {}, "one's": {},
}

// MatchKeys derives the lookup keys for a title, most specific first: the
// full lower-cased title, the show-prefix-stripped remainder, each
// separator-delimited prefix, and a stopword-cleaned form of each of those
// (kept only when longer than two characters). Keys are de-duplicated and
// order-preserving.
func MatchKeys(title string) []string {
	base := strings.TrimSpace(strings.ToLower(title))
	if base == "" {
		return nil
	}

	keys := []string{base}
	seen := map[string]struct{}{base: {}}
	add := func(key string) {
		key = strings.TrimSpace(key)
		if key == "" {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	stripped := stripShowPrefix(base)
	add(stripped)

	for _, variant := range []string{base, stripped} {
		for _, sep := range separators {
			if i := strings.Index(variant, sep); i > 0 {
				add(variant[:i])
			}
		}
	}

	// Cleaned forms of everything gathered so far.
	for _, key := range keys[:len(keys):len(keys)] {
		if cleaned := cleanStopWords(key); len(cleaned) > 2 {
			add(cleaned)
		}
	}

	return keys
}

func stripShowPrefix(title string) string {
	for _, prefix := range showPrefixes {
		if strings.HasPrefix(title, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(title, prefix))
		}
	}
	return title
}

// cleanStopWords removes stop words and collapses whitespace.
func cleanStopWords(key string) string {
	fields := strings.Fields(key)
	kept := fields[:0]
	for _, f := range fields {
		if _, drop := stopWords[f]; drop {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// BuildIndex maps every derived key of every entry to that entry. Insertion
// is first-writer-wins: the feed is newest-first, so when two entries derive
// the same key the newer one keeps it.
func BuildIndex(entries []domain.VideoFeedEntry) map[string]domain.VideoFeedEntry {
	index := make(map[string]domain.VideoFeedEntry)
	for _, entry := range entries {
		for _, key := range MatchKeys(entry.Title) {
			if _, claimed := index[key]; claimed {
				continue
			}
			index[key] = entry
		}
	}
	return index
}
