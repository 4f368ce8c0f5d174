package taxonomy

import (
	"strings"

	"hotones/pkg/domain"
)

// Classify tags an episode from its title and description.
//
// Matching is plain case-insensitive substring containment with no word
// boundaries: "rap" inside "therapist" counts as a Rapper hit. That
// over-matching is intentional and must not be tightened, callers rely on
// the behavior being stable.
//
// The result follows the category declaration order and always has at least
// one tag; text no category keyword matches yields Other/Unknown.
func Classify(title, description string) []domain.EpisodeTag {
	combined := strings.ToLower(title + " " + description)

	var tags []domain.EpisodeTag
	for _, category := range Categories {
		if !anyKeyword(combined, categoryKeywords[category]) {
			continue
		}
		tags = append(tags, domain.EpisodeTag{
			Category:      category,
			SubCategories: subCategoriesFor(category, combined),
		})
	}

	if len(tags) == 0 {
		tags = []domain.EpisodeTag{{Category: CategoryOther, SubCategories: []string{SubUnknown}}}
	}
	return tags
}

// subCategoriesFor returns the matching sub-categories for a qualifying
// category, in taxonomy order, falling back to the category's first
// sub-category so a qualifying category is never left empty.
func subCategoriesFor(category, combined string) []string {
	legal := SubCategories[category]

	var subs []string
	for _, sub := range legal {
		if anyKeyword(combined, subCategoryKeywords[sub]) {
			subs = append(subs, sub)
		}
	}
	if len(subs) == 0 {
		subs = []string{legal[0]}
	}
	return subs
}

func anyKeyword(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
