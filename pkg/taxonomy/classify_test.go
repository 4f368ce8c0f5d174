package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotones/pkg/domain"
)

func TestClassifyStandUpComedian(t *testing.T) {
	tags := Classify("Guest Name", "A stand-up comedian eats spicy wings.")

	require.NotEmpty(t, tags)
	var comedy *domain.EpisodeTag
	for i := range tags {
		if tags[i].Category == CategoryComedy {
			comedy = &tags[i]
		}
	}
	require.NotNil(t, comedy, "expected a Comedy tag")
	assert.Contains(t, comedy.SubCategories, "Stand-up Comedian")
}

func TestClassifyNoMatchYieldsOtherUnknown(t *testing.T) {
	tags := Classify("Guest Name", "an entirely unremarkable bio")

	require.Len(t, tags, 1)
	assert.Equal(t, CategoryOther, tags[0].Category)
	assert.Equal(t, []string{SubUnknown}, tags[0].SubCategories)
}

func TestClassifySubstringQuirkTherapist(t *testing.T) {
	// "therapist" contains "rap": the substring matcher deliberately has no
	// word boundaries, so this picks up Music/Rapper.
	tags := Classify("Guest Name", "a licensed therapist")

	require.Len(t, tags, 1)
	assert.Equal(t, CategoryMusic, tags[0].Category)
	assert.Contains(t, tags[0].SubCategories, "Rapper")
}

func TestClassifyMultipleCategories(t *testing.T) {
	tags := Classify("Guest Name", "an actor and stand-up comedian")

	require.Len(t, tags, 2)
	// Output order follows category declaration order, not text order.
	assert.Equal(t, CategoryMovieTV, tags[0].Category)
	assert.Equal(t, CategoryComedy, tags[1].Category)
}

func TestClassifyFallsBackToFirstSubCategory(t *testing.T) {
	// "culinary" qualifies Food/Culinary but matches no finer keyword.
	tags := Classify("Guest Name", "a culinary icon")

	require.Len(t, tags, 1)
	assert.Equal(t, CategoryFood, tags[0].Category)
	assert.Equal(t, []string{"Chef"}, tags[0].SubCategories)
}

func TestClassifyChef(t *testing.T) {
	tags := Classify("Guest One", "A chef visits the show.")

	require.Len(t, tags, 1)
	assert.Equal(t, CategoryFood, tags[0].Category)
	assert.Equal(t, []string{"Chef"}, tags[0].SubCategories)
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	tags := Classify("NBA Legend", "")

	require.Len(t, tags, 1)
	assert.Equal(t, CategorySports, tags[0].Category)
	assert.Contains(t, tags[0].SubCategories, "Basketball Player")
}

func TestSubCategoriesFollowTaxonomyOrder(t *testing.T) {
	tags := Classify("Guest Name", "standup comedian doing improv")

	require.Len(t, tags, 1)
	assert.Equal(t, []string{"Comedian", "Stand-up Comedian", "Improv Performer"}, tags[0].SubCategories)
}

func TestEveryCategoryHasSubCategories(t *testing.T) {
	for _, category := range Categories {
		require.NotEmpty(t, SubCategories[category], "category %s has no sub-categories", category)
	}
}
