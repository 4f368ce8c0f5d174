package episode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotones/pkg/domain"
	"hotones/pkg/taxonomy"
)

func TestNormalizeFullRecord(t *testing.T) {
	raw := domain.RawEpisode{
		SeasonNumber: 1,
		Label:        "S1E1",
		Title:        "  Guest One  ",
		InlineTexts:  []string{"S1E1", "January 1, 2020"},
		Paragraphs:   []string{"A chef visits the show."},
	}

	record, ok := Normalize(raw)
	require.True(t, ok)

	assert.Equal(t, 1, record.SeasonNumber)
	assert.Equal(t, 1, record.EpisodeNumber)
	assert.Equal(t, "Guest One", record.Title)
	assert.Equal(t, "2020-01-01", record.AirDate)
	assert.Equal(t, "A chef visits the show.", record.Description)
	require.Len(t, record.Tags, 1)
	assert.Equal(t, taxonomy.CategoryFood, record.Tags[0].Category)
	assert.Equal(t, []string{"Chef"}, record.Tags[0].SubCategories)
}

func TestNormalizeRejectsEmptyTitle(t *testing.T) {
	raw := domain.RawEpisode{
		SeasonNumber: 2,
		Label:        "S2E4",
		Title:        "   ",
		InlineTexts:  []string{"March 1, 2021"},
	}

	_, ok := Normalize(raw)
	assert.False(t, ok)
}

func TestNormalizeUnmatchedLabelKeepsZero(t *testing.T) {
	raw := domain.RawEpisode{SeasonNumber: 3, Label: "Episode Four", Title: "Guest"}

	record, ok := Normalize(raw)
	require.True(t, ok)
	assert.Equal(t, 0, record.EpisodeNumber)
	assert.Equal(t, 3, record.SeasonNumber)
}

func TestNormalizeAlwaysTags(t *testing.T) {
	record, ok := Normalize(domain.RawEpisode{Title: "Guest", Paragraphs: []string{"nothing notable"}})
	require.True(t, ok)
	require.Len(t, record.Tags, 1)
	assert.Equal(t, taxonomy.CategoryOther, record.Tags[0].Category)
	assert.Equal(t, []string{taxonomy.SubUnknown}, record.Tags[0].SubCategories)
}

func TestParseEpisodeNumber(t *testing.T) {
	assert.Equal(t, 7, parseEpisodeNumber("S4E7"))
	assert.Equal(t, 12, parseEpisodeNumber("s10e12"))
	assert.Equal(t, 0, parseEpisodeNumber("Bonus"))
	assert.Equal(t, 0, parseEpisodeNumber(""))
}

func TestNormalizeAirDate(t *testing.T) {
	assert.Equal(t, "2025-08-04", NormalizeAirDate([]string{"August 4, 2025"}))

	// First matching text wins.
	assert.Equal(t, "2020-01-01", NormalizeAirDate([]string{"S1E1", "January 1, 2020", "February 2, 2020"}))

	// The date can be embedded in a longer line; only the match is kept.
	assert.Equal(t, "2019-05-09", NormalizeAirDate([]string{"Aired May 9, 2019 on YouTube"}))

	// A matched but uncalendrical date stays verbatim.
	assert.Equal(t, "February 30, 2020", NormalizeAirDate([]string{"February 30, 2020"}))

	// No matching text at all.
	assert.Equal(t, "", NormalizeAirDate([]string{"S1E1", "no date here"}))
	assert.Equal(t, "", NormalizeAirDate(nil))
}
