package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotones/pkg/domain"
)

func sampleEpisodes() []domain.EpisodeRecord {
	return []domain.EpisodeRecord{
		{
			SeasonNumber:  1,
			EpisodeNumber: 1,
			Title:         "Guest One",
			AirDate:       "2020-01-01",
			Description:   "A chef visits the show.",
			Tags: []domain.EpisodeTag{
				{Category: "Food/Culinary", SubCategories: []string{"Chef"}},
			},
			VideoURL:           "https://www.youtube.com/watch?v=abc",
			VideoID:            "abc",
			VideoViewCount:     123456,
			VideoPublishedDate: "2020-01-02",
		},
		{
			SeasonNumber:  1,
			EpisodeNumber: 2,
			Title:         "Guest Two",
			AirDate:       "October 35, 2020",
			Tags: []domain.EpisodeTag{
				{Category: "Other", SubCategories: []string{"Unknown"}},
			},
			VideoSearchURL: "https://www.youtube.com/results?search_query=x",
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "episodes.json")
	original := sampleEpisodes()

	require.NoError(t, Save(path, original))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestSaveOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "episodes.json")
	require.NoError(t, Save(path, sampleEpisodes()))
	require.NoError(t, Save(path, sampleEpisodes()[:1]))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "episodes.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
