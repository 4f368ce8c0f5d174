package domain

// EpisodeTag classifies an episode's guest by profession.
// SubCategories follows the taxonomy order for its category and never
// contains duplicates.
type EpisodeTag struct {
	Category      string   `json:"category"`
	SubCategories []string `json:"sub_categories"`
}

// EpisodeRecord is one scraped episode. Title is never empty and Tags always
// holds at least one element. AirDate is YYYY-MM-DD when the source date was
// parseable, otherwise the source text verbatim (possibly empty).
//
// The video fields are filled by the feed enhancement step: either the
// direct-link group (VideoURL, VideoID, VideoViewCount, VideoPublishedDate)
// or VideoSearchURL as a fallback, never both.
type EpisodeRecord struct {
	SeasonNumber  int          `json:"season_number"`
	EpisodeNumber int          `json:"episode_number"`
	Title         string       `json:"title"`
	AirDate       string       `json:"air_date"`
	Description   string       `json:"description"`
	Tags          []EpisodeTag `json:"tags"`

	VideoURL           string `json:"video_url,omitempty"`
	VideoID            string `json:"video_id,omitempty"`
	VideoViewCount     int64  `json:"video_view_count,omitempty"`
	VideoPublishedDate string `json:"video_published_date,omitempty"`
	VideoSearchURL     string `json:"video_search_url,omitempty"`
}

// RawEpisode is the untyped field capture produced by the document extractor
// before normalization. InlineTexts holds the item's short inline text nodes
// (date candidates among them) and Paragraphs the paragraph-level texts
// (description candidates), both in document order.
type RawEpisode struct {
	SeasonNumber int
	Label        string
	Title        string
	InlineTexts  []string
	Paragraphs   []string
}

// VideoFeedEntry is one item from the YouTube channel feed.
type VideoFeedEntry struct {
	Title         string
	URL           string
	VideoID       string
	PublishedDate string
	Description   string
	ViewCount     int64
}
