// Package taxonomy holds the static guest-profession taxonomy and the
// keyword classifier that maps episode text onto it.
package taxonomy

// Category labels, in the fixed order classification results follow.
const (
	CategoryMovieTV  = "Movie/TV"
	CategoryMusic    = "Music"
	CategoryComedy   = "Comedy"
	CategorySports   = "Sports"
	CategoryFood     = "Food/Culinary"
	CategoryInternet = "Internet/Social Media"

	// CategoryOther / SubUnknown tag episodes no category keyword matched.
	CategoryOther = "Other"
	SubUnknown    = "Unknown"
)

// Categories lists the classifiable categories in declaration order.
var Categories = []string{
	CategoryMovieTV,
	CategoryMusic,
	CategoryComedy,
	CategorySports,
	CategoryFood,
	CategoryInternet,
}

// SubCategories maps each category to its legal sub-category labels. The
// first entry doubles as the fallback when no finer keyword matches.
var SubCategories = map[string][]string{
	CategoryMovieTV:  {"Actor", "Director", "Producer", "TV Host", "Reality Star"},
	CategoryMusic:    {"Musician", "Rapper", "Singer", "DJ"},
	CategoryComedy:   {"Comedian", "Stand-up Comedian", "Improv Performer", "Sketch Performer"},
	CategorySports:   {"Athlete", "Basketball Player", "Football Player", "Fighter", "Skater", "Wrestler"},
	CategoryFood:     {"Chef", "Food Critic", "Restaurateur", "Baker"},
	CategoryInternet: {"YouTuber", "Streamer", "TikToker", "Influencer", "Podcaster"},
}

// categoryKeywords qualifies a category when any keyword appears as a
// substring of the combined episode text.
var categoryKeywords = map[string][]string{
	CategoryMovieTV:  {"actor", "actress", "movie", "film", "director", "tv series", "television", "sitcom", "hollywood", "netflix"},
	CategoryMusic:    {"musician", "rapper", "rap", "singer", "album", "band", "hip-hop", "hip hop", "pop star", "dj"},
	CategoryComedy:   {"comedian", "comedy", "stand-up", "standup", "snl", "saturday night live", "improv"},
	CategorySports:   {"athlete", "nba", "nfl", "ufc", "mma", "boxer", "basketball", "football", "olympic", "wrestler", "skateboard"},
	CategoryFood:     {"chef", "cook", "restaurateur", "culinary", "food critic", "baker", "sommelier"},
	CategoryInternet: {"youtuber", "youtube", "streamer", "twitch", "tiktok", "influencer", "podcast"},
}

// subCategoryKeywords refines a qualifying category. A sub-category is
// assigned when any of its keywords appears in the combined text and the
// sub-category is legal for that category.
var subCategoryKeywords = map[string][]string{
	"Actor":             {"actor", "actress", "starred", "movie", "film"},
	"Director":          {"director", "filmmaker"},
	"Producer":          {"producer"},
	"TV Host":           {"tv host", "talk show", "television host"},
	"Reality Star":      {"reality"},
	"Musician":          {"musician", "band", "guitarist", "drummer"},
	"Rapper":            {"rap", "hip-hop", "hip hop"},
	"Singer":            {"singer", "vocalist", "pop star"},
	"DJ":                {"dj"},
	"Comedian":          {"comedian", "comedy"},
	"Stand-up Comedian": {"stand-up", "standup"},
	"Improv Performer":  {"improv"},
	"Sketch Performer":  {"sketch", "snl", "saturday night live"},
	"Athlete":           {"athlete", "olympic"},
	"Basketball Player": {"nba", "basketball"},
	"Football Player":   {"nfl", "football", "quarterback"},
	"Fighter":           {"ufc", "mma", "boxer", "boxing"},
	"Skater":            {"skateboard", "skater"},
	"Wrestler":          {"wrestler", "wwe"},
	"Chef":              {"chef", "cook"},
	"Food Critic":       {"food critic"},
	"Restaurateur":      {"restaurateur", "restaurant owner"},
	"Baker":             {"baker", "pastry"},
	"YouTuber":          {"youtuber", "youtube"},
	"Streamer":          {"streamer", "twitch"},
	"TikToker":          {"tiktok"},
	"Influencer":        {"influencer", "instagram"},
	"Podcaster":         {"podcast"},
}
