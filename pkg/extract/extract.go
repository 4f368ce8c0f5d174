// Package extract walks the parsed episode-database page and captures raw
// per-episode field sets, season by season, in document order.
package extract

import (
	"fmt"
	"iter"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"hotones/pkg/domain"
)

var (
	seasonHrefPattern    = regexp.MustCompile(`/wiki/Season_\d+`)
	seasonHeadingPattern = regexp.MustCompile(`Season\s+(\d+)`)
)

// Extractor turns a parsed document into raw episode field sets.
type Extractor struct {
	logger *slog.Logger
}

// New creates an extractor. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Episodes yields raw episodes in document order: seasons as their headings
// appear on the page, items in source order within each season. The sequence
// is single-pass; ranging over it a second time yields nothing new since the
// document cursor state lives in the closure.
//
// Malformed pieces degrade rather than abort: an unparseable season heading
// yields season number 0 for its items, a heading with no episode list
// contributes nothing, and a broken item is skipped.
func (e *Extractor) Episodes(doc *goquery.Document) iter.Seq[domain.RawEpisode] {
	return func(yield func(domain.RawEpisode) bool) {
		e.seasonHeadings(doc).EachWithBreak(func(_ int, heading *goquery.Selection) bool {
			seasonNumber := parseSeasonNumber(heading.Text())

			list := heading.NextUntil("h2, h3").Filter("ul.episode-list").First()
			if list.Length() == 0 {
				e.logger.Warn("season heading has no episode list",
					"season", seasonNumber,
					"heading", strings.TrimSpace(heading.Text()))
				return true
			}

			keepGoing := true
			list.ChildrenFiltered("li").EachWithBreak(func(_ int, item *goquery.Selection) bool {
				raw, err := e.rawEpisode(seasonNumber, item)
				if err != nil {
					e.logger.Warn("skipping episode item", "season", seasonNumber, "error", err)
					return true
				}
				keepGoing = yield(raw)
				return keepGoing
			})
			return keepGoing
		})
	}
}

// SeasonCount reports how many season headings the document contains,
// matched or not. Used for the post-run quality summary.
func (e *Extractor) SeasonCount(doc *goquery.Document) int {
	return e.seasonHeadings(doc).Length()
}

// seasonHeadings selects h2/h3 headings that link to a season page,
// preserving document order.
func (e *Extractor) seasonHeadings(doc *goquery.Document) *goquery.Selection {
	return doc.Find("h2, h3").FilterFunction(func(_ int, heading *goquery.Selection) bool {
		matched := false
		heading.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
			href, _ := link.Attr("href")
			if seasonHrefPattern.MatchString(href) {
				matched = true
				return false
			}
			return true
		})
		return matched
	})
}

// rawEpisode captures one list item's fields without interpreting them.
// goquery itself does not return errors from selections, so the recover is
// the catch-all for anything unexpected in third-party markup.
func (e *Extractor) rawEpisode(seasonNumber int, item *goquery.Selection) (raw domain.RawEpisode, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("episode item extraction panicked: %v", r)
		}
	}()

	raw.SeasonNumber = seasonNumber
	raw.Label = strings.TrimSpace(item.Find(".episode-code, b").First().Text())
	raw.Title = episodeTitle(item)

	item.Find("small, i, span").Each(func(_ int, node *goquery.Selection) {
		if text := strings.TrimSpace(node.Text()); text != "" {
			raw.InlineTexts = append(raw.InlineTexts, text)
		}
	})
	item.Find("p").Each(func(_ int, node *goquery.Selection) {
		if text := strings.TrimSpace(node.Text()); text != "" {
			raw.Paragraphs = append(raw.Paragraphs, text)
		}
	})

	return raw, nil
}

// episodeTitle prefers the dedicated title link and falls back to the first
// link in the item.
func episodeTitle(item *goquery.Selection) string {
	if title := strings.TrimSpace(item.Find("a.episode-title").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(item.Find("a").First().Text())
}

// parseSeasonNumber reads the number out of a "Season <n>" heading, 0 when
// the heading text does not match.
func parseSeasonNumber(headingText string) int {
	m := seasonHeadingPattern.FindStringSubmatch(headingText)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
