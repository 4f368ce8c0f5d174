package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"hotones/pkg/catalog"
	"hotones/pkg/domain"
	"hotones/pkg/scraper"
)

func renderTable(headers []string, rows [][]string, styled bool) string {
	tw := table.NewWriter()
	if styled {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range header {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// renderEpisodeList renders search/season/listing results.
func renderEpisodeList(episodes []catalog.Indexed, styled bool) string {
	rows := make([][]string, 0, len(episodes))
	for _, it := range episodes {
		ep := it.Episode
		rows = append(rows, []string{
			strconv.Itoa(it.Position),
			fmt.Sprintf("S%dE%d", ep.SeasonNumber, ep.EpisodeNumber),
			ep.Title,
			ep.AirDate,
			tagSummary(ep.Tags),
		})
	}
	return renderTable([]string{"#", "Code", "Title", "Aired", "Tags"}, rows, styled)
}

// renderEpisodeDetail renders the full single-episode view.
func renderEpisodeDetail(it catalog.Indexed) string {
	ep := it.Episode
	var b strings.Builder

	fmt.Fprintf(&b, "#%d  %s (S%dE%d)\n", it.Position, ep.Title, ep.SeasonNumber, ep.EpisodeNumber)
	if ep.AirDate != "" {
		fmt.Fprintf(&b, "Aired:       %s\n", ep.AirDate)
	}
	fmt.Fprintf(&b, "Tags:        %s\n", tagSummary(ep.Tags))
	if ep.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", ep.Description)
	}

	switch {
	case ep.VideoURL != "":
		fmt.Fprintf(&b, "Video:       %s\n", ep.VideoURL)
		if ep.VideoViewCount > 0 {
			fmt.Fprintf(&b, "Views:       %d\n", ep.VideoViewCount)
		}
		if ep.VideoPublishedDate != "" {
			fmt.Fprintf(&b, "Published:   %s\n", ep.VideoPublishedDate)
		}
	case ep.VideoSearchURL != "":
		fmt.Fprintf(&b, "Search:      %s\n", ep.VideoSearchURL)
	}
	return b.String()
}

// renderStats renders the interactive stats view.
func renderStats(stats catalog.Stats, styled bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d episodes across %d seasons, %d with a direct video link\n",
		stats.Total, stats.Seasons, stats.WithDirectVideo)

	rows := make([][]string, 0, len(stats.Categories))
	for _, c := range stats.Categories {
		rows = append(rows, []string{strconv.Itoa(c.Count), c.Category})
	}
	b.WriteString(renderTable([]string{"Episodes", "Category"}, rows, styled))
	return b.String()
}

// renderQualitySummary renders the post-scrape data-quality check.
func renderQualitySummary(report *scraper.RunReport, stats catalog.Stats) string {
	rows := [][]string{
		{strconv.Itoa(report.SeasonsFound), "season sections found"},
		{strconv.Itoa(report.ItemsSeen), "episode items seen"},
		{strconv.Itoa(stats.Total), "episodes kept"},
		{strconv.Itoa(report.Rejected), "rejected (empty title)"},
		{strconv.Itoa(report.MissingDate), "missing air date"},
		{strconv.Itoa(report.MissingDescription), "missing description"},
		{strconv.Itoa(report.UnknownNumbers), "unparseable season/episode numbers"},
		{strconv.Itoa(report.DirectMatches), "direct video matches"},
		{strconv.Itoa(report.SearchFallbacks), "search-URL fallbacks"},
	}
	if report.FeedFailed {
		rows = append(rows, []string{"!", "video feed was unavailable"})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Data quality (run %s, %s):\n", report.RunID, report.Duration.Round(timeRounding))
	b.WriteString(renderTable([]string{"Count", "Check"}, rows, stdoutIsTerminal()))
	return b.String()
}

func tagSummary(tags []domain.EpisodeTag) string {
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, fmt.Sprintf("%s (%s)", tag.Category, strings.Join(tag.SubCategories, ", ")))
	}
	return strings.Join(parts, "; ")
}
