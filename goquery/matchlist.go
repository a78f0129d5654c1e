package goquery

import (
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/govlr/vlrgg"
)

// Selectors for the event match list page. Day labels and match rows are
// interleaved in document order; each label sets the date for the rows
// that follow it.
const (
	selMatchListStream = "div#wrapper div.wf-label.mod-large, div#wrapper div.wf-card a.match-item"

	selMatchTime       = "div.match-item-time"
	selMatchTeams      = "div.match-item-vs div.match-item-vs-team"
	selMatchTeamName   = "div.match-item-vs-team-name div.text-of"
	selMatchTeamScore  = "div.match-item-vs-team-score"
	selMatchTags       = "div.match-item-vod div.wf-tag"
	selMatchEvent      = "div.match-item-event.text-of"
	selMatchSeries     = "div.match-item-event.text-of div.match-item-event-series.text-of"
)

// ParseEventMatches extracts the match rows of an event's match list page.
// Rows that cannot be parsed are dropped, as are duplicates of a match id
// already seen, which the site renders when a match spans day boundaries.
// A day label that fails to parse aborts the whole page since every row
// after it would carry the wrong date.
func ParseEventMatches(html, url string) ([]vlrgg.EventMatchItem, error) {
	items, err := parseEventMatches(html)
	if err != nil {
		return nil, vlrgg.WrapError(err, url, "")
	}
	return items, nil
}

func parseEventMatches(html string) ([]vlrgg.EventMatchItem, error) {
	doc, err := document(html)
	if err != nil {
		return nil, err
	}

	stream, err := findAll(doc.Selection, selMatchListStream)
	if err != nil {
		return nil, err
	}

	var (
		items   []vlrgg.EventMatchItem
		curDate *time.Time
		seen    = map[int]bool{}
	)
	for i := range stream.Nodes {
		el := stream.Eq(i)
		if el.HasClass("wf-label") {
			label := firstText(el)
			if label == "" {
				continue
			}
			d, err := parseDate(label)
			if err != nil {
				return nil, vlrgg.WrapError(err, "", "match list day label")
			}
			curDate = &d
			continue
		}

		item, err := parseEventMatchRow(el, curDate)
		if err != nil {
			if vlrgg.ErrorCode(err) == vlrgg.ESELECTOR {
				return nil, err
			}
			continue
		}
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		items = append(items, item)
	}
	return items, nil
}

func parseEventMatchRow(row *goquery.Selection, date *time.Time) (vlrgg.EventMatchItem, error) {
	var item vlrgg.EventMatchItem

	href := row.AttrOr("href", "")
	id, slug, err := idFromHref(href, "")
	if err != nil {
		return item, err
	}
	item.ID = id
	item.Slug = slug
	item.Href = vlrgg.BaseURL + href

	if date != nil {
		clock, err := findText(row, selMatchTime)
		if err != nil {
			return item, err
		}
		item.Time = combineClock(*date, clock)
	}

	teams, err := findAll(row, selMatchTeams)
	if err != nil {
		return item, err
	}
	for i := range teams.Nodes {
		team := teams.Eq(i)
		name, err := findText(team, selMatchTeamName)
		if err != nil {
			return item, err
		}
		score, err := findText(team, selMatchTeamScore)
		if err != nil {
			return item, err
		}
		item.Teams = append(item.Teams, vlrgg.EventMatchTeam{
			Name:   name,
			Score:  optInt(score),
			Winner: team.HasClass("mod-winner"),
		})
	}

	tags, err := findAll(row, selMatchTags)
	if err != nil {
		return item, err
	}
	for i := range tags.Nodes {
		if tag := lastText(tags.Eq(i)); tag != "" {
			item.Tags = append(item.Tags, tag)
		}
	}

	event, err := findAll(row, selMatchEvent)
	if err != nil {
		return item, err
	}
	item.Event = lastText(event)

	series, err := findText(row, selMatchSeries)
	if err != nil {
		return item, err
	}
	item.Series = series

	return item, nil
}
