package goquery

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/govlr/vlrgg"
)

// Selectors for the compact m-item rows used by player and team match
// history pages. Both pages share the same row markup.
const (
	selItemRows  = "div#wrapper div.col a.m-item"
	selItemPages = "div#wrapper div.action-container-pages"

	selItemThumb    = "div.m-item-thumb img"
	selItemEventDiv = "div.m-item-event div"
	selItemEvent    = "div.m-item-event"
	selItemTeams    = "div.m-item-team"
	selItemLogos    = "div.m-item-logo img"
	selItemScores   = "div.m-item-result span"
	selItemTeamName = "span.m-item-team-name"
	selItemTeamTag  = "span.m-item-team-tag"
	selItemVODs     = "div.m-item-vods div.wf-tag span.full"
	selItemDateDay  = "div.m-item-date div"
	selItemDate     = "div.m-item-date"
)

// ParsePlayerMatches extracts a page of a player's match history. The
// profiled player's team renders first in each row.
func ParsePlayerMatches(html, url string, page int) (vlrgg.Paginated[vlrgg.PlayerMatchItem], error) {
	var zero vlrgg.Paginated[vlrgg.PlayerMatchItem]

	items, totalPages, err := parseMatchItemPage(html)
	if err != nil {
		return zero, vlrgg.WrapError(err, url, "")
	}

	out := make([]vlrgg.PlayerMatchItem, len(items))
	for i, item := range items {
		out[i] = vlrgg.PlayerMatchItem{MatchItem: item}
		if len(item.Teams) > 0 {
			out[i].TeamName = item.Teams[0].Name
		}
	}
	return vlrgg.Paginated[vlrgg.PlayerMatchItem]{Items: out, Page: page, TotalPages: totalPages}, nil
}

// ParseTeamMatches extracts a page of a team's match history. The profiled
// team renders first in each row, so the opponent is the second entry.
func ParseTeamMatches(html, url string, page int) (vlrgg.Paginated[vlrgg.TeamMatchItem], error) {
	var zero vlrgg.Paginated[vlrgg.TeamMatchItem]

	items, totalPages, err := parseMatchItemPage(html)
	if err != nil {
		return zero, vlrgg.WrapError(err, url, "")
	}

	out := make([]vlrgg.TeamMatchItem, len(items))
	for i, item := range items {
		out[i] = vlrgg.TeamMatchItem{MatchItem: item}
		if len(item.Teams) > 1 {
			out[i].Opponent = item.Teams[1].Name
		}
	}
	return vlrgg.Paginated[vlrgg.TeamMatchItem]{Items: out, Page: page, TotalPages: totalPages}, nil
}

func parseMatchItemPage(html string) ([]vlrgg.MatchItem, int, error) {
	doc, err := document(html)
	if err != nil {
		return nil, 0, err
	}

	rows, err := findAll(doc.Selection, selItemRows)
	if err != nil {
		return nil, 0, err
	}

	items := make([]vlrgg.MatchItem, 0, rows.Length())
	for i := range rows.Nodes {
		item, err := parseMatchItem(rows.Eq(i))
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}

	totalPages, err := lastPageNumber(doc.Selection, selItemPages)
	if err != nil {
		return nil, 0, err
	}
	return items, totalPages, nil
}

func parseMatchItem(row *goquery.Selection) (vlrgg.MatchItem, error) {
	var item vlrgg.MatchItem

	href := row.AttrOr("href", "")
	id, slug, err := idFromHref(href, "")
	if err != nil {
		return item, vlrgg.WrapError(err, "", "match item href")
	}
	item.ID = id
	item.Slug = slug
	item.Href = vlrgg.BaseURL + href

	thumb, err := find(row, selItemThumb)
	if err != nil {
		return item, err
	}
	item.EventIconURL = absURL(thumb.AttrOr("src", ""))

	name, err := findText(row, selItemEventDiv)
	if err != nil {
		return item, err
	}
	item.EventName = name

	event, err := findAll(row, selItemEvent)
	if err != nil {
		return item, err
	}
	item.EventSeries = lastText(event)

	if err := parseMatchItemTeams(row, &item); err != nil {
		return item, err
	}

	vods, err := findAll(row, selItemVODs)
	if err != nil {
		return item, err
	}
	for i := range vods.Nodes {
		if v := lastText(vods.Eq(i)); v != "" {
			item.VODs = append(item.VODs, v)
		}
	}

	day, err := findText(row, selItemDateDay)
	if err != nil {
		return item, err
	}
	dateEl, err := find(row, selItemDate)
	if err != nil {
		return item, err
	}
	if d, err := parseDate(day); err == nil {
		item.Time = combineClock(d, lastText(dateEl))
	}

	return item, nil
}

// parseMatchItemTeams zips the row's team, logo and score columns. The
// three lists line up index for index in the row markup.
func parseMatchItemTeams(row *goquery.Selection, item *vlrgg.MatchItem) error {
	teams, err := findAll(row, selItemTeams)
	if err != nil {
		return err
	}
	logos, err := findAll(row, selItemLogos)
	if err != nil {
		return err
	}
	scores, err := findAll(row, selItemScores)
	if err != nil {
		return err
	}

	n := teams.Length()
	if l := logos.Length(); l < n {
		n = l
	}
	if s := scores.Length(); s < n {
		n = s
	}
	for i := 0; i < n; i++ {
		team := teams.Eq(i)
		name, err := findText(team, selItemTeamName)
		if err != nil {
			return err
		}
		tag, err := findText(team, selItemTeamTag)
		if err != nil {
			return err
		}
		item.Teams = append(item.Teams, vlrgg.MatchItemTeam{
			Name:    name,
			Tag:     tag,
			LogoURL: absURL(logos.Eq(i).AttrOr("src", "")),
			Score:   optInt(lastText(scores.Eq(i))),
		})
	}
	return nil
}
