package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/govlr/vlrgg"
)

// Selectors for the player profile page. The profile renders a header
// block followed by labelled cards; every card is optional, so each
// section is located through its label text rather than page position.
const (
	selPlayerHeader   = "div.player-header"
	selPlayerAlias    = "h1.wf-title"
	selPlayerRealName = "h2.player-real-name"
	selPlayerAvatar   = "img"
	selPlayerCountry  = "div.ge-text-light"
	selPlayerFlag     = "i.flag"
	selPlayerLinks    = "a[href]"

	selSectionLabels = "div.wf-label"
	selSectionCard   = "div.wf-card"
	selModuleItems   = "a.wf-module-item"
	selLightNote     = "div.ge-text-light"

	selAgentRows     = "div#wrapper table.wf-table tbody tr"
	selAgentIcon     = "td:first-child img"
	selPlacementTeam = "div.player-event-item-team"
)

// Section label texts on the player profile page.
const (
	labelCurrentTeams = "Current Teams"
	labelPastTeams    = "Past Teams"
	labelNews         = "Recent News"
	labelPlacements   = "Event Placements"
)

// ParsePlayer extracts a player profile page. Sections that the profile
// does not render, such as past teams for a rookie or current teams for a
// free agent, come back empty rather than as errors.
func ParsePlayer(html, url string, playerID int) (*vlrgg.Player, error) {
	player, err := parsePlayer(html, playerID)
	if err != nil {
		return nil, vlrgg.WrapError(err, url, "")
	}
	return player, nil
}

func parsePlayer(html string, playerID int) (*vlrgg.Player, error) {
	doc, err := document(html)
	if err != nil {
		return nil, err
	}

	info, err := parsePlayerHeader(doc, playerID)
	if err != nil {
		return nil, err
	}

	current, err := parsePlayerTeams(doc, labelCurrentTeams)
	if err != nil {
		return nil, err
	}
	past, err := parsePlayerTeams(doc, labelPastTeams)
	if err != nil {
		return nil, err
	}
	agents, err := parseAgentStats(doc)
	if err != nil {
		return nil, err
	}
	news, err := parsePlayerNews(doc)
	if err != nil {
		return nil, err
	}

	card, err := sectionCard(doc, labelPlacements)
	if err != nil {
		return nil, err
	}
	placements, err := parsePlacementItems(card, selPlacementTeam)
	if err != nil {
		return nil, err
	}

	return &vlrgg.Player{
		Info:         *info,
		CurrentTeams: current,
		PastTeams:    past,
		AgentStats:   agents,
		News:         news,
		Placements:   placements,
	}, nil
}

func parsePlayerHeader(doc *goquery.Document, playerID int) (*vlrgg.PlayerInfo, error) {
	header, err := required(doc.Selection, selPlayerHeader, "player header")
	if err != nil {
		return nil, err
	}

	alias, err := findText(header, selPlayerAlias)
	if err != nil {
		return nil, err
	}
	realName, err := findText(header, selPlayerRealName)
	if err != nil {
		return nil, err
	}
	avatar, err := find(header, selPlayerAvatar)
	if err != nil {
		return nil, err
	}
	country, err := find(header, selPlayerCountry)
	if err != nil {
		return nil, err
	}
	flag, err := find(header, selPlayerFlag)
	if err != nil {
		return nil, err
	}
	links, err := findAll(header, selPlayerLinks)
	if err != nil {
		return nil, err
	}

	info := &vlrgg.PlayerInfo{
		ID:          playerID,
		Alias:       alias,
		RealName:    realName,
		Country:     text(country),
		CountryCode: modClass(flag),
		AvatarURL:   absURL(avatar.AttrOr("src", "")),
	}
	for i := range links.Nodes {
		a := links.Eq(i)
		href := strings.TrimSpace(a.AttrOr("href", ""))
		label := text(a)
		if href == "" || label == "" {
			continue
		}
		info.Socials = append(info.Socials, vlrgg.Social{
			Platform: inferPlatform(href),
			URL:      href,
			Label:    label,
		})
	}
	return info, nil
}

// sectionCard returns the card following the section label containing
// title. The result is empty when the profile does not render the
// section.
func sectionCard(doc *goquery.Document, title string) (*goquery.Selection, error) {
	labels, err := findAll(doc.Selection, selSectionLabels)
	if err != nil {
		return nil, err
	}
	cardSel, err := compile(selSectionCard)
	if err != nil {
		return nil, err
	}
	for i := range labels.Nodes {
		label := labels.Eq(i)
		if !strings.Contains(text(label), title) {
			continue
		}
		return label.NextAll().FilterMatcher(cardSel).First(), nil
	}
	return labels.Slice(0, 0), nil
}

func parsePlayerTeams(doc *goquery.Document, title string) ([]vlrgg.PlayerTeam, error) {
	card, err := sectionCard(doc, title)
	if err != nil {
		return nil, err
	}
	items, err := findAll(card, selModuleItems)
	if err != nil {
		return nil, err
	}

	var teams []vlrgg.PlayerTeam
	for i := range items.Nodes {
		a := items.Eq(i)
		href := strings.TrimSpace(a.AttrOr("href", ""))
		id, slug, err := idFromHref(href, "team")
		if err != nil {
			if vlrgg.ErrorCode(err) == vlrgg.ESELECTOR {
				return nil, err
			}
			continue
		}
		note, err := find(a, selLightNote)
		if err != nil {
			return nil, err
		}
		teams = append(teams, vlrgg.PlayerTeam{
			ID:   id,
			Slug: slug,
			Href: absURL(href),
			Name: firstText(a),
			Note: text(note),
		})
	}
	return teams, nil
}

func parsePlayerNews(doc *goquery.Document) ([]vlrgg.NewsItem, error) {
	card, err := sectionCard(doc, labelNews)
	if err != nil {
		return nil, err
	}
	items, err := findAll(card, selModuleItems)
	if err != nil {
		return nil, err
	}

	var news []vlrgg.NewsItem
	for i := range items.Nodes {
		a := items.Eq(i)
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" {
			continue
		}
		date, err := find(a, selLightNote)
		if err != nil {
			return nil, err
		}
		news = append(news, vlrgg.NewsItem{
			Title: firstText(a),
			Href:  absURL(href),
			Date:  text(date),
		})
	}
	return news, nil
}

// parseAgentStats reads the per-agent statistics table. Rows are keyed by
// the agent icon in the first cell; header and spacer rows have none and
// are skipped. Dash cells mean the agent was not played in the selected
// timespan.
func parseAgentStats(doc *goquery.Document) ([]vlrgg.AgentStats, error) {
	rows, err := findAll(doc.Selection, selAgentRows)
	if err != nil {
		return nil, err
	}

	var stats []vlrgg.AgentStats
	for i := range rows.Nodes {
		row := rows.Eq(i)
		icon, err := find(row, selAgentIcon)
		if err != nil {
			return nil, err
		}
		if icon.Length() == 0 {
			continue
		}
		cells, err := findAll(row, "td")
		if err != nil {
			return nil, err
		}

		cell := func(n int) string { return text(cells.Eq(n)) }
		agent := icon.AttrOr("title", icon.AttrOr("alt", ""))

		stats = append(stats, vlrgg.AgentStats{
			Agent:       agent,
			Usage:       cell(1),
			Rounds:      optInt(cell(2)),
			Rating:      optFloat(cell(3)),
			ACS:         optFloat(cell(4)),
			KD:          optFloat(cell(5)),
			KAST:        optPercent(cell(6)),
			ADR:         optFloat(cell(7)),
			KPR:         optFloat(cell(8)),
			APR:         optFloat(cell(9)),
			FKPR:        optFloat(cell(10)),
			FDPR:        optFloat(cell(11)),
			Kills:       optInt(cell(12)),
			Deaths:      optInt(cell(13)),
			Assists:     optInt(cell(14)),
			FirstKills:  optInt(cell(15)),
			FirstDeaths: optInt(cell(16)),
		})
	}
	return stats, nil
}
