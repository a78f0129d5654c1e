package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/govlr/vlrgg"
)

// Selectors for the team profile and transactions pages.
const (
	selTeamHeader      = ".team-header"
	selTeamName        = "h1.wf-title"
	selTeamTag         = "h2.wf-title.team-header-tag"
	selTeamLogo        = ".team-header-logo img"
	selTeamCountry     = ".team-header-country"
	selTeamCountryFlag = ".team-header-country i.flag"
	selTeamLinks       = ".team-header-links a"

	selRosterItems    = ".team-roster-item"
	selRosterLink     = "a[href]"
	selRosterAlias    = ".team-roster-item-name-alias"
	selRosterRealName = ".team-roster-item-name-real"
	selRosterAvatar   = ".team-roster-item-img img"
	selRosterStar     = "i.fa-star"
	selRosterRole     = ".team-roster-item-name-role"

	selModuleLabels = "div.wf-module-label"

	selTxnRows       = "tr.txn-item"
	selTxnAction     = "td.txn-item-action"
	selTxnFlag       = "i.flag"
	selTxnPlayerLink = `a[href^="/player/"]`
	selTxnRealName   = "div.ge-text-light"
)

// ParseTeam extracts a team profile page: header identity, current roster,
// event placements and total winnings.
func ParseTeam(html, url string, teamID int) (*vlrgg.Team, error) {
	team, err := parseTeam(html, teamID)
	if err != nil {
		return nil, vlrgg.WrapError(err, url, "")
	}
	return team, nil
}

func parseTeam(html string, teamID int) (*vlrgg.Team, error) {
	doc, err := document(html)
	if err != nil {
		return nil, err
	}

	info, err := parseTeamHeader(doc, teamID)
	if err != nil {
		return nil, err
	}
	roster, err := parseRoster(doc)
	if err != nil {
		return nil, err
	}
	placements, winnings, err := parseTeamPlacements(doc)
	if err != nil {
		return nil, err
	}

	team := &vlrgg.Team{
		Info:          *info,
		Roster:        roster,
		Placements:    placements,
		TotalWinnings: winnings,
	}
	if usd := optInt(strings.TrimPrefix(winnings, "$")); usd != nil {
		team.TotalWinningsUSD = *usd
	}
	return team, nil
}

func parseTeamHeader(doc *goquery.Document, teamID int) (*vlrgg.TeamInfo, error) {
	header, err := required(doc.Selection, selTeamHeader, "team header")
	if err != nil {
		return nil, err
	}

	name, err := findText(header, selTeamName)
	if err != nil {
		return nil, err
	}
	tag, err := findText(header, selTeamTag)
	if err != nil {
		return nil, err
	}
	logo, err := find(header, selTeamLogo)
	if err != nil {
		return nil, err
	}
	country, err := find(header, selTeamCountry)
	if err != nil {
		return nil, err
	}
	flag, err := find(header, selTeamCountryFlag)
	if err != nil {
		return nil, err
	}
	links, err := findAll(header, selTeamLinks)
	if err != nil {
		return nil, err
	}

	info := &vlrgg.TeamInfo{
		ID:          teamID,
		Name:        name,
		Tag:         tag,
		LogoURL:     absURL(logo.AttrOr("src", "")),
		Country:     text(country),
		CountryCode: modClass(flag),
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

// parseRoster extracts roster cards. Cards without a player link are
// section headers or placeholders and are dropped.
func parseRoster(doc *goquery.Document) ([]vlrgg.RosterMember, error) {
	items, err := findAll(doc.Selection, selRosterItems)
	if err != nil {
		return nil, err
	}

	var roster []vlrgg.RosterMember
	for i := range items.Nodes {
		item := items.Eq(i)

		link, err := find(item, selRosterLink)
		if err != nil {
			return nil, err
		}
		href := strings.TrimSpace(link.AttrOr("href", ""))
		id, slug, err := idFromHref(href, "player")
		if err != nil {
			if vlrgg.ErrorCode(err) == vlrgg.ESELECTOR {
				return nil, err
			}
			continue
		}

		alias, err := find(item, selRosterAlias)
		if err != nil {
			return nil, err
		}
		realName, err := find(item, selRosterRealName)
		if err != nil {
			return nil, err
		}
		flag, err := find(item, selTxnFlag)
		if err != nil {
			return nil, err
		}
		avatar, err := find(item, selRosterAvatar)
		if err != nil {
			return nil, err
		}
		star, err := find(item, selRosterStar)
		if err != nil {
			return nil, err
		}
		role, err := find(item, selRosterRole)
		if err != nil {
			return nil, err
		}

		member := vlrgg.RosterMember{
			ID:          id,
			Slug:        slug,
			Href:        absURL(href),
			Alias:       text(alias),
			RealName:    text(realName),
			CountryCode: modClass(flag),
			AvatarURL:   absURL(avatar.AttrOr("src", "")),
			Role:        text(role),
			Captain:     star.Length() > 0,
		}
		if member.Role == "" {
			member.Role = "player"
		}
		roster = append(roster, member)
	}
	return roster, nil
}

func parseTeamPlacements(doc *goquery.Document) ([]vlrgg.EventPlacement, string, error) {
	winnings, err := totalWinnings(doc)
	if err != nil {
		return nil, "", err
	}
	placements, err := parsePlacementItems(doc.Selection, "")
	if err != nil {
		return nil, "", err
	}
	return placements, winnings, nil
}

// totalWinnings locates the "Total Winnings" module label and reads the
// sibling element that carries the amount.
func totalWinnings(doc *goquery.Document) (string, error) {
	labels, err := findAll(doc.Selection, selModuleLabels)
	if err != nil {
		return "", err
	}
	for i := range labels.Nodes {
		label := labels.Eq(i)
		if !strings.Contains(text(label), "Total Winnings") {
			continue
		}
		return text(label.Next()), nil
	}
	return "", nil
}

// ParseTeamTransactions extracts the roster transaction table of a team's
// transactions page. The table is fully lenient: the site leaves out
// dates, reference links and real names on many historical rows.
func ParseTeamTransactions(html, url string) ([]vlrgg.TeamTransaction, error) {
	txns, err := parseTeamTransactions(html)
	if err != nil {
		return nil, vlrgg.WrapError(err, url, "")
	}
	return txns, nil
}

func parseTeamTransactions(html string) ([]vlrgg.TeamTransaction, error) {
	doc, err := document(html)
	if err != nil {
		return nil, err
	}

	rows, err := findAll(doc.Selection, selTxnRows)
	if err != nil {
		return nil, err
	}

	txns := make([]vlrgg.TeamTransaction, 0, rows.Length())
	for i := range rows.Nodes {
		txn, err := parseTransactionRow(rows.Eq(i))
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseTransactionRow(row *goquery.Selection) (vlrgg.TeamTransaction, error) {
	var txn vlrgg.TeamTransaction

	cells, err := findAll(row, "td")
	if err != nil {
		return txn, err
	}

	if raw := text(cells.Eq(0)); raw != "" && raw != "Unknown" {
		if d, err := parseDate(raw); err == nil {
			txn.Date = &d
		}
	}

	action, err := findText(row, selTxnAction)
	if err != nil {
		return txn, err
	}
	txn.Action = action

	flag, err := find(row, selTxnFlag)
	if err != nil {
		return txn, err
	}
	txn.CountryCode = modClass(flag)

	link, err := find(row, selTxnPlayerLink)
	if err != nil {
		return txn, err
	}
	if href := link.AttrOr("href", ""); href != "" {
		if id, slug, err := idFromHref(href, "player"); err == nil {
			txn.PlayerID = id
			txn.PlayerSlug = slug
		}
		txn.PlayerAlias = firstText(link)
	}

	realName, err := find(row, selTxnRealName)
	if err != nil {
		return txn, err
	}
	txn.PlayerRealName = text(realName)
	txn.Position = text(cells.Eq(4))

	ref, err := find(cells.Last(), selRosterLink)
	if err != nil {
		return txn, err
	}
	txn.ReferenceURL = strings.TrimSpace(ref.AttrOr("href", ""))

	return txn, nil
}
