package goquery

import (
	"path"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/govlr/vlrgg"
)

// Selectors for the match detail page and its performance and economy
// tabs. Everything of interest lives in the page's third column.
const (
	selMatchColumn = "div.col.mod-3"
	selMatchHeader = "div.match-header"

	selHeaderEventIcon   = "div.match-header-super a.match-header-event img"
	selHeaderEventTitle  = "div.match-header-super a.match-header-event div div:first-child"
	selHeaderEventSeries = "div.match-header-super a.match-header-event div div.match-header-event-series"
	selHeaderEventLink   = "div.match-header-super a.match-header-event"
	selHeaderDate        = "div.match-header-super div.match-header-date div.moment-tz-convert"
	selHeaderPatch       = "div.match-header-super div.match-header-date > div:nth-child(3)"
	selHeaderNote        = "div.match-header-super div.match-header-date *:not(.moment-tz-convert)"
	selHeaderVsNotes     = "div.match-header-vs-note"
	selHeaderTeamLinks   = "div.match-header-vs a.match-header-link"
	selHeaderTeamName    = "div.wf-title-med"
	selHeaderScores      = "div.match-header-vs div.match-header-vs-score div.match-header-vs-score span:not(.match-header-vs-score-colon)"

	selStreams      = "div.match-streams div.match-streams-container div.match-streams-btn"
	selStreamName   = "div.match-streams-btn-embed span"
	selStreamLink   = "a.match-streams-btn-external"
	selVODs         = "div.match-vods div.match-streams-container a"

	selGames        = "div.vm-stats div.vm-stats-container div.vm-stats-game:not([data-game-id='all'])"
	selGameMap      = "div.vm-stats-game-header div.map div:first-child span"
	selGamePicked   = "div.vm-stats-game-header div.map span.picked"
	selGameDuration = "div.vm-stats-game-header div.map-duration"
	selGameTeams    = "div.vm-stats-game-header div.team"
	selGameRounds   = "div.vlr-rounds div.vlr-rounds-row-col:not(:first-child):not(.mod-spacing)"
	selRoundNum     = "div.rnd-num"
	selRoundSquares = "div.rnd-sq"
	selPlayerTables = "table.wf-table-inset.mod-overview"
	selPlayerRows   = "tbody tr:has(td.mod-player)"

	selPlayerCell  = "td.mod-player"
	selPlayerFlagT = "i.flag"
	selPlayerName  = "a div:first-child"
	selPlayerAgent = "td.mod-agents div span img"
	selPlayerStats = "td.mod-stat"

	selH2HItems       = "div.match-h2h a.wf-module-item.mod-h2h"
	selH2HEventIcon   = "div.match-h2h-matches-event img"
	selH2HEventName   = "div.match-h2h-matches-event-name"
	selH2HEventSeries = "div.match-h2h-matches-event-series"
	selH2HDate        = "div.match-h2h-matches-date"
	selScoreFor       = "span.rf"
	selScoreAgainst   = "span.ra"

	selHistoryCards    = "div.match-histories"
	selHistoryItems    = "a.match-histories-item"
	selHistoryOpponent = "span.match-histories-item-opponent-name"
	selHistoryLogo     = "img.match-histories-item-opponent-logo"
	selHistoryDate     = "div.match-histories-item-date"

	selAllGame     = "div.vm-stats div.vm-stats-game[data-game-id='all']"
	selKillMatrix  = "table.mod-normal"
	selAdvStats    = "table.mod-adv-stats"
	selTableRows   = "tbody tr"
	selStatSquares = "div.stats-sq"
	selMatrixName  = "div.team > div"
)

// ParseMatch extracts a match detail page: header metadata, both teams,
// per-game maps, rounds and player statistics, head to head history and
// each team's recent past matches. The performance and economy tabs are
// separate pages parsed by ParsePerformance and ParseEconomy.
func ParseMatch(html, url string, matchID int) (*vlrgg.Match, error) {
	m, err := parseMatchDetail(html, matchID)
	if err != nil {
		return nil, vlrgg.WrapError(err, url, "")
	}
	return m, nil
}

func parseMatchDetail(html string, matchID int) (*vlrgg.Match, error) {
	doc, err := document(html)
	if err != nil {
		return nil, err
	}
	col, err := required(doc.Selection, selMatchColumn, "match page column (div.col.mod-3)")
	if err != nil {
		return nil, err
	}
	header, err := required(col, selMatchHeader, "match header (div.match-header)")
	if err != nil {
		return nil, err
	}

	m := &vlrgg.Match{ID: matchID}
	if err := parseMatchHeader(header, m); err != nil {
		return nil, err
	}
	if err := parseMatchLinks(col, m); err != nil {
		return nil, err
	}

	games, err := findAll(col, selGames)
	if err != nil {
		return nil, err
	}
	for i := range games.Nodes {
		game, err := parseGame(m.Teams, games.Eq(i))
		if err != nil {
			return nil, err
		}
		m.Games = append(m.Games, game)
	}

	if m.HeadToHead, err = parseHeadToHead(col); err != nil {
		return nil, err
	}
	if m.PastMatches, err = parsePastMatches(m.Teams, col); err != nil {
		return nil, err
	}
	return m, nil
}

func parseMatchHeader(header *goquery.Selection, m *vlrgg.Match) error {
	icon, err := required(header, selHeaderEventIcon, "event icon (match-header-event img)")
	if err != nil {
		return err
	}
	m.Event.IconURL = absURL(icon.AttrOr("src", ""))

	if m.Event.Title, err = findText(header, selHeaderEventTitle); err != nil {
		return err
	}
	if m.Event.Series, err = findText(header, selHeaderEventSeries); err != nil {
		return err
	}
	link, err := find(header, selHeaderEventLink)
	if err != nil {
		return err
	}
	if id, slug, err := idFromHref(link.AttrOr("href", ""), "event"); err == nil {
		m.Event.ID = id
		m.Event.Slug = slug
	}

	dateEl, err := required(header, selHeaderDate, "match date element (moment-tz-convert)")
	if err != nil {
		return err
	}
	stamp := strings.TrimSpace(dateEl.AttrOr("data-utc-ts", ""))
	date, err := time.Parse(layoutUTCStamp, stamp)
	if err != nil {
		return vlrgg.WrapError(
			vlrgg.Errorf(vlrgg.EDATEPARSE, "cannot parse %q as match timestamp", stamp),
			"", "match date")
	}
	m.Date = date

	patch, err := findText(header, selHeaderPatch)
	if err != nil {
		return err
	}
	m.Patch = strings.TrimPrefix(patch, "Patch ")

	if m.Note, err = findText(header, selHeaderNote); err != nil {
		return err
	}

	notes, err := findAll(header, selHeaderVsNotes)
	if err != nil {
		return err
	}
	if notes.Length() > 0 {
		m.Status = firstText(notes.Eq(0))
	}
	if notes.Length() > 1 {
		m.Format = firstText(notes.Eq(1))
	}

	return parseHeaderTeams(header, m)
}

func parseHeaderTeams(header *goquery.Selection, m *vlrgg.Match) error {
	links, err := findAll(header, selHeaderTeamLinks)
	if err != nil {
		return err
	}
	for i := range links.Nodes {
		link := links.Eq(i)
		team := vlrgg.MatchTeam{Href: absURL(link.AttrOr("href", ""))}
		if id, slug, err := idFromHref(link.AttrOr("href", ""), "team"); err == nil {
			team.ID = id
			team.Slug = slug
		}

		nameDiv, err := find(link, selHeaderTeamName)
		if err != nil {
			return err
		}
		team.Name = firstText(nameDiv)
		if team.Name == "" {
			return vlrgg.WrapError(
				vlrgg.Errorf(vlrgg.ENOTFOUND, "element not found: team name in match header"),
				"", "team name")
		}

		img, err := find(link, "img")
		if err != nil {
			return err
		}
		team.IconURL = absURL(img.AttrOr("src", ""))
		m.Teams = append(m.Teams, team)
	}

	// The overall score renders as two spans around a colon. Anything but
	// a clean pair leaves both scores unset.
	spans, err := findAll(header, selHeaderScores)
	if err != nil {
		return err
	}
	if spans.Length() == 2 && len(m.Teams) == 2 {
		m.Teams[0].Score = optInt(firstText(spans.Eq(0)))
		m.Teams[1].Score = optInt(firstText(spans.Eq(1)))
	}
	return nil
}

func parseMatchLinks(col *goquery.Selection, m *vlrgg.Match) error {
	streams, err := findAll(col, selStreams)
	if err != nil {
		return err
	}
	for i := range streams.Nodes {
		btn := streams.Eq(i)
		name, err := findText(btn, selStreamName)
		if err != nil {
			return err
		}
		link, err := find(btn, selStreamLink)
		if err != nil {
			return err
		}
		m.Streams = append(m.Streams, vlrgg.MatchLink{Name: name, URL: link.AttrOr("href", "")})
	}

	vods, err := findAll(col, selVODs)
	if err != nil {
		return err
	}
	for i := range vods.Nodes {
		a := vods.Eq(i)
		m.VODs = append(m.VODs, vlrgg.MatchLink{Name: firstText(a), URL: a.AttrOr("href", "")})
	}
	return nil
}

func parseGame(teams []vlrgg.MatchTeam, g *goquery.Selection) (vlrgg.Game, error) {
	var game vlrgg.Game

	mapName, err := findText(g, selGameMap)
	if err != nil {
		return game, err
	}
	game.Map = mapName

	picked, err := find(g, selGamePicked)
	if err != nil {
		return game, err
	}
	switch {
	case picked.HasClass("mod-1") && len(teams) > 0:
		id := teams[0].ID
		game.PickedBy = &id
	case picked.HasClass("mod-2") && len(teams) > 1:
		id := teams[1].ID
		game.PickedBy = &id
	}

	if game.Duration, err = findText(g, selGameDuration); err != nil {
		return game, err
	}

	cols, err := findAll(g, selGameRounds)
	if err != nil {
		return game, err
	}
	if game.Rounds, err = parseRounds(teams, cols); err != nil {
		return game, err
	}

	// The two stat tables map positionally to the two team blocks in the
	// game header.
	tables, err := findAll(g, selPlayerTables)
	if err != nil {
		return game, err
	}
	if tables.Length() != 2 {
		return game, vlrgg.Errorf(vlrgg.ENOTFOUND,
			"element not found: two player tables in game, got %d", tables.Length())
	}
	players := [2][]vlrgg.GamePlayer{}
	for i := 0; i < 2; i++ {
		rows, err := findAll(tables.Eq(i), selPlayerRows)
		if err != nil {
			return game, err
		}
		for j := range rows.Nodes {
			p, err := parseGamePlayer(rows.Eq(j))
			if err != nil {
				return game, err
			}
			players[i] = append(players[i], p)
		}
	}

	teamDivs, err := findAll(g, selGameTeams)
	if err != nil {
		return game, err
	}
	if teamDivs.Length() != 2 {
		return game, vlrgg.Errorf(vlrgg.ENOTFOUND,
			"element not found: two team blocks in game header, got %d", teamDivs.Length())
	}
	for i := 0; i < 2; i++ {
		team, err := parseGameTeam(teamDivs.Eq(i), players[i])
		if err != nil {
			return game, err
		}
		game.Teams = append(game.Teams, team)
	}
	return game, nil
}

// parseRounds maps each round column to the team that won it. The column
// holds one result square per team; the square with mod-win names the
// winner by position. Columns without a winner are rounds that were never
// played.
func parseRounds(teams []vlrgg.MatchTeam, cols *goquery.Selection) ([]vlrgg.Round, error) {
	var rounds []vlrgg.Round
	for i := range cols.Nodes {
		c := cols.Eq(i)
		numText, err := findText(c, selRoundNum)
		if err != nil {
			return nil, err
		}
		num := intOrZero(numText)

		squares, err := findAll(c, selRoundSquares)
		if err != nil {
			return nil, err
		}
		winner := -1
		for j := range squares.Nodes {
			if squares.Eq(j).HasClass("mod-win") {
				winner = j
				break
			}
		}
		if winner < 0 {
			continue
		}
		if winner >= len(teams) {
			return nil, vlrgg.Errorf(vlrgg.ENOTFOUND,
				"element not found: winning team for round %d", num)
		}

		sq := squares.Eq(winner)
		side := "ct"
		if sq.HasClass("mod-t") {
			side = "t"
		}
		outcome, err := roundOutcome(sq)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, vlrgg.Round{
			Num:          num,
			WinnerTeamID: teams[winner].ID,
			Side:         side,
			Outcome:      outcome,
		})
	}
	return rounds, nil
}

// roundOutcome reads the win condition from the result square's icon
// filename, e.g. /img/vlr/game/round/elim.webp.
func roundOutcome(sq *goquery.Selection) (vlrgg.RoundOutcome, error) {
	img, err := find(sq, "img")
	if err != nil {
		return "", err
	}
	src := img.AttrOr("src", "")
	name := strings.TrimSuffix(path.Base(src), path.Ext(src))
	switch name {
	case "elim":
		return vlrgg.OutcomeElimination, nil
	case "boom":
		return vlrgg.OutcomeDetonation, nil
	case "defuse":
		return vlrgg.OutcomeDefusal, nil
	case "time":
		return vlrgg.OutcomeTimeout, nil
	}
	return "", nil
}

func parseGamePlayer(tr *goquery.Selection) (vlrgg.GamePlayer, error) {
	var p vlrgg.GamePlayer

	nameCol, err := required(tr, selPlayerCell, "player name column (td.mod-player)")
	if err != nil {
		return p, err
	}
	flag, err := find(nameCol, selPlayerFlagT)
	if err != nil {
		return p, err
	}
	p.Country = strings.TrimSpace(flag.AttrOr("title", ""))

	a, err := find(nameCol, "a")
	if err != nil {
		return p, err
	}
	if id, slug, err := idFromHref(a.AttrOr("href", ""), "player"); err == nil {
		p.ID = id
		p.Slug = slug
	}
	if p.Name, err = findText(nameCol, selPlayerName); err != nil {
		return p, err
	}

	agent, err := find(tr, selPlayerAgent)
	if err != nil {
		return p, err
	}
	p.Agent = agent.AttrOr("title", "")

	cells, err := findAll(tr, selPlayerStats)
	if err != nil {
		return p, err
	}
	if p.Overall, err = statLine(cells, "mod-both"); err != nil {
		return p, err
	}
	if p.Attack, err = statLine(cells, "mod-t"); err != nil {
		return p, err
	}
	if p.Defense, err = statLine(cells, "mod-ct"); err != nil {
		return p, err
	}
	return p, nil
}

// statLine reads one side's values out of the twelve stat cells of a
// player row. Each cell carries a span per side; a missing or dash value
// leaves the field unset.
func statLine(cells *goquery.Selection, side string) (vlrgg.StatLine, error) {
	var line vlrgg.StatLine

	sel := "span.side." + side
	texts := make([]string, 12)
	for i := range texts {
		t, err := findText(cells.Eq(i), sel)
		if err != nil {
			return line, err
		}
		texts[i] = t
	}

	line.Rating = optFloat(texts[0])
	line.ACS = optInt(texts[1])
	line.Kills = optInt(texts[2])
	line.Deaths = optInt(texts[3])
	line.Assists = optInt(texts[4])
	line.KDDiff = optInt(texts[5])
	line.KAST = optPercent(texts[6])
	line.ADR = optFloat(texts[7])
	line.HSPct = optPercent(texts[8])
	line.FirstKills = optInt(texts[9])
	line.FirstDeaths = optInt(texts[10])
	line.FKDiff = optInt(texts[11])
	return line, nil
}

func parseGameTeam(div *goquery.Selection, players []vlrgg.GamePlayer) (vlrgg.GameTeam, error) {
	var team vlrgg.GameTeam

	name, err := findText(div, "div.team-name")
	if err != nil {
		return team, err
	}
	team.Name = name

	scoreDiv, err := find(div, "div.score")
	if err != nil {
		return team, err
	}
	team.Score = optInt(firstText(scoreDiv))
	team.Winner = scoreDiv.HasClass("mod-win")

	attack, err := findText(div, "span.mod-t")
	if err != nil {
		return team, err
	}
	team.ScoreAttack = optInt(attack)
	defense, err := findText(div, "span.mod-ct")
	if err != nil {
		return team, err
	}
	team.ScoreDefense = optInt(defense)

	team.Players = players
	return team, nil
}

// parseHeadToHead extracts prior meetings of the two teams. Incomplete
// rows, which the site renders for matches without a reported score, are
// dropped.
func parseHeadToHead(col *goquery.Selection) ([]vlrgg.HeadToHead, error) {
	items, err := findAll(col, selH2HItems)
	if err != nil {
		return nil, err
	}

	var h2h []vlrgg.HeadToHead
	for i := range items.Nodes {
		item := items.Eq(i)
		id, slug, err := idFromHref(item.AttrOr("href", ""), "")
		if err != nil {
			if vlrgg.ErrorCode(err) == vlrgg.ESELECTOR {
				return nil, err
			}
			continue
		}

		icon, err := find(item, selH2HEventIcon)
		if err != nil {
			return nil, err
		}
		name, err := findText(item, selH2HEventName)
		if err != nil {
			return nil, err
		}
		series, err := findText(item, selH2HEventSeries)
		if err != nil {
			return nil, err
		}
		date, err := findText(item, selH2HDate)
		if err != nil {
			return nil, err
		}

		rf, err := find(item, selScoreFor)
		if err != nil {
			return nil, err
		}
		ra, err := find(item, selScoreAgainst)
		if err != nil {
			return nil, err
		}
		score1 := optInt(firstText(rf))
		score2 := optInt(firstText(ra))
		if score1 == nil || score2 == nil {
			continue
		}
		winner := 1
		if rf.HasClass("mod-win") {
			winner = 0
		}

		h2h = append(h2h, vlrgg.HeadToHead{
			MatchID:      id,
			MatchSlug:    slug,
			EventName:    name,
			EventSeries:  series,
			EventIconURL: absURL(icon.AttrOr("src", "")),
			Team1Score:   *score1,
			Team2Score:   *score2,
			WinnerIndex:  winner,
			Date:         date,
		})
	}
	return h2h, nil
}

// parsePastMatches extracts each team's recent results. The history cards
// render in header team order.
func parsePastMatches(teams []vlrgg.MatchTeam, col *goquery.Selection) ([]vlrgg.TeamPastMatches, error) {
	cards, err := findAll(col, selHistoryCards)
	if err != nil {
		return nil, err
	}

	var past []vlrgg.TeamPastMatches
	for i := range cards.Nodes {
		card := cards.Eq(i)
		entry := vlrgg.TeamPastMatches{}
		if i < len(teams) {
			entry.TeamID = teams[i].ID
		}

		items, err := findAll(card, selHistoryItems)
		if err != nil {
			return nil, err
		}
		for j := range items.Nodes {
			item := items.Eq(j)
			id, slug, err := idFromHref(item.AttrOr("href", ""), "")
			if err != nil {
				if vlrgg.ErrorCode(err) == vlrgg.ESELECTOR {
					return nil, err
				}
				continue
			}

			rf, err := findText(item, selScoreFor)
			if err != nil {
				return nil, err
			}
			ra, err := findText(item, selScoreAgainst)
			if err != nil {
				return nil, err
			}
			scoreFor := optInt(rf)
			scoreAgainst := optInt(ra)
			if scoreFor == nil || scoreAgainst == nil {
				continue
			}

			opponent, err := findText(item, selHistoryOpponent)
			if err != nil {
				return nil, err
			}
			logo, err := find(item, selHistoryLogo)
			if err != nil {
				return nil, err
			}
			date, err := findText(item, selHistoryDate)
			if err != nil {
				return nil, err
			}

			entry.Matches = append(entry.Matches, vlrgg.PastMatch{
				MatchID:         id,
				MatchSlug:       slug,
				ScoreFor:        *scoreFor,
				ScoreAgainst:    *scoreAgainst,
				Win:             item.HasClass("mod-win"),
				OpponentName:    opponent,
				OpponentLogoURL: absURL(logo.AttrOr("src", "")),
				Date:            date,
			})
		}
		past = append(past, entry)
	}
	return past, nil
}

// ParsePerformance extracts the aggregated kill matrix and the advanced
// stats table from a match's performance tab. Player names are resolved to
// ids through the rosters already parsed into m.
func ParsePerformance(html, url string, m *vlrgg.Match) (*vlrgg.Performance, error) {
	perf, err := parsePerformance(html, m)
	if err != nil {
		return nil, vlrgg.WrapError(err, url, "")
	}
	return perf, nil
}

func parsePerformance(html string, m *vlrgg.Match) (*vlrgg.Performance, error) {
	doc, err := document(html)
	if err != nil {
		return nil, err
	}
	col, err := required(doc.Selection, selMatchColumn, "match page column (div.col.mod-3)")
	if err != nil {
		return nil, err
	}
	allGame, err := required(col, selAllGame, "performance all-game section")
	if err != nil {
		return nil, err
	}

	names := playerNameIndex(m)
	perf := &vlrgg.Performance{}

	matrix, err := required(allGame, selKillMatrix, "kill matrix table (table.mod-normal)")
	if err != nil {
		return nil, err
	}
	if perf.KillMatrix, err = parseKillMatrix(matrix, names); err != nil {
		return nil, err
	}

	adv, err := required(allGame, selAdvStats, "advanced stats table (table.mod-adv-stats)")
	if err != nil {
		return nil, err
	}
	if perf.Players, err = parseAdvancedStats(adv, names); err != nil {
		return nil, err
	}
	return perf, nil
}

// playerNameIndex maps every rostered player name in the match to its id.
func playerNameIndex(m *vlrgg.Match) map[string]int {
	names := map[string]int{}
	if m == nil {
		return names
	}
	for _, game := range m.Games {
		for _, team := range game.Teams {
			for _, p := range team.Players {
				if p.ID != 0 && p.Name != "" {
					names[p.Name] = p.ID
				}
			}
		}
	}
	return names
}

// parseKillMatrix reads the kills n x n table. The first row names the
// victims; each following row holds one killer's squares of kills, deaths
// and the difference.
func parseKillMatrix(table *goquery.Selection, names map[string]int) ([]vlrgg.KillMatrixEntry, error) {
	rows, err := findAll(table, selTableRows)
	if err != nil {
		return nil, err
	}
	if rows.Length() == 0 {
		return nil, nil
	}

	headCells, err := findAll(rows.Eq(0), "td")
	if err != nil {
		return nil, err
	}
	var victims []int
	for i := 1; i < headCells.Length(); i++ {
		name, err := findText(headCells.Eq(i), selMatrixName)
		if err != nil {
			return nil, err
		}
		victims = append(victims, names[name])
	}

	var entries []vlrgg.KillMatrixEntry
	for r := 1; r < rows.Length(); r++ {
		cells, err := findAll(rows.Eq(r), "td")
		if err != nil {
			return nil, err
		}
		if cells.Length() == 0 {
			continue
		}
		killerName, err := findText(cells.Eq(0), selMatrixName)
		if err != nil {
			return nil, err
		}
		killerID := names[killerName]

		for c := 1; c < cells.Length(); c++ {
			squares, err := findAll(cells.Eq(c), selStatSquares)
			if err != nil {
				return nil, err
			}
			entry := vlrgg.KillMatrixEntry{KillerID: killerID}
			if c-1 < len(victims) {
				entry.VictimID = victims[c-1]
			}
			if squares.Length() > 0 {
				entry.Kills = intOrZero(firstText(squares.Eq(0)))
			}
			if squares.Length() > 1 {
				entry.Deaths = intOrZero(firstText(squares.Eq(1)))
			}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// parseAdvancedStats reads the multikill, clutch and utility table. Player
// rows have fourteen cells; header and spacer rows have fewer and are
// skipped.
func parseAdvancedStats(table *goquery.Selection, names map[string]int) ([]vlrgg.PlayerPerformance, error) {
	rows, err := findAll(table, selTableRows)
	if err != nil {
		return nil, err
	}

	var players []vlrgg.PlayerPerformance
	for r := 0; r < rows.Length(); r++ {
		cells, err := findAll(rows.Eq(r), "td")
		if err != nil {
			return nil, err
		}
		if cells.Length() < 14 {
			continue
		}
		name, err := findText(cells.Eq(0), selMatrixName)
		if err != nil {
			return nil, err
		}
		if name == "" {
			continue
		}

		cell := func(n int) int { return intOrZero(firstText(cells.Eq(n))) }
		players = append(players, vlrgg.PlayerPerformance{
			PlayerID:   names[name],
			PlayerName: name,
			Kills2K:    cell(2),
			Kills3K:    cell(3),
			Kills4K:    cell(4),
			Kills5K:    cell(5),
			Clutch1v1:  cell(6),
			Clutch1v2:  cell(7),
			Clutch1v3:  cell(8),
			Clutch1v4:  cell(9),
			Clutch1v5:  cell(10),
			EconRating: cell(11),
			Plants:     cell(12),
			Defuses:    cell(13),
		})
	}
	return players, nil
}

// ParseEconomy extracts the aggregated buy-type table from a match's
// economy tab.
func ParseEconomy(html, url string) (*vlrgg.Economy, error) {
	eco, err := parseEconomy(html)
	if err != nil {
		return nil, vlrgg.WrapError(err, url, "")
	}
	return eco, nil
}

func parseEconomy(html string) (*vlrgg.Economy, error) {
	doc, err := document(html)
	if err != nil {
		return nil, err
	}
	col, err := required(doc.Selection, selMatchColumn, "match page column (div.col.mod-3)")
	if err != nil {
		return nil, err
	}
	allGame, err := required(col, selAllGame, "economy all-game section")
	if err != nil {
		return nil, err
	}
	table, err := required(allGame, "table.mod-econ", "economy table (table.mod-econ)")
	if err != nil {
		return nil, err
	}

	rows, err := findAll(table, selTableRows)
	if err != nil {
		return nil, err
	}

	eco := &vlrgg.Economy{}
	for r := 0; r < rows.Length(); r++ {
		cells, err := findAll(rows.Eq(r), "td")
		if err != nil {
			return nil, err
		}
		if cells.Length() < 6 {
			continue
		}
		name := text(cells.Eq(0))
		if name == "" {
			continue
		}

		sq := func(n int) (string, error) {
			s, err := find(cells.Eq(n), selStatSquares)
			if err != nil {
				return "", err
			}
			return text(s), nil
		}

		pistols, err := sq(1)
		if err != nil {
			return nil, err
		}
		team := vlrgg.TeamEconomy{TeamName: name, PistolsWon: intOrZero(pistols)}
		for i, bucket := range []*vlrgg.EconCount{&team.Eco, &team.SemiEco, &team.SemiBuy, &team.FullBuy} {
			raw, err := sq(i + 2)
			if err != nil {
				return nil, err
			}
			bucket.Rounds, bucket.Won = splitRoundsWon(raw)
		}
		eco.Teams = append(eco.Teams, team)
	}
	return eco, nil
}

// splitRoundsWon parses the "total (won)" cell format, e.g. "9 (3)".
func splitRoundsWon(s string) (rounds, won int) {
	total, wonPart, ok := strings.Cut(s, "(")
	if !ok {
		return 0, 0
	}
	return intOrZero(strings.TrimSpace(total)),
		intOrZero(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(wonPart), ")")))
}
