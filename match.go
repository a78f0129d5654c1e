package vlrgg

import (
	"context"
	"time"
)

// Match is the full content of a match page, including every game played
// and the aggregated performance and economy tabs when available.
type Match struct {
	ID          int               `json:"id"`
	Event       MatchEvent        `json:"event"`
	Date        time.Time         `json:"date"`
	Patch       string            `json:"patch"`
	Status      string            `json:"status"`
	Format      string            `json:"format"`
	Note        string            `json:"note"`
	Teams       []MatchTeam       `json:"teams"` // exactly two
	Streams     []MatchLink       `json:"streams"`
	VODs        []MatchLink       `json:"vods"`
	Games       []Game            `json:"games"`
	HeadToHead  []HeadToHead      `json:"headToHead"`
	PastMatches []TeamPastMatches `json:"pastMatches"`
	Performance *Performance      `json:"performance"`
	Economy     *Economy          `json:"economy"`
}

// MatchEvent is the event a match belongs to, as shown in its header.
type MatchEvent struct {
	ID      int    `json:"id"`
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Series  string `json:"series"`
	IconURL string `json:"iconUrl"`
}

// MatchTeam is a team as shown in the match header.
type MatchTeam struct {
	ID      int    `json:"id"`
	Slug    string `json:"slug"`
	Href    string `json:"href"`
	Name    string `json:"name"`
	Score   *int   `json:"score"`
	IconURL string `json:"iconUrl"`
}

// MatchLink is a named external link on a match page (stream or VOD).
type MatchLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Game is a single map played within a match.
type Game struct {
	Map      string     `json:"map"`
	PickedBy *int       `json:"pickedBy"` // ID of the team that picked the map
	Duration string     `json:"duration"`
	Teams    []GameTeam `json:"teams"` // exactly two, header order
	Rounds   []Round    `json:"rounds"`
}

// GameTeam is one team's scoreboard for a single game.
type GameTeam struct {
	Name         string       `json:"name"`
	Score        *int         `json:"score"`
	ScoreAttack  *int         `json:"scoreAttack"`
	ScoreDefense *int         `json:"scoreDefense"`
	Winner       bool         `json:"winner"`
	Players      []GamePlayer `json:"players"`
}

// RoundOutcome is how a round ended, derived from the round marker icon.
// The zero value means the icon was missing or unrecognized.
type RoundOutcome string

// RoundOutcome values.
const (
	OutcomeElimination RoundOutcome = "elimination"
	OutcomeDetonation  RoundOutcome = "detonation"
	OutcomeDefusal     RoundOutcome = "defusal"
	OutcomeTimeout     RoundOutcome = "timeout"
)

// Round records the result of a single round within a game. Side is the
// winning side as tagged on the page: "t" (attack) or "ct" (defense).
type Round struct {
	Num          int          `json:"num"`
	WinnerTeamID int          `json:"winnerTeamId"`
	Side         string       `json:"side"`
	Outcome      RoundOutcome `json:"outcome"`
}

// GamePlayer is a player's scoreboard row within a single game. The
// three stat lines carry the row's side splits.
type GamePlayer struct {
	ID      int      `json:"id"`
	Slug    string   `json:"slug"`
	Name    string   `json:"name"`
	Country string   `json:"country"`
	Agent   string   `json:"agent"`
	Overall StatLine `json:"overall"`
	Attack  StatLine `json:"attack"`
	Defense StatLine `json:"defense"`
}

// StatLine is one side split of a player's scoreboard row. Nil fields
// were shown as a dash on the page. KAST and HSPct are fractions in
// [0, 1].
type StatLine struct {
	Rating      *float64 `json:"rating"`
	ACS         *int     `json:"acs"`
	Kills       *int     `json:"kills"`
	Deaths      *int     `json:"deaths"`
	Assists     *int     `json:"assists"`
	KDDiff      *int     `json:"kdDiff"`
	KAST        *float64 `json:"kast"`
	ADR         *float64 `json:"adr"`
	HSPct       *float64 `json:"hsPct"`
	FirstKills  *int     `json:"firstKills"`
	FirstDeaths *int     `json:"firstDeaths"`
	FKDiff      *int     `json:"fkDiff"`
}

// HeadToHead is a previous meeting between the two header teams, from
// the match page sidebar. WinnerIndex is 0 or 1, into Match.Teams.
type HeadToHead struct {
	MatchID      int    `json:"matchId"`
	MatchSlug    string `json:"matchSlug"`
	EventName    string `json:"eventName"`
	EventSeries  string `json:"eventSeries"`
	EventIconURL string `json:"eventIconUrl"`
	Team1Score   int    `json:"team1Score"`
	Team2Score   int    `json:"team2Score"`
	WinnerIndex  int    `json:"winnerIndex"`
	Date         string `json:"date"`
}

// TeamPastMatches groups one header team's recent results shown on the
// match page.
type TeamPastMatches struct {
	TeamID  int         `json:"teamId"`
	Matches []PastMatch `json:"matches"`
}

// PastMatch is a single recent result for a header team.
type PastMatch struct {
	MatchID         int    `json:"matchId"`
	MatchSlug       string `json:"matchSlug"`
	ScoreFor        int    `json:"scoreFor"`
	ScoreAgainst    int    `json:"scoreAgainst"`
	Win             bool   `json:"win"`
	OpponentName    string `json:"opponentName"`
	OpponentLogoURL string `json:"opponentLogoUrl"`
	Date            string `json:"date"`
}

// Performance is the aggregated content of the match's performance tab.
type Performance struct {
	KillMatrix []KillMatrixEntry   `json:"killMatrix"`
	Players    []PlayerPerformance `json:"players"`
}

// KillMatrixEntry is one killer/victim cell of the kill matrix. IDs are
// resolved through the scoreboard rows; an unresolvable name yields 0.
type KillMatrixEntry struct {
	KillerID int `json:"killerId"`
	VictimID int `json:"victimId"`
	Kills    int `json:"kills"`
	Deaths   int `json:"deaths"`
}

// PlayerPerformance is one row of the advanced stats table on the
// performance tab.
type PlayerPerformance struct {
	PlayerID   int    `json:"playerId"`
	PlayerName string `json:"playerName"`
	Kills2K    int    `json:"kills2k"`
	Kills3K    int    `json:"kills3k"`
	Kills4K    int    `json:"kills4k"`
	Kills5K    int    `json:"kills5k"`
	Clutch1v1  int    `json:"clutch1v1"`
	Clutch1v2  int    `json:"clutch1v2"`
	Clutch1v3  int    `json:"clutch1v3"`
	Clutch1v4  int    `json:"clutch1v4"`
	Clutch1v5  int    `json:"clutch1v5"`
	EconRating int    `json:"econRating"`
	Plants     int    `json:"plants"`
	Defuses    int    `json:"defuses"`
}

// Economy is the aggregated content of the match's economy tab.
type Economy struct {
	Teams []TeamEconomy `json:"teams"`
}

// EconCount pairs rounds of one buy type with how many of them were won.
type EconCount struct {
	Rounds int `json:"rounds"`
	Won    int `json:"won"`
}

// TeamEconomy is one team's row of the economy table.
type TeamEconomy struct {
	TeamName   string    `json:"teamName"`
	PistolsWon int       `json:"pistolsWon"`
	Eco        EconCount `json:"eco"`
	SemiEco    EconCount `json:"semiEco"`
	SemiBuy    EconCount `json:"semiBuy"`
	FullBuy    EconCount `json:"fullBuy"`
}

// MatchService retrieves full match details.
type MatchService interface {
	// Match retrieves a match page with all of its games, rounds and
	// scoreboards. The performance and economy tabs are fetched
	// alongside the main page; a missing or unparsable tab leaves the
	// corresponding field nil rather than failing the whole match.
	Match(ctx context.Context, matchID int) (*Match, error)
}
