package vlrgg

import "context"

// Timespan restricts the statistics window of a player profile. The
// zero value keeps the site's default window.
type Timespan string

// Timespan values.
const (
	Timespan30Days Timespan = "30d"
	Timespan60Days Timespan = "60d"
	Timespan90Days Timespan = "90d"
	TimespanAll    Timespan = "all"
)

// Player is a full player profile page. Sections absent from the page
// yield empty slices, never errors.
type Player struct {
	Info         PlayerInfo       `json:"info"`
	CurrentTeams []PlayerTeam     `json:"currentTeams"` // empty for free agents
	PastTeams    []PlayerTeam     `json:"pastTeams"`
	AgentStats   []AgentStats     `json:"agentStats"`
	News         []NewsItem       `json:"news"`
	Placements   []EventPlacement `json:"placements"`
}

// PlayerInfo is the header block of a player profile.
type PlayerInfo struct {
	ID          int      `json:"id"`
	Alias       string   `json:"alias"`
	RealName    string   `json:"realName"`
	Country     string   `json:"country"`
	CountryCode string   `json:"countryCode"`
	AvatarURL   string   `json:"avatarUrl"`
	Socials     []Social `json:"socials"`
}

// PlayerTeam is a team affiliation listed on a player profile. Note
// carries the secondary line shown under the team name, e.g. a stint
// or an inactive marker.
type PlayerTeam struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
	Href string `json:"href"`
	Name string `json:"name"`
	Note string `json:"note"`
}

// AgentStats is one row of the profile's per-agent statistics table.
// Nil fields were shown as a dash on the page. KAST is a fraction in
// [0, 1].
type AgentStats struct {
	Agent       string   `json:"agent"`
	Usage       string   `json:"usage"`
	Rounds      *int     `json:"rounds"`
	Rating      *float64 `json:"rating"`
	ACS         *float64 `json:"acs"`
	KD          *float64 `json:"kd"`
	ADR         *float64 `json:"adr"`
	KAST        *float64 `json:"kast"`
	KPR         *float64 `json:"kpr"`
	APR         *float64 `json:"apr"`
	FKPR        *float64 `json:"fkpr"`
	FDPR        *float64 `json:"fdpr"`
	Kills       *int     `json:"kills"`
	Deaths      *int     `json:"deaths"`
	Assists     *int     `json:"assists"`
	FirstKills  *int     `json:"firstKills"`
	FirstDeaths *int     `json:"firstDeaths"`
}

// NewsItem is one entry of the profile's recent news list.
type NewsItem struct {
	Title string `json:"title"`
	Href  string `json:"href"`
	Date  string `json:"date"`
}

// PlayerService retrieves player profiles and match histories.
type PlayerService interface {
	// Player retrieves a player profile. The timespan narrows the agent
	// statistics table; the zero value keeps the site default.
	Player(ctx context.Context, playerID int, timespan Timespan) (*Player, error)

	// PlayerMatches retrieves one page of a player's match history.
	// Returns EINVALID if page < 1. Requesting a page past the last
	// yields an empty result, not an error.
	PlayerMatches(ctx context.Context, playerID, page int) (Paginated[PlayerMatchItem], error)
}
