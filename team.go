package vlrgg

import (
	"context"
	"time"
)

// Team is a full team profile page.
type Team struct {
	Info       TeamInfo         `json:"info"`
	Roster     []RosterMember   `json:"roster"`
	Placements []EventPlacement `json:"placements"`

	// TotalWinnings is the raw prize figure as displayed, e.g.
	// "$1,041,563". TotalWinningsUSD is its parsed value, 0 when the
	// section is absent.
	TotalWinnings    string `json:"totalWinnings"`
	TotalWinningsUSD int    `json:"totalWinningsUsd"`
}

// TeamInfo is the header block of a team profile.
type TeamInfo struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Tag         string   `json:"tag"`
	LogoURL     string   `json:"logoUrl"`
	Country     string   `json:"country"`
	CountryCode string   `json:"countryCode"`
	Socials     []Social `json:"socials"`
}

// RosterMember is a player or staff entry on a team page.
type RosterMember struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Href        string `json:"href"`
	Alias       string `json:"alias"`
	RealName    string `json:"realName"`
	CountryCode string `json:"countryCode"`
	AvatarURL   string `json:"avatarUrl"`
	Role        string `json:"role"` // "player" unless the page shows a staff role
	Captain     bool   `json:"captain"`
}

// TeamTransaction is one row of a team's roster transaction log.
// Action is "join", "leave" or "inactive" as displayed.
type TeamTransaction struct {
	Date           *time.Time `json:"date"` // nil when the site shows "Unknown"
	Action         string     `json:"action"`
	PlayerID       int        `json:"playerId"`
	PlayerSlug     string     `json:"playerSlug"`
	PlayerAlias    string     `json:"playerAlias"`
	PlayerRealName string     `json:"playerRealName"`
	CountryCode    string     `json:"countryCode"`
	Position       string     `json:"position"`
	ReferenceURL   string     `json:"referenceUrl"`
}

// TeamService retrieves team profiles, histories and transactions.
type TeamService interface {
	// Team retrieves a team profile with roster, placements and
	// winnings.
	Team(ctx context.Context, teamID int) (*Team, error)

	// TeamMatches retrieves one page of a team's match history.
	// Returns EINVALID if page < 1. Requesting a page past the last
	// yields an empty result, not an error.
	TeamMatches(ctx context.Context, teamID, page int) (Paginated[TeamMatchItem], error)

	// TeamTransactions retrieves a team's roster transaction log, most
	// recent first as listed on the page.
	TeamTransactions(ctx context.Context, teamID int) ([]TeamTransaction, error)
}
