package vlrgg

import "time"

// MatchItem is the shared row shape of the player and team match history
// pages. The profiled side is always listed first.
type MatchItem struct {
	ID           int             `json:"id"`
	Slug         string          `json:"slug"`
	Href         string          `json:"href"`
	EventName    string          `json:"eventName"`
	EventSeries  string          `json:"eventSeries"`
	EventIconURL string          `json:"eventIconUrl"`
	Teams        []MatchItemTeam `json:"teams"` // exactly two
	VODs         []string        `json:"vods"`
	Time         *time.Time      `json:"time"`
}

// MatchItemTeam is one side of a match history row.
type MatchItemTeam struct {
	Name    string `json:"name"`
	Tag     string `json:"tag"`
	LogoURL string `json:"logoUrl"`
	Score   *int   `json:"score"`
}

// PlayerMatchItem is a match history row with the profiled player's
// team called out.
type PlayerMatchItem struct {
	MatchItem
	TeamName string `json:"teamName"`
}

// TeamMatchItem is a match history row with the opponent called out.
type TeamMatchItem struct {
	MatchItem
	Opponent string `json:"opponent"`
}
