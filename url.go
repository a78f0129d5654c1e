package vlrgg

import "fmt"

// BaseURL is the root of every fetched page.
const BaseURL = "https://www.vlr.gg"

// Tab names of the match detail page's extra data views.
const (
	MatchTabPerformance = "performance"
	MatchTabEconomy     = "economy"
)

// EventsURL returns the events listing URL for a region and page.
func EventsURL(region Region, page int) string {
	return fmt.Sprintf("%s/events/%s?page=%d", BaseURL, region, page)
}

// EventMatchesURL returns the match list URL for an event.
func EventMatchesURL(eventID int) string {
	return fmt.Sprintf("%s/event/matches/%d", BaseURL, eventID)
}

// MatchURL returns the detail URL for a match.
func MatchURL(matchID int) string {
	return fmt.Sprintf("%s/%d", BaseURL, matchID)
}

// MatchTabURL returns the URL of one of a match page's extra data tabs.
func MatchTabURL(matchID int, tab string) string {
	return fmt.Sprintf("%s/%d/?tab=%s", BaseURL, matchID, tab)
}

// PlayerURL returns the profile URL for a player. A zero timespan keeps
// the site's default statistics window.
func PlayerURL(playerID int, timespan Timespan) string {
	if timespan == "" {
		return fmt.Sprintf("%s/player/%d", BaseURL, playerID)
	}
	return fmt.Sprintf("%s/player/%d/?timespan=%s", BaseURL, playerID, timespan)
}

// PlayerMatchesURL returns one page of a player's match history.
func PlayerMatchesURL(playerID, page int) string {
	return fmt.Sprintf("%s/player/matches/%d/?page=%d", BaseURL, playerID, page)
}

// TeamURL returns the profile URL for a team.
func TeamURL(teamID int) string {
	return fmt.Sprintf("%s/team/%d", BaseURL, teamID)
}

// TeamMatchesURL returns one page of a team's match history.
func TeamMatchesURL(teamID, page int) string {
	return fmt.Sprintf("%s/team/matches/%d/?page=%d", BaseURL, teamID, page)
}

// TeamTransactionsURL returns a team's roster transaction log URL.
func TeamTransactionsURL(teamID int) string {
	return fmt.Sprintf("%s/team/transactions/%d/", BaseURL, teamID)
}
