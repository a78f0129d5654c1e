package vlrgg

// Client bundles every vlr.gg operation behind a single interface. The
// http package provides the fetching implementation; the slog package
// wraps any Client with logging.
type Client interface {
	EventService
	MatchService
	PlayerService
	TeamService
}
