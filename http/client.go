package http

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/govlr/vlrgg"
	"github.com/govlr/vlrgg/goquery"
)

// Ensure Client implements vlrgg.Client at compile time.
var _ vlrgg.Client = (*Client)(nil)

// Client implements every vlrgg service by building the page URL,
// fetching it and delegating to the goquery parsers. It holds no state
// beyond the fetcher and is safe for concurrent use.
type Client struct {
	fetcher vlrgg.Fetcher
}

// NewClient creates a Client on top of the given fetcher.
func NewClient(fetcher vlrgg.Fetcher) *Client {
	return &Client{fetcher: fetcher}
}

// Close closes the underlying fetcher.
func (c *Client) Close() error {
	return c.fetcher.Close()
}

// Events retrieves one page of the events listing.
func (c *Client) Events(ctx context.Context, typ vlrgg.EventType, region vlrgg.Region, page int) (vlrgg.Paginated[vlrgg.Event], error) {
	var zero vlrgg.Paginated[vlrgg.Event]
	if err := validPage(page); err != nil {
		return zero, err
	}
	url := vlrgg.EventsURL(region, page)
	html, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return zero, err
	}
	return goquery.ParseEvents(html, url, typ, page)
}

// EventMatches retrieves every match listed for an event.
func (c *Client) EventMatches(ctx context.Context, eventID int) ([]vlrgg.EventMatchItem, error) {
	if err := validID(eventID, "event id"); err != nil {
		return nil, err
	}
	url := vlrgg.EventMatchesURL(eventID)
	html, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return goquery.ParseEventMatches(html, url)
}

// Match retrieves a match with its games, rounds and scoreboards. The
// performance and economy tab pages are fetched concurrently with the
// main page; a tab that fails to fetch or parse leaves the
// corresponding field nil.
func (c *Client) Match(ctx context.Context, matchID int) (*vlrgg.Match, error) {
	if err := validID(matchID, "match id"); err != nil {
		return nil, err
	}

	matchURL := vlrgg.MatchURL(matchID)
	perfURL := vlrgg.MatchTabURL(matchID, vlrgg.MatchTabPerformance)
	econURL := vlrgg.MatchTabURL(matchID, vlrgg.MatchTabEconomy)

	var matchHTML, perfHTML, econHTML string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		matchHTML, err = c.fetcher.Fetch(gctx, matchURL)
		return err
	})
	g.Go(func() error {
		// Tab pages are best effort.
		if html, err := c.fetcher.Fetch(gctx, perfURL); err == nil {
			perfHTML = html
		}
		return nil
	})
	g.Go(func() error {
		if html, err := c.fetcher.Fetch(gctx, econURL); err == nil {
			econHTML = html
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m, err := goquery.ParseMatch(matchHTML, matchURL, matchID)
	if err != nil {
		return nil, err
	}
	if perfHTML != "" {
		if p, err := goquery.ParsePerformance(perfHTML, perfURL, m); err == nil {
			m.Performance = p
		}
	}
	if econHTML != "" {
		if e, err := goquery.ParseEconomy(econHTML, econURL); err == nil {
			m.Economy = e
		}
	}
	return m, nil
}

// Player retrieves a player profile.
func (c *Client) Player(ctx context.Context, playerID int, timespan vlrgg.Timespan) (*vlrgg.Player, error) {
	if err := validID(playerID, "player id"); err != nil {
		return nil, err
	}
	url := vlrgg.PlayerURL(playerID, timespan)
	html, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return goquery.ParsePlayer(html, url, playerID)
}

// PlayerMatches retrieves one page of a player's match history.
func (c *Client) PlayerMatches(ctx context.Context, playerID, page int) (vlrgg.Paginated[vlrgg.PlayerMatchItem], error) {
	var zero vlrgg.Paginated[vlrgg.PlayerMatchItem]
	if err := validID(playerID, "player id"); err != nil {
		return zero, err
	}
	if err := validPage(page); err != nil {
		return zero, err
	}
	url := vlrgg.PlayerMatchesURL(playerID, page)
	html, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return zero, err
	}
	return goquery.ParsePlayerMatches(html, url, page)
}

// Team retrieves a team profile.
func (c *Client) Team(ctx context.Context, teamID int) (*vlrgg.Team, error) {
	if err := validID(teamID, "team id"); err != nil {
		return nil, err
	}
	url := vlrgg.TeamURL(teamID)
	html, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return goquery.ParseTeam(html, url, teamID)
}

// TeamMatches retrieves one page of a team's match history.
func (c *Client) TeamMatches(ctx context.Context, teamID, page int) (vlrgg.Paginated[vlrgg.TeamMatchItem], error) {
	var zero vlrgg.Paginated[vlrgg.TeamMatchItem]
	if err := validID(teamID, "team id"); err != nil {
		return zero, err
	}
	if err := validPage(page); err != nil {
		return zero, err
	}
	url := vlrgg.TeamMatchesURL(teamID, page)
	html, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return zero, err
	}
	return goquery.ParseTeamMatches(html, url, page)
}

// TeamTransactions retrieves a team's roster transaction log.
func (c *Client) TeamTransactions(ctx context.Context, teamID int) ([]vlrgg.TeamTransaction, error) {
	if err := validID(teamID, "team id"); err != nil {
		return nil, err
	}
	url := vlrgg.TeamTransactionsURL(teamID)
	html, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return goquery.ParseTeamTransactions(html, url)
}

// validPage rejects page numbers below one before any fetch happens.
func validPage(page int) error {
	if page < 1 {
		return vlrgg.Errorf(vlrgg.EINVALID, "page must be 1 or greater, got %d", page)
	}
	return nil
}

// validID rejects non-positive entity ids before any fetch happens.
func validID(id int, what string) error {
	if id < 1 {
		return vlrgg.Errorf(vlrgg.EINVALID, "%s must be positive, got %d", what, id)
	}
	return nil
}
