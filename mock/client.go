package mock

import (
	"context"

	"github.com/govlr/vlrgg"
)

var _ vlrgg.Client = (*Client)(nil)

// Client is a mock implementation of vlrgg.Client.
type Client struct {
	EventsFn           func(ctx context.Context, typ vlrgg.EventType, region vlrgg.Region, page int) (vlrgg.Paginated[vlrgg.Event], error)
	EventMatchesFn     func(ctx context.Context, eventID int) ([]vlrgg.EventMatchItem, error)
	MatchFn            func(ctx context.Context, matchID int) (*vlrgg.Match, error)
	PlayerFn           func(ctx context.Context, playerID int, timespan vlrgg.Timespan) (*vlrgg.Player, error)
	PlayerMatchesFn    func(ctx context.Context, playerID, page int) (vlrgg.Paginated[vlrgg.PlayerMatchItem], error)
	TeamFn             func(ctx context.Context, teamID int) (*vlrgg.Team, error)
	TeamMatchesFn      func(ctx context.Context, teamID, page int) (vlrgg.Paginated[vlrgg.TeamMatchItem], error)
	TeamTransactionsFn func(ctx context.Context, teamID int) ([]vlrgg.TeamTransaction, error)
}

func (c *Client) Events(ctx context.Context, typ vlrgg.EventType, region vlrgg.Region, page int) (vlrgg.Paginated[vlrgg.Event], error) {
	return c.EventsFn(ctx, typ, region, page)
}

func (c *Client) EventMatches(ctx context.Context, eventID int) ([]vlrgg.EventMatchItem, error) {
	return c.EventMatchesFn(ctx, eventID)
}

func (c *Client) Match(ctx context.Context, matchID int) (*vlrgg.Match, error) {
	return c.MatchFn(ctx, matchID)
}

func (c *Client) Player(ctx context.Context, playerID int, timespan vlrgg.Timespan) (*vlrgg.Player, error) {
	return c.PlayerFn(ctx, playerID, timespan)
}

func (c *Client) PlayerMatches(ctx context.Context, playerID, page int) (vlrgg.Paginated[vlrgg.PlayerMatchItem], error) {
	return c.PlayerMatchesFn(ctx, playerID, page)
}

func (c *Client) Team(ctx context.Context, teamID int) (*vlrgg.Team, error) {
	return c.TeamFn(ctx, teamID)
}

func (c *Client) TeamMatches(ctx context.Context, teamID, page int) (vlrgg.Paginated[vlrgg.TeamMatchItem], error) {
	return c.TeamMatchesFn(ctx, teamID, page)
}

func (c *Client) TeamTransactions(ctx context.Context, teamID int) ([]vlrgg.TeamTransaction, error) {
	return c.TeamTransactionsFn(ctx, teamID)
}
