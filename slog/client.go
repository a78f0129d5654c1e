// Package slog provides log/slog decorators for the vlrgg interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/govlr/vlrgg"
)

// Ensure Client implements vlrgg.Client.
var _ vlrgg.Client = (*Client)(nil)

// Client wraps a vlrgg.Client, logging each operation with its
// parameters, result size, duration and error.
type Client struct {
	next   vlrgg.Client
	logger *slog.Logger
}

// NewClient creates a logging Client decorator.
func NewClient(next vlrgg.Client, logger *slog.Logger) *Client {
	return &Client{next: next, logger: logger}
}

// Events delegates to the wrapped client and logs the operation.
func (c *Client) Events(ctx context.Context, typ vlrgg.EventType, region vlrgg.Region, page int) (res vlrgg.Paginated[vlrgg.Event], err error) {
	defer func(begin time.Time) {
		c.logger.Info("events",
			"type", string(typ),
			"region", string(region),
			"page", page,
			"count", len(res.Items),
			"total_pages", res.TotalPages,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Events(ctx, typ, region, page)
}

// EventMatches delegates to the wrapped client and logs the operation.
func (c *Client) EventMatches(ctx context.Context, eventID int) (res []vlrgg.EventMatchItem, err error) {
	defer func(begin time.Time) {
		c.logger.Info("event matches",
			"event_id", eventID,
			"count", len(res),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.EventMatches(ctx, eventID)
}

// Match delegates to the wrapped client and logs the operation.
func (c *Client) Match(ctx context.Context, matchID int) (res *vlrgg.Match, err error) {
	defer func(begin time.Time) {
		games := 0
		if res != nil {
			games = len(res.Games)
		}
		c.logger.Info("match",
			"match_id", matchID,
			"games", games,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Match(ctx, matchID)
}

// Player delegates to the wrapped client and logs the operation.
func (c *Client) Player(ctx context.Context, playerID int, timespan vlrgg.Timespan) (res *vlrgg.Player, err error) {
	defer func(begin time.Time) {
		c.logger.Info("player",
			"player_id", playerID,
			"timespan", string(timespan),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Player(ctx, playerID, timespan)
}

// PlayerMatches delegates to the wrapped client and logs the operation.
func (c *Client) PlayerMatches(ctx context.Context, playerID, page int) (res vlrgg.Paginated[vlrgg.PlayerMatchItem], err error) {
	defer func(begin time.Time) {
		c.logger.Info("player matches",
			"player_id", playerID,
			"page", page,
			"count", len(res.Items),
			"total_pages", res.TotalPages,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.PlayerMatches(ctx, playerID, page)
}

// Team delegates to the wrapped client and logs the operation.
func (c *Client) Team(ctx context.Context, teamID int) (res *vlrgg.Team, err error) {
	defer func(begin time.Time) {
		roster := 0
		if res != nil {
			roster = len(res.Roster)
		}
		c.logger.Info("team",
			"team_id", teamID,
			"roster", roster,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Team(ctx, teamID)
}

// TeamMatches delegates to the wrapped client and logs the operation.
func (c *Client) TeamMatches(ctx context.Context, teamID, page int) (res vlrgg.Paginated[vlrgg.TeamMatchItem], err error) {
	defer func(begin time.Time) {
		c.logger.Info("team matches",
			"team_id", teamID,
			"page", page,
			"count", len(res.Items),
			"total_pages", res.TotalPages,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.TeamMatches(ctx, teamID, page)
}

// TeamTransactions delegates to the wrapped client and logs the operation.
func (c *Client) TeamTransactions(ctx context.Context, teamID int) (res []vlrgg.TeamTransaction, err error) {
	defer func(begin time.Time) {
		c.logger.Info("team transactions",
			"team_id", teamID,
			"count", len(res),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.TeamTransactions(ctx, teamID)
}
