package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/govlr/vlrgg"
)

// Dependencies holds the client and streams commands run against.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Client vlrgg.Client
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Events           EventsCmd           `cmd:"" help:"List events, optionally filtered by region"`
	EventMatches     EventMatchesCmd     `cmd:"" name:"event-matches" help:"List the matches of an event"`
	Match            MatchCmd            `cmd:"" help:"Show full match details"`
	Player           PlayerCmd           `cmd:"" help:"Show a player profile"`
	PlayerMatches    PlayerMatchesCmd    `cmd:"" name:"player-matches" help:"List a player's match history"`
	Team             TeamCmd             `cmd:"" help:"Show a team profile"`
	TeamMatches      TeamMatchesCmd      `cmd:"" name:"team-matches" help:"List a team's match history"`
	TeamTransactions TeamTransactionsCmd `cmd:"" name:"team-transactions" help:"List a team's roster transactions"`

	Timeout time.Duration `help:"HTTP request timeout" default:"10s"`
	Rate    float64       `help:"Max requests per second (0 disables limiting)" default:"2"`
	Verbose bool          `short:"v" help:"Log operations to stderr"`
}

// EventsCmd is the "events" subcommand.
type EventsCmd struct {
	Type   string `arg:"" enum:"upcoming,completed" default:"upcoming" optional:"" help:"Listing column: upcoming or completed"`
	Region string `short:"r" default:"all" help:"Region tab, e.g. europe or north-america"`
	Page   int    `short:"p" default:"1" help:"Page number (1-based)"`
}

// EventMatchesCmd is the "event-matches" subcommand.
type EventMatchesCmd struct {
	EventID int `arg:"" help:"Event ID"`
}

// MatchCmd is the "match" subcommand.
type MatchCmd struct {
	MatchID int `arg:"" help:"Match ID"`
}

// PlayerCmd is the "player" subcommand.
type PlayerCmd struct {
	PlayerID int    `arg:"" help:"Player ID"`
	Timespan string `short:"t" default:"" help:"Agent stats window: 30d, 60d, 90d or all"`
}

// PlayerMatchesCmd is the "player-matches" subcommand.
type PlayerMatchesCmd struct {
	PlayerID int `arg:"" help:"Player ID"`
	Page     int `short:"p" default:"1" help:"Page number (1-based)"`
}

// TeamCmd is the "team" subcommand.
type TeamCmd struct {
	TeamID int `arg:"" help:"Team ID"`
}

// TeamMatchesCmd is the "team-matches" subcommand.
type TeamMatchesCmd struct {
	TeamID int `arg:"" help:"Team ID"`
	Page   int `short:"p" default:"1" help:"Page number (1-based)"`
}

// TeamTransactionsCmd is the "team-transactions" subcommand.
type TeamTransactionsCmd struct {
	TeamID int `arg:"" help:"Team ID"`
}

// printJSON writes v to the command's stdout as indented JSON.
func printJSON(deps *Dependencies, v any) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
