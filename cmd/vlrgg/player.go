package main

import (
	"fmt"

	"github.com/govlr/vlrgg"
)

// Run executes the player command.
func (c *PlayerCmd) Run(deps *Dependencies) error {
	res, err := deps.Client.Player(deps.Ctx, c.PlayerID, vlrgg.Timespan(c.Timespan))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vlrgg.ErrorMessage(err))
		return err
	}
	return printJSON(deps, res)
}

// Run executes the player-matches command.
func (c *PlayerMatchesCmd) Run(deps *Dependencies) error {
	res, err := deps.Client.PlayerMatches(deps.Ctx, c.PlayerID, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vlrgg.ErrorMessage(err))
		return err
	}
	return printJSON(deps, res)
}
