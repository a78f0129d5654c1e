package main

import (
	"fmt"

	"github.com/govlr/vlrgg"
)

// Run executes the match command.
func (c *MatchCmd) Run(deps *Dependencies) error {
	res, err := deps.Client.Match(deps.Ctx, c.MatchID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vlrgg.ErrorMessage(err))
		return err
	}
	return printJSON(deps, res)
}
