package main

import (
	"fmt"

	"github.com/govlr/vlrgg"
)

// Run executes the team command.
func (c *TeamCmd) Run(deps *Dependencies) error {
	res, err := deps.Client.Team(deps.Ctx, c.TeamID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vlrgg.ErrorMessage(err))
		return err
	}
	return printJSON(deps, res)
}

// Run executes the team-matches command.
func (c *TeamMatchesCmd) Run(deps *Dependencies) error {
	res, err := deps.Client.TeamMatches(deps.Ctx, c.TeamID, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vlrgg.ErrorMessage(err))
		return err
	}
	return printJSON(deps, res)
}

// Run executes the team-transactions command.
func (c *TeamTransactionsCmd) Run(deps *Dependencies) error {
	res, err := deps.Client.TeamTransactions(deps.Ctx, c.TeamID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vlrgg.ErrorMessage(err))
		return err
	}
	return printJSON(deps, res)
}
