package main

import (
	"fmt"

	"github.com/govlr/vlrgg"
)

// Run executes the events command.
func (c *EventsCmd) Run(deps *Dependencies) error {
	res, err := deps.Client.Events(deps.Ctx, vlrgg.EventType(c.Type), vlrgg.Region(c.Region), c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vlrgg.ErrorMessage(err))
		return err
	}
	return printJSON(deps, res)
}

// Run executes the event-matches command.
func (c *EventMatchesCmd) Run(deps *Dependencies) error {
	res, err := deps.Client.EventMatches(deps.Ctx, c.EventID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vlrgg.ErrorMessage(err))
		return err
	}
	return printJSON(deps, res)
}
