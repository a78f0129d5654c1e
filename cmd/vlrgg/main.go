package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/govlr/vlrgg"
	vlrhttp "github.com/govlr/vlrgg/http"
	vlrslog "github.com/govlr/vlrgg/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Client used by commands. Replaceable for end-to-end testing;
	// built from the CLI flags when nil.
	Client vlrgg.Client
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("vlrgg"),
		kong.Description("Query vlr.gg events, matches, players and teams."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'vlrgg --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Client = m.Client
	if deps.Client == nil {
		fetcher := vlrhttp.NewFetcher(
			vlrhttp.WithTimeout(cli.Timeout),
			vlrhttp.WithRateLimit(cli.Rate),
		)
		defer fetcher.Close()

		var client vlrgg.Client = vlrhttp.NewClient(fetcher)
		if cli.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			client = vlrslog.NewClient(client, logger)
		}
		deps.Client = client
	}

	return kongCtx.Run(deps)
}
