package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govlr/vlrgg"
	"github.com/govlr/vlrgg/mock"
	vlrslog "github.com/govlr/vlrgg/slog"
)

func TestClient_Events(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Client{
		EventsFn: func(ctx context.Context, typ vlrgg.EventType, region vlrgg.Region, page int) (vlrgg.Paginated[vlrgg.Event], error) {
			return vlrgg.Paginated[vlrgg.Event]{
				Items:      []vlrgg.Event{{ID: 2097, Title: "Valorant Champions 2024"}},
				Page:       page,
				TotalPages: 4,
			}, nil
		},
	}

	client := vlrslog.NewClient(inner, logger)

	res, err := client.Events(context.Background(), vlrgg.EventTypeUpcoming, vlrgg.RegionEurope, 1)
	require.NoError(t, err)

	// Results pass through unchanged.
	require.Len(t, res.Items, 1)
	assert.Equal(t, 2097, res.Items[0].ID)
	assert.Equal(t, 4, res.TotalPages)

	out := buf.String()
	assert.Contains(t, out, "events")
	assert.Contains(t, out, "region=europe")
	assert.Contains(t, out, "page=1")
	assert.Contains(t, out, "count=1")
	assert.Contains(t, out, "total_pages=4")
}

func TestClient_Match(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Client{
		MatchFn: func(ctx context.Context, matchID int) (*vlrgg.Match, error) {
			return nil, vlrgg.Errorf(vlrgg.ENOTFOUND, "element not found: match page column")
		},
	}

	client := vlrslog.NewClient(inner, logger)

	_, err := client.Match(context.Background(), 371266)
	require.Error(t, err)
	assert.Equal(t, vlrgg.ENOTFOUND, vlrgg.ErrorCode(err))

	out := buf.String()
	assert.Contains(t, out, "match_id=371266")
	assert.Contains(t, out, "element not found")
}

func TestClient_TeamTransactions(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Client{
		TeamTransactionsFn: func(ctx context.Context, teamID int) ([]vlrgg.TeamTransaction, error) {
			return []vlrgg.TeamTransaction{{Action: "join"}, {Action: "leave"}}, nil
		},
	}

	client := vlrslog.NewClient(inner, logger)

	txns, err := client.TeamTransactions(context.Background(), 6530)
	require.NoError(t, err)
	assert.Len(t, txns, 2)

	out := buf.String()
	assert.Contains(t, out, "team_id=6530")
	assert.Contains(t, out, "count=2")
}
