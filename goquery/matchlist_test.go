package goquery_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govlr/vlrgg"
	"github.com/govlr/vlrgg/goquery"
)

const eventMatchesPage = `<!DOCTYPE html>
<html>
<body>
<div id="wrapper">
	<div class="wf-label mod-large">Sat, August 31, 2024</div>
	<div class="wf-card">
		<a class="wf-module-item match-item" href="/595657/edward-gaming-vs-team-heretics">
			<div class="match-item-time">1:00 PM</div>
			<div class="match-item-vs">
				<div class="match-item-vs-team mod-winner">
					<div class="match-item-vs-team-name"><div class="text-of">EDward Gaming</div></div>
					<div class="match-item-vs-team-score">3</div>
				</div>
				<div class="match-item-vs-team">
					<div class="match-item-vs-team-name"><div class="text-of">Team Heretics</div></div>
					<div class="match-item-vs-team-score">2</div>
				</div>
			</div>
			<div class="match-item-event text-of">
				<div class="match-item-event-series text-of">Playoffs: Grand Final</div>
				Valorant Champions 2024
			</div>
			<div class="match-item-vod">
				<div class="wf-tag mod-yt"><span>vod</span></div>
			</div>
		</a>
		<a class="wf-module-item match-item" href="/595657/edward-gaming-vs-team-heretics">
			<div class="match-item-time">1:00 PM</div>
		</a>
		<a class="wf-module-item match-item" href="/vlr/123/not-a-match"></a>
	</div>
	<div class="wf-label mod-large">Sun, Sep 1, 2024</div>
	<div class="wf-card">
		<a class="wf-module-item match-item" href="/595658/showmatch">
			<div class="match-item-time">TBD</div>
			<div class="match-item-vs">
				<div class="match-item-vs-team">
					<div class="match-item-vs-team-name"><div class="text-of">Team Alpha</div></div>
					<div class="match-item-vs-team-score">–</div>
				</div>
				<div class="match-item-vs-team">
					<div class="match-item-vs-team-name"><div class="text-of">Team Bravo</div></div>
					<div class="match-item-vs-team-score">–</div>
				</div>
			</div>
			<div class="match-item-event text-of">
				<div class="match-item-event-series text-of">Showmatch</div>
				Valorant Champions 2024
			</div>
		</a>
	</div>
</div>
</body>
</html>`

func TestParseEventMatches(t *testing.T) {
	t.Parallel()

	got, err := goquery.ParseEventMatches(eventMatchesPage, "https://www.vlr.gg/event/matches/2097")
	require.NoError(t, err)

	// The duplicate row and the row with a non-match href are dropped.
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, 595657, first.ID)
	assert.Equal(t, "edward-gaming-vs-team-heretics", first.Slug)
	assert.Equal(t, "https://www.vlr.gg/595657/edward-gaming-vs-team-heretics", first.Href)
	require.NotNil(t, first.Time)
	assert.Equal(t, time.Date(2024, time.August, 31, 13, 0, 0, 0, time.UTC), *first.Time)

	require.Len(t, first.Teams, 2)
	assert.Equal(t, "EDward Gaming", first.Teams[0].Name)
	require.NotNil(t, first.Teams[0].Score)
	assert.Equal(t, 3, *first.Teams[0].Score)
	assert.True(t, first.Teams[0].Winner)
	assert.Equal(t, "Team Heretics", first.Teams[1].Name)
	require.NotNil(t, first.Teams[1].Score)
	assert.Equal(t, 2, *first.Teams[1].Score)
	assert.False(t, first.Teams[1].Winner)

	assert.Equal(t, []string{"vod"}, first.Tags)
	assert.Equal(t, "Valorant Champions 2024", first.Event)
	assert.Equal(t, "Playoffs: Grand Final", first.Series)

	// The second day label moves the running date; the unscheduled clock
	// leaves the timestamp unset.
	second := got[1]
	assert.Equal(t, 595658, second.ID)
	assert.Nil(t, second.Time)
	require.Len(t, second.Teams, 2)
	assert.Nil(t, second.Teams[0].Score)
	assert.Nil(t, second.Teams[1].Score)
}

func TestParseEventMatches_BadDayLabel(t *testing.T) {
	t.Parallel()

	page := `<div id="wrapper">
		<div class="wf-label mod-large">Yesterday</div>
		<div class="wf-card">
			<a class="match-item" href="/1/x-vs-y"></a>
		</div>
	</div>`

	url := "https://www.vlr.gg/event/matches/2097"
	_, err := goquery.ParseEventMatches(page, url)
	require.Error(t, err)
	assert.Equal(t, vlrgg.EDATEPARSE, vlrgg.ErrorCode(err))
	assert.Equal(t, "match list day label", vlrgg.ErrorField(err))
	assert.Equal(t, url, vlrgg.ErrorURL(err))
}
