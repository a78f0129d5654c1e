package goquery_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govlr/vlrgg"
	"github.com/govlr/vlrgg/goquery"
)

const matchHistoryPage = `<!DOCTYPE html>
<html>
<body>
<div id="wrapper">
	<div class="col mod-1">
		<a href="/458263/g2-gozen-vs-fnatic" class="wf-module-item m-item">
			<div class="m-item-thumb"><img src="//owcdn.net/img/event.png"></div>
			<div class="m-item-event text-of">
				<div>Game Changers 2024 EMEA</div>
				Group A
			</div>
			<div class="m-item-team text-of">
				<span class="m-item-team-name">G2 Gozen</span>
				<span class="m-item-team-tag">G2G</span>
			</div>
			<div class="m-item-logo"><img src="/img/base/ph/sil.png"></div>
			<div class="m-item-team text-of mod-right">
				<span class="m-item-team-name">FNATIC</span>
				<span class="m-item-team-tag">FNC</span>
			</div>
			<div class="m-item-logo mod-right"><img src="//owcdn.net/img/fnatic.png"></div>
			<div class="m-item-result mod-win"><span>2</span>:<span>0</span></div>
			<div class="m-item-vods">
				<div class="wf-tag mod-yt"><span class="full">Map 1</span><span class="short">1</span></div>
				<div class="wf-tag mod-yt"><span class="full">Map 2</span><span class="short">2</span></div>
			</div>
			<div class="m-item-date">
				<div>2024/08/31</div>
				1:00 PM
			</div>
		</a>
		<a href="/460001/g2-gozen-vs-team-liquid" class="wf-module-item m-item">
			<div class="m-item-thumb"><img src="//owcdn.net/img/event.png"></div>
			<div class="m-item-event text-of">
				<div>Game Changers 2024 EMEA</div>
				Group A
			</div>
			<div class="m-item-team text-of">
				<span class="m-item-team-name">G2 Gozen</span>
				<span class="m-item-team-tag">G2G</span>
			</div>
			<div class="m-item-logo"><img src="/img/base/ph/sil.png"></div>
			<div class="m-item-team text-of mod-right">
				<span class="m-item-team-name">Team Liquid</span>
				<span class="m-item-team-tag">TL</span>
			</div>
			<div class="m-item-logo mod-right"><img src="//owcdn.net/img/liquid.png"></div>
			<div class="m-item-result"><span>–</span>:<span>–</span></div>
			<div class="m-item-date">
				<div>2024/09/02</div>
				TBD
			</div>
		</a>
	</div>
	<div class="action-container-pages">
		<span class="btn mod-page mod-active">1</span>
		<a class="btn mod-page" href="?page=2">2</a>
		<a class="btn mod-page" href="?page=8">8</a>
	</div>
</div>
</body>
</html>`

func TestParsePlayerMatches(t *testing.T) {
	t.Parallel()

	got, err := goquery.ParsePlayerMatches(matchHistoryPage, "https://www.vlr.gg/player/matches/17323/?page=1", 1)
	require.NoError(t, err)

	require.Len(t, got.Items, 2)
	first := got.Items[0]
	assert.Equal(t, 458263, first.ID)
	assert.Equal(t, "g2-gozen-vs-fnatic", first.Slug)
	assert.Equal(t, "https://www.vlr.gg/458263/g2-gozen-vs-fnatic", first.Href)
	assert.Equal(t, "Game Changers 2024 EMEA", first.EventName)
	assert.Equal(t, "Group A", first.EventSeries)
	assert.Equal(t, "https://owcdn.net/img/event.png", first.EventIconURL)
	assert.Equal(t, "G2 Gozen", first.TeamName)

	require.Len(t, first.Teams, 2)
	assert.Equal(t, "G2 Gozen", first.Teams[0].Name)
	assert.Equal(t, "G2G", first.Teams[0].Tag)
	assert.Equal(t, "https://www.vlr.gg/img/base/ph/sil.png", first.Teams[0].LogoURL)
	require.NotNil(t, first.Teams[0].Score)
	assert.Equal(t, 2, *first.Teams[0].Score)
	assert.Equal(t, "FNATIC", first.Teams[1].Name)
	require.NotNil(t, first.Teams[1].Score)
	assert.Equal(t, 0, *first.Teams[1].Score)

	assert.Equal(t, []string{"Map 1", "Map 2"}, first.VODs)
	require.NotNil(t, first.Time)
	assert.Equal(t, time.Date(2024, time.August, 31, 13, 0, 0, 0, time.UTC), *first.Time)

	// Unplayed match: dash scores and a placeholder clock.
	second := got.Items[1]
	assert.Nil(t, second.Teams[0].Score)
	assert.Nil(t, second.Teams[1].Score)
	assert.Nil(t, second.Time)

	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 8, got.TotalPages)
	assert.True(t, got.HasMore())
}

func TestParseTeamMatches(t *testing.T) {
	t.Parallel()

	got, err := goquery.ParseTeamMatches(matchHistoryPage, "https://www.vlr.gg/team/matches/6530/?page=1", 1)
	require.NoError(t, err)

	require.Len(t, got.Items, 2)
	assert.Equal(t, "FNATIC", got.Items[0].Opponent)
	assert.Equal(t, "Team Liquid", got.Items[1].Opponent)
}

func TestParsePlayerMatches_BadRowHref(t *testing.T) {
	t.Parallel()

	page := `<div id="wrapper">
		<div class="col mod-1">
			<a href="#" class="m-item"></a>
		</div>
	</div>`

	url := "https://www.vlr.gg/player/matches/17323/?page=1"
	_, err := goquery.ParsePlayerMatches(page, url, 1)
	require.Error(t, err)
	assert.Equal(t, vlrgg.ENOTFOUND, vlrgg.ErrorCode(err))
	assert.Equal(t, "match item href", vlrgg.ErrorField(err))
	assert.Equal(t, url, vlrgg.ErrorURL(err))
}
