package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govlr/vlrgg"
	"github.com/govlr/vlrgg/goquery"
)

const playerPage = `<!DOCTYPE html>
<html>
<body>
<div id="wrapper">
	<div class="player-header">
		<div class="wf-avatar mod-player"><img src="//owcdn.net/img/mimi.png"></div>
		<h1 class="wf-title">mimi</h1>
		<h2 class="player-real-name">Michelle Falaise</h2>
		<a href="https://twitter.com/mimicheerz"><i class="fa fa-twitter"></i> @mimicheerz</a>
		<a href="https://www.twitch.tv/mimicheerz">twitch.tv/mimicheerz</a>
		<div class="ge-text-light"><i class="flag mod-fr"></i> France</div>
	</div>
	<table class="wf-table">
		<thead>
			<tr><th>Agent</th><th>Use</th><th>RND</th><th>Rating</th><th>ACS</th><th>K:D</th><th>KAST</th><th>ADR</th><th>KPR</th><th>APR</th><th>FKPR</th><th>FDPR</th><th>K</th><th>D</th><th>A</th><th>FK</th><th>FD</th></tr>
		</thead>
		<tbody>
			<tr>
				<td><img src="/img/vlr/game/agents/viper.png" title="viper" alt="viper"></td>
				<td>(42) 38%</td>
				<td>953</td>
				<td>1.04</td>
				<td>201.7</td>
				<td>1.01</td>
				<td>72%</td>
				<td>131.2</td>
				<td>0.67</td>
				<td>0.32</td>
				<td>0.09</td>
				<td>0.08</td>
				<td>641</td>
				<td>634</td>
				<td>303</td>
				<td>84</td>
				<td>75</td>
			</tr>
			<tr>
				<td><img src="/img/vlr/game/agents/astra.png" title="astra"></td>
				<td>(2) 2%</td>
				<td>–</td>
				<td>–</td>
				<td>–</td>
				<td>–</td>
				<td>–</td>
				<td>–</td>
				<td>–</td>
				<td>–</td>
				<td>–</td>
				<td>–</td>
				<td>–</td>
				<td>–</td>
				<td>–</td>
				<td>–</td>
				<td>–</td>
			</tr>
		</tbody>
	</table>
	<div class="wf-label mod-large">Current Teams</div>
	<div class="wf-card">
		<a href="/team/6530/g2-gozen" class="wf-module-item">
			<div class="wf-module-item-img"><img src="/img/base/ph/sil.png"></div>
			<div>G2 Gozen</div>
			<div class="ge-text-light">joined in March 2021</div>
		</a>
	</div>
	<div class="wf-label mod-large">Past Teams</div>
	<div class="wf-card">
		<a href="/team/2059/lowkey"  class="wf-module-item">
			<div>LowKey</div>
			<div class="ge-text-light">left in February 2021</div>
		</a>
	</div>
	<div class="wf-label mod-large">Recent News</div>
	<div class="wf-card">
		<a class="wf-module-item" href="/378940/g2-gozen-win-game-changers">
			<div>G2 Gozen win the Game Changers Championship</div>
			<div class="ge-text-light">Nov 24, 2024</div>
		</a>
	</div>
	<div class="wf-label mod-large">Event Placements</div>
	<div class="wf-card">
		<a class="team-event-item wf-module-item" href="/event/2283/game-changers-2024-championship">
			<div class="text-of">Game Changers 2024 Championship</div>
			<span class="team-event-item-series">Playoffs &ndash; 1st</span>
			<span style="font-weight: 700;">$100,000</span>
			<div class="player-event-item-team">G2 Gozen</div>
			<div class="team-event-item-year">2024</div>
		</a>
	</div>
</div>
</body>
</html>`

func TestParsePlayer(t *testing.T) {
	t.Parallel()

	player, err := goquery.ParsePlayer(playerPage, "https://www.vlr.gg/player/17323", 17323)
	require.NoError(t, err)

	info := player.Info
	assert.Equal(t, 17323, info.ID)
	assert.Equal(t, "mimi", info.Alias)
	assert.Equal(t, "Michelle Falaise", info.RealName)
	assert.Equal(t, "France", info.Country)
	assert.Equal(t, "fr", info.CountryCode)
	assert.Equal(t, "https://owcdn.net/img/mimi.png", info.AvatarURL)

	require.Len(t, info.Socials, 2)
	assert.Equal(t, "twitter", info.Socials[0].Platform)
	assert.Equal(t, "twitch", info.Socials[1].Platform)

	require.Len(t, player.CurrentTeams, 1)
	team := player.CurrentTeams[0]
	assert.Equal(t, 6530, team.ID)
	assert.Equal(t, "g2-gozen", team.Slug)
	assert.Equal(t, "https://www.vlr.gg/team/6530/g2-gozen", team.Href)
	assert.Equal(t, "G2 Gozen", team.Name)
	assert.Equal(t, "joined in March 2021", team.Note)

	require.Len(t, player.PastTeams, 1)
	assert.Equal(t, "LowKey", player.PastTeams[0].Name)

	require.Len(t, player.AgentStats, 2)
	viper := player.AgentStats[0]
	assert.Equal(t, "viper", viper.Agent)
	assert.Equal(t, "(42) 38%", viper.Usage)
	require.NotNil(t, viper.Rounds)
	assert.Equal(t, 953, *viper.Rounds)
	require.NotNil(t, viper.Rating)
	assert.InDelta(t, 1.04, *viper.Rating, 0.0001)
	require.NotNil(t, viper.ACS)
	assert.InDelta(t, 201.7, *viper.ACS, 0.0001)
	require.NotNil(t, viper.KAST)
	assert.InDelta(t, 0.72, *viper.KAST, 0.0001)
	require.NotNil(t, viper.Kills)
	assert.Equal(t, 641, *viper.Kills)

	// The agent was not played in the selected timespan, so every numeric
	// column renders as a dash.
	astra := player.AgentStats[1]
	assert.Equal(t, "astra", astra.Agent)
	assert.Nil(t, astra.Rounds)
	assert.Nil(t, astra.Rating)
	assert.Nil(t, astra.Kills)

	require.Len(t, player.News, 1)
	assert.Equal(t, "G2 Gozen win the Game Changers Championship", player.News[0].Title)
	assert.Equal(t, "https://www.vlr.gg/378940/g2-gozen-win-game-changers", player.News[0].Href)
	assert.Equal(t, "Nov 24, 2024", player.News[0].Date)

	require.Len(t, player.Placements, 1)
	placement := player.Placements[0]
	assert.Equal(t, 2283, placement.EventID)
	assert.Equal(t, "Game Changers 2024 Championship", placement.EventName)
	assert.Equal(t, "2024", placement.Year)
	require.Len(t, placement.Entries, 1)
	assert.Equal(t, "Playoffs", placement.Entries[0].Stage)
	assert.Equal(t, "1st", placement.Entries[0].Place)
	assert.Equal(t, "$100,000", placement.Entries[0].Prize)
	assert.Equal(t, "G2 Gozen", placement.Entries[0].TeamName)
}

func TestParsePlayer_MissingSections(t *testing.T) {
	t.Parallel()

	page := `<div id="wrapper">
		<div class="player-header">
			<h1 class="wf-title">aspas</h1>
		</div>
	</div>`

	player, err := goquery.ParsePlayer(page, "https://www.vlr.gg/player/9", 9)
	require.NoError(t, err)

	assert.Equal(t, "aspas", player.Info.Alias)
	assert.Empty(t, player.CurrentTeams)
	assert.Empty(t, player.PastTeams)
	assert.Empty(t, player.AgentStats)
	assert.Empty(t, player.News)
	assert.Empty(t, player.Placements)
}

func TestParsePlayer_MissingHeader(t *testing.T) {
	t.Parallel()

	url := "https://www.vlr.gg/player/404"
	_, err := goquery.ParsePlayer("<div id=\"wrapper\"></div>", url, 404)
	require.Error(t, err)
	assert.Equal(t, vlrgg.ENOTFOUND, vlrgg.ErrorCode(err))
	assert.Contains(t, err.Error(), "player header")
	assert.Equal(t, url, vlrgg.ErrorURL(err))
}
