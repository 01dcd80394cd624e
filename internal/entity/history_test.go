package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeta_JSON(t *testing.T) {
	// Given: meta carrying the acting and winning players and a plain value
	x := NewPlayer(1, "X")
	meta := Meta{MetaPlayer: x, MetaWin: x, "note": "last"}

	// When: it is encoded and decoded
	data, err := json.Marshal(meta)
	require.NoError(t, err)

	var decoded Meta
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Then: the player keys come back as Player values
	player, ok := decoded.Player(MetaPlayer)
	require.True(t, ok)
	assert.Equal(t, x, player)

	winner, ok := decoded.Player(MetaWin)
	require.True(t, ok)
	assert.Equal(t, x, winner)

	assert.Equal(t, "last", decoded["note"])
}

func TestMeta_Player_Missing(t *testing.T) {
	// Given: empty meta
	meta := Meta{}

	// Then: no player is found
	_, ok := meta.Player(MetaWin)
	assert.False(t, ok)
}

func TestOutcome(t *testing.T) {
	x := NewPlayer(1, "X")

	assert.False(t, Continue().IsFinished())

	won := Won(x)
	assert.True(t, won.IsFinished())
	assert.True(t, won.IsWon())
	assert.Equal(t, x, won.Winner)

	tied := Tied()
	assert.True(t, tied.IsFinished())
	assert.True(t, tied.IsTied())
	assert.True(t, tied.Winner.IsNone())
}

func TestPlayer_IsNone(t *testing.T) {
	assert.True(t, NoPlayer.IsNone())
	assert.False(t, NewPlayer(1, "X").IsNone())
}
