package handhistory

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pokerengine/pkg/deck"
	"pokerengine/pkg/engine"
	"pokerengine/pkg/notation"
	"pokerengine/pkg/snapshot"
	"pokerengine/pkg/variant"
)

func newGame(t *testing.T, name string, stacks ...int) *engine.Game {
	t.Helper()

	def, err := variant.Get(name)
	require.NoError(t, err)

	opts, err := def.Options()
	require.NoError(t, err)

	opts.HandID = "hand-1"
	opts.Deck = deck.New()

	g, err := engine.NewGame(logrus.StandardLogger(), opts, stacks)
	require.NoError(t, err)
	return g
}

func replay(t *testing.T, g *engine.Game, script string) {
	t.Helper()

	instructions, err := notation.ParseAll(script)
	require.NoError(t, err)
	require.NoError(t, notation.Replay(g, instructions))
}

func TestFromGame(t *testing.T) {
	g := newGame(t, "no-limit-texas-holdem", 100, 100)
	replay(t, g, "dp 0 AsAh\ndp 1 KsKh\nbr 6\nbr 20\nf")

	h, err := FromGame("no-limit-texas-holdem", g)
	require.NoError(t, err)

	snapshot.ValidateSnapshot(t, h, 0)
	assert.Equal(t, "dp 0 AsAh\ndp 1 KsKh\nbr 6\nbr 20\nf", h.Script())
}

func TestFromGame_showdown(t *testing.T) {
	a := assert.New(t)

	g := newGame(t, "no-limit-texas-holdem", 100, 100)
	replay(t, g, `
dp 0 AsAh
dp 1 KsKh
cc
cc
db 2c7s9d
cc
cc
db Jc
cc
cc
db 4h
cc
cc
s
s
`)

	h, err := FromGame("no-limit-texas-holdem", g)
	require.NoError(t, err)

	a.Equal("2c7s9dJc4h", h.Board)
	a.Equal(engine.StatusShown, h.Seats[0].Status)
	a.Equal("AsAh", h.Seats[0].Cards)
	a.NotEmpty(h.Seats[0].Hand)
	a.Equal(engine.StatusMucked, h.Seats[1].Status)
	a.Empty(h.Seats[1].Cards)
	a.Equal(102, h.Seats[0].FinalStack)
	a.Equal(-2, h.Seats[1].Net)

	data, err := h.JSON()
	a.NoError(err)
	a.Contains(string(data), `"status": "mucked"`)
}

func TestFromGame_inProgress(t *testing.T) {
	g := newGame(t, "no-limit-texas-holdem", 100, 100)

	_, err := FromGame("no-limit-texas-holdem", g)
	assert.Equal(t, ErrHandInProgress, err)
}
