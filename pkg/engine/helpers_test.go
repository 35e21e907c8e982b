package engine

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pokerengine/pkg/deck"
	"pokerengine/pkg/evaluator"
)

func holdemStages(limit Limit, minBet int) []Stage {
	return []Stage{
		HoleCardDealing(2, false),
		Betting(limit, minBet),
		BoardCardDealing(3),
		Betting(limit, minBet),
		BoardCardDealing(1),
		Betting(limit, minBet),
		BoardCardDealing(1),
		Betting(limit, minBet),
		Showdown(),
	}
}

// newTestGame uses an unshuffled deck and the standard evaluator unless opts say otherwise
func newTestGame(t *testing.T, opts Options, stacks ...int) *Game {
	t.Helper()

	if opts.Evaluator == nil {
		opts.Evaluator = evaluator.StandardHigh{}
	}

	if opts.Deck == nil {
		opts.Deck = deck.New()
	}

	g, err := NewGame(logrus.StandardLogger(), opts, stacks)
	require.NoError(t, err)
	return g
}

// act applies every action and checks the money and turn invariants after each one
func act(t *testing.T, g *Game, actions ...Action) {
	t.Helper()

	for _, a := range actions {
		require.NoError(t, g.Act(a), "%s by %s", a.Kind, a.Actor)
		assertInvariants(t, g)
	}
}

func assertInvariants(t *testing.T, g *Game) {
	t.Helper()

	starting, money, committed := 0, 0, 0
	for i, p := range g.Players() {
		starting += p.StartingStack()
		money += g.Stack(i)
		committed += p.Commitment()
		assert.GreaterOrEqual(t, g.Stack(i), 0, "seat %d has a negative stack", i)
	}

	if g.IsTerminal() {
		assert.Equal(t, starting, money, "chips were created or lost")
		assert.Equal(t, NoActor, g.Actor())
		return
	}

	assert.Equal(t, starting, money+committed, "chips were created or lost")

	bets := 0
	for i := range g.Players() {
		bets += g.Bet(i)
	}

	assert.Equal(t, committed, g.Pot()+bets)

	stage, ok := g.Stage()
	require.True(t, ok)
	if stage.Kind == StageBetting && g.Actor().IsPlayer() {
		assert.True(t, g.IsRelevant(int(g.Actor())), "%s cannot bet but was asked to act", g.Actor())
	}
}

func dealHole(t *testing.T, g *Game, holes ...string) {
	t.Helper()

	for seat, cards := range holes {
		act(t, g, DealHole(seat, deck.MustCardsFromString(cards)...))
	}
}

func dealBoard(t *testing.T, g *Game, cards string) {
	t.Helper()
	act(t, g, DealBoard(deck.MustCardsFromString(cards)...))
}

func commitments(g *Game) []int {
	c := make([]int, 0)
	for _, p := range g.Players() {
		c = append(c, p.Commitment())
	}

	return c
}
