package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunningTargets(t *testing.T) {
	stages := []Stage{
		HoleCardDealing(2, false),
		Betting(NoLimit, 2),
		BoardCardDealing(3),
		HoleCardDealing(1, true),
		BoardCardDealing(1),
		Showdown(),
	}

	assert.Equal(t, []int{2, 0, 3, 3, 4, 0}, runningTargets(stages))
}

func TestBetting_fixedLimitDefaultsRaiseCap(t *testing.T) {
	a := assert.New(t)
	a.Equal(DefaultFixedLimitRaises, Betting(FixedLimit, 2).MaxRaises)
	a.Equal(0, Betting(NoLimit, 2).MaxRaises)
	a.Equal(0, Betting(PotLimit, 2).MaxRaises)
}

func TestStageKind_MarshalJSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(StageShowdown)
	a.NoError(err)
	a.Equal(`{"id":4,"name":"showdown"}`, string(b))

	a.Equal("hole-dealing", StageHoleDealing.String())
	a.Equal("board-dealing", StageBoardDealing.String())
	a.Equal("betting", StageBetting.String())
	a.Equal("discard-draw", StageDiscardDraw.String())
}

func TestLimitFromString(t *testing.T) {
	a := assert.New(t)

	limit, err := LimitFromString("Pot-Limit")
	a.NoError(err)
	a.Equal(PotLimit, limit)

	limit, err = LimitFromString("fixed-limit")
	a.NoError(err)
	a.Equal(FixedLimit, limit)

	_, err = LimitFromString("spread-limit")
	a.EqualError(err, "invalid limit: spread-limit")

	b, _ := json.Marshal(NoLimit)
	a.Equal(`"no-limit"`, string(b))
}

func TestAdvance_anteOnlyAllIn(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, Options{
		Ante:   5,
		Stages: holdemStages(NoLimit, 2),
	}, 5, 5)

	dealHole(t, g, "AhAd", "KhKd")

	// no betting is possible, only nature acts until the showdown
	a.Equal(Nature, g.Actor())
	a.False(g.CanCheckCall(0))
	a.True(g.CanDealBoard())
	dealBoard(t, g, "2c7s9d")
	dealBoard(t, g, "Jc")
	dealBoard(t, g, "4h")

	a.True(g.CanShowdown(0))
	a.False(g.CanShowdown(1))
	act(t, g, Show(0, false), Show(1, false))

	a.True(g.IsTerminal())
	a.Equal([]int{5, -5}, g.Payouts())
}

func TestAdvance_bettingIsSkippedWhenOnlyOnePlayerCanBet(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, Options{
		Blinds: []int{1, 2},
		Stages: holdemStages(NoLimit, 2),
	}, 1000, 1000, 100)

	dealHole(t, g, "QhQd", "KhKd", "AhAd")
	act(t, g, BetRaise(2, 100), CheckCall(0), Fold(1))

	// seat 0 covers seat 2's all-in, nobody is left to bet against
	a.Equal(Nature, g.Actor())
	dealBoard(t, g, "2c7s9d")
	a.Equal(Nature, g.Actor())
	dealBoard(t, g, "Jc")
	dealBoard(t, g, "4h")

	a.Equal(Seat(2), g.Actor())
	act(t, g, Show(2, false), Show(0, false))

	a.True(g.Player(0).Mucked())
	a.Equal([]int{-100, -2, 102}, g.Payouts())
}

func TestOpenStage_aggressorOnUnbetStreet(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, Options{
		Blinds: []int{1, 2},
		Stages: holdemStages(NoLimit, 2),
	}, 100, 100, 100)

	dealHole(t, g, "AhAd", "KhKd", "QhQd")
	a.Equal(-1, g.Aggressor())

	act(t, g, CheckCall(2), CheckCall(0), CheckCall(1))
	dealBoard(t, g, "2c7s9d")

	// first to act on an unbet street
	a.Equal(Seat(0), g.Actor())
	a.Equal(0, g.Aggressor())

	act(t, g, CheckCall(0), BetRaise(1, 4), CheckCall(2), CheckCall(0))
	a.Equal(1, g.Aggressor())
	a.Equal(Nature, g.Actor())
}
