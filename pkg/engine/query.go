package engine

import (
	"errors"

	"pokerengine/pkg/deck"
)

// CanFold returns true if the seat may fold now
func (g *Game) CanFold(seat int) bool {
	return g.Verify(Fold(seat)) == nil
}

// CanCheckCall returns true if the seat may check or call now
func (g *Game) CanCheckCall(seat int) bool {
	return g.Verify(CheckCall(seat)) == nil
}

// CanBetRaise returns true if the seat may bet or raise now
// If an amount is provided, it must be a legal amount to raise to.
func (g *Game) CanBetRaise(seat int, amount ...int) bool {
	if len(amount) > 0 {
		return g.Verify(BetRaise(seat, amount[0])) == nil
	}

	if !g.isTurnInStage(seat, StageBetting) {
		return false
	}

	return g.Verify(BetRaise(seat, g.minRaiseTo(seat))) == nil
}

// CanShowdown returns true if the seat may show or muck now
func (g *Game) CanShowdown(seat int) bool {
	return g.Verify(Show(seat, false)) == nil
}

// CanDealHole returns true if the target seat may be dealt hole cards
// A wrong number of supplied cards still counts as dealable.
func (g *Game) CanDealHole(target int, cards ...*deck.Card) bool {
	return dealable(g.Verify(DealHole(target, cards...)))
}

// CanDealBoard returns true if community cards may be dealt
// A wrong number of supplied cards still counts as dealable.
func (g *Game) CanDealBoard(cards ...*deck.Card) bool {
	return dealable(g.Verify(DealBoard(cards...)))
}

// CanDiscardDraw returns true if the seat may exchange the discards now
func (g *Game) CanDiscardDraw(seat int, discards ...*deck.Card) bool {
	return dealable(g.Verify(Draw(seat, discards, nil)))
}

// MinRaiseTo returns the smallest amount the seat may raise to, or 0 if they cannot raise
func (g *Game) MinRaiseTo(seat int) int {
	if !g.CanBetRaise(seat) {
		return 0
	}

	return g.minRaiseTo(seat)
}

// MaxRaiseTo returns the largest amount the seat may raise to, or 0 if they cannot raise
func (g *Game) MaxRaiseTo(seat int) int {
	if !g.CanBetRaise(seat) {
		return 0
	}

	return g.maxRaiseTo(seat)
}

// CallAmount returns what the seat would add to the pot by calling, 0 when checking or not their turn
func (g *Game) CallAmount(seat int) int {
	if !g.CanCheckCall(seat) {
		return 0
	}

	return g.callAmount(seat)
}

func (g *Game) callAmount(seat int) int {
	return min(g.Stack(seat), g.maxBet()-g.Bet(seat))
}

func (g *Game) isTurnInStage(seat int, kind StageKind) bool {
	if g.terminal || g.actor != Seat(seat) {
		return false
	}

	return g.currentStage().Kind == kind
}

func dealable(err error) bool {
	if err == nil {
		return true
	}

	var countErr CardCountError
	return errors.As(err, &countErr)
}
