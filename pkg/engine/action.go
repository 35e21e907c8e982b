package engine

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"pokerengine/pkg/deck"
)

// ActionKind is the kind of an action
type ActionKind int

// ActionKind constants
const (
	ActionFold ActionKind = iota
	ActionCheckCall
	ActionBetRaise
	ActionDealHole
	ActionDealBoard
	ActionDiscardDraw
	ActionShowdown
)

func (a ActionKind) String() string {
	switch a {
	case ActionFold:
		return "fold"
	case ActionCheckCall:
		return "check-call"
	case ActionBetRaise:
		return "bet-raise"
	case ActionDealHole:
		return "deal-hole"
	case ActionDealBoard:
		return "deal-board"
	case ActionDiscardDraw:
		return "discard-draw"
	case ActionShowdown:
		return "showdown"
	}

	return ""
}

// MarshalJSON encodes JSON
func (a ActionKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// stage returns the stage kind the action belongs to
func (a ActionKind) stage() StageKind {
	switch a {
	case ActionDealHole:
		return StageHoleDealing
	case ActionDealBoard:
		return StageBoardDealing
	case ActionDiscardDraw:
		return StageDiscardDraw
	case ActionShowdown:
		return StageShowdown
	}

	return StageBetting
}

// Action is a single state transition requested by a player or by nature
type Action struct {
	Kind  ActionKind `json:"kind"`
	Actor Actor      `json:"actor"`
	// Amount is what a bet or raise is to, or the chips committed once applied
	Amount int `json:"amount,omitempty"`
	// Target is the seat receiving hole cards
	Target int `json:"target,omitempty"`
	// Cards are the dealt cards, or the discarded ones
	Cards deck.Hand `json:"cards,omitempty"`
	// Draws are the replacement cards of a discard/draw
	Draws deck.Hand `json:"draws,omitempty"`
	// Force makes a showdown reveal even when the hand cannot win
	Force bool `json:"force,omitempty"`
	// Mucked is set on an applied showdown that mucked instead of revealing
	Mucked bool `json:"mucked,omitempty"`
}

// Fold returns a fold for the seat
func Fold(seat int) Action {
	return Action{Kind: ActionFold, Actor: Seat(seat)}
}

// CheckCall returns a check or call for the seat
func CheckCall(seat int) Action {
	return Action{Kind: ActionCheckCall, Actor: Seat(seat)}
}

// BetRaise returns a bet or raise to amount for the seat
func BetRaise(seat, amount int) Action {
	return Action{Kind: ActionBetRaise, Actor: Seat(seat), Amount: amount}
}

// DealHole deals hole cards to the target seat
// If no cards are provided they are drawn from the deck.
func DealHole(target int, cards ...*deck.Card) Action {
	return Action{Kind: ActionDealHole, Actor: Nature, Target: target, Cards: cards}
}

// DealBoard deals community cards
// If no cards are provided they are drawn from the deck.
func DealBoard(cards ...*deck.Card) Action {
	return Action{Kind: ActionDealBoard, Actor: Nature, Cards: cards}
}

// Draw exchanges discards for replacement cards, draws are taken from the deck if nil
// Standing pat is a discard of no cards.
func Draw(seat int, discards, draws deck.Hand) Action {
	return Action{Kind: ActionDiscardDraw, Actor: Seat(seat), Cards: discards, Draws: draws}
}

// Show shows the seat's hand, or mucks it when it cannot win and force is not set
func Show(seat int, force bool) Action {
	return Action{Kind: ActionShowdown, Actor: Seat(seat), Force: force}
}

// command is a verified action with everything apply needs resolved
type command struct {
	action Action
	// amount is the number of chips to commit
	amount int
	// cards are the named cards leaving the deck, draw counts the top cards taken when none are named
	cards deck.Hand
	draw  int
	// reshuffle puts the discards back under the deck first
	reshuffle bool
	muck      bool
}

// Verify reports whether the action is legal right now without changing anything
func (g *Game) Verify(a Action) error {
	_, err := g.verify(a)
	return err
}

// Act verifies and applies the action
// A rejected action leaves the game untouched.
func (g *Game) Act(a Action) error {
	cmd, err := g.verify(a)
	if err != nil {
		return err
	}

	g.apply(cmd)
	return nil
}

func (g *Game) verify(a Action) (*command, error) {
	if g.terminal {
		return nil, ErrTerminalGame
	}

	if a.Actor != g.actor {
		return nil, ErrOutOfTurn
	}

	stage := g.currentStage()
	if a.Kind.stage() != stage.Kind {
		return nil, fmt.Errorf("%w: cannot %s during %s", ErrWrongStage, a.Kind, stage.Kind)
	}

	switch a.Kind {
	case ActionFold:
		return g.verifyFold(a)
	case ActionCheckCall:
		return &command{action: a, amount: g.callAmount(int(a.Actor))}, nil
	case ActionBetRaise:
		return g.verifyBetRaise(a)
	case ActionDealHole:
		return g.verifyDealHole(a)
	case ActionDealBoard:
		return g.verifyDealBoard(a)
	case ActionDiscardDraw:
		return g.verifyDiscardDraw(a)
	case ActionShowdown:
		return g.verifyShowdown(a)
	}

	return nil, fmt.Errorf("unknown action: %d", a.Kind)
}

func (g *Game) verifyFold(a Action) (*command, error) {
	if g.Bet(int(a.Actor)) >= g.maxBet() {
		return nil, ErrRedundantFold
	}

	return &command{action: a}, nil
}

func (g *Game) verifyBetRaise(a Action) (*command, error) {
	seat := int(a.Actor)
	stage := g.currentStage()

	if stage.MaxRaises > 0 && g.raiseCount >= stage.MaxRaises {
		return nil, fmt.Errorf("%w: betting is capped at %d raises", ErrInvalidAmount, stage.MaxRaises)
	}

	opponents := 0
	for i := range g.players {
		if i != seat && g.IsRelevant(i) {
			opponents++
		}
	}

	if opponents == 0 {
		return nil, fmt.Errorf("%w: no other player can call a raise", ErrInvalidAmount)
	}

	bet := g.Bet(seat)
	total := bet + g.Stack(seat)
	if total <= g.maxBet() {
		return nil, fmt.Errorf("%w: you do not have enough to raise", ErrInvalidAmount)
	}

	minimum, maximum := g.minRaiseTo(seat), g.maxRaiseTo(seat)
	if a.Amount > maximum || (a.Amount < minimum && a.Amount != total) || a.Amount <= g.maxBet() {
		return nil, AmountError{Amount: a.Amount, Min: minimum, Max: maximum}
	}

	return &command{action: a, amount: a.Amount - bet}, nil
}

func (g *Game) verifyDealHole(a Action) (*command, error) {
	stage := g.currentStage()
	if a.Target < 0 || a.Target >= len(g.players) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSeat, a.Target)
	}

	p := g.players[a.Target]
	if p.Mucked() {
		return nil, fmt.Errorf("%w: seat %d is out of the hand", ErrInvalidCardCount, a.Target)
	}

	if len(p.holeCards) >= g.targets[g.stageIndex] {
		return nil, fmt.Errorf("%w: seat %d already has %d cards", ErrInvalidCardCount, a.Target, len(p.holeCards))
	}

	return g.resolveCards(&command{action: a}, a.Cards, stage.Count, false)
}

func (g *Game) verifyDealBoard(a Action) (*command, error) {
	stage := g.currentStage()
	if len(g.board) >= g.targets[g.stageIndex] {
		return nil, fmt.Errorf("%w: the board already has %d cards", ErrInvalidCardCount, len(g.board))
	}

	return g.resolveCards(&command{action: a}, a.Cards, stage.Count, false)
}

func (g *Game) verifyDiscardDraw(a Action) (*command, error) {
	p := g.players[int(a.Actor)]

	if a.Cards.HasDuplicates() {
		return nil, fmt.Errorf("%w: duplicate discards", ErrInvalidCard)
	}

	for _, card := range a.Cards {
		if !p.holeCards.HasCard(card) {
			return nil, fmt.Errorf("%w: %s is not in your hand", ErrInvalidCard, card.Token())
		}
	}

	return g.resolveCards(&command{action: a}, a.Draws, len(a.Cards), true)
}

func (g *Game) verifyShowdown(a Action) (*command, error) {
	seat := int(a.Actor)
	if g.players[seat].Mucked() {
		return nil, fmt.Errorf("%w: seat %d has mucked", ErrWrongStage, seat)
	}

	return &command{action: a, muck: !a.Force && g.mustMuck(seat)}, nil
}

// resolveCards checks supplied cards against the deck, or that want cards can be drawn from it.
// With reuse set, the discards count as part of the deck once it runs short.
func (g *Game) resolveCards(cmd *command, cards deck.Hand, want int, reuse bool) (*command, error) {
	left := g.deck.CardsLeft()
	cmd.reshuffle = reuse && left < want && len(g.discards) > 0
	if cmd.reshuffle {
		left += len(g.discards)
	}

	if cards == nil {
		if left < want {
			return nil, fmt.Errorf("%w: only %d cards left in the deck", ErrInvalidCardCount, left)
		}

		cmd.draw = want
		return cmd, nil
	}

	if len(cards) != want {
		return nil, CardCountError{Want: want, Got: len(cards)}
	}

	if cards.HasDuplicates() {
		return nil, fmt.Errorf("%w: duplicate cards", ErrInvalidCard)
	}

	for _, card := range cards {
		if !g.deck.Contains(card) && !(cmd.reshuffle && g.discards.HasCard(card)) {
			return nil, fmt.Errorf("%w: %s has already been dealt", ErrInvalidCard, card.Token())
		}
	}

	cmd.cards = cards.Clone()
	return cmd, nil
}

// mustMuck returns true if an already shown hand beats the player and covers their commitment
// Mucking such a hand never changes the payout.
func (g *Game) mustMuck(seat int) bool {
	p := g.players[seat]
	hand := g.Hand(seat)
	for i, other := range g.players {
		if i == seat || !other.Shown() || other.commitment < p.commitment {
			continue
		}

		if g.Hand(i).Compare(hand) > 0 {
			return true
		}
	}

	return false
}

func (g *Game) apply(cmd *command) {
	a := cmd.action
	stage := g.currentStage()

	switch a.Kind {
	case ActionFold:
		g.players[int(a.Actor)].status = StatusMucked
		g.popQueue()
	case ActionCheckCall:
		g.players[int(a.Actor)].commit(cmd.amount)
		a.Amount = cmd.amount
		g.popQueue()
	case ActionBetRaise:
		seat := int(a.Actor)
		g.maxDelta = max(g.maxDelta, a.Amount-g.maxBet())
		g.players[seat].commit(cmd.amount)
		g.aggressor = seat
		g.raiseCount++
		g.queue = g.seatsFrom(seat+1, func(i int) bool {
			return i != seat && g.IsRelevant(i)
		})
	case ActionDealHole:
		a.Cards = g.takeFromDeck(cmd)
		g.players[a.Target].addHoleCards(a.Cards, stage.Exposed)
	case ActionDealBoard:
		a.Cards = g.takeFromDeck(cmd)
		g.board = append(g.board, a.Cards...)
	case ActionDiscardDraw:
		p := g.players[int(a.Actor)]
		a.Draws = g.takeFromDeck(cmd)
		p.discard(a.Cards)
		p.addHoleCards(a.Draws, false)
		g.discards = append(g.discards, a.Cards...)
		g.popQueue()
	case ActionShowdown:
		p := g.players[int(a.Actor)]
		if cmd.muck {
			p.status = StatusMucked
		} else {
			p.status = StatusShown
		}
		a.Mucked = cmd.muck
		g.popQueue()
	}

	g.history = append(g.history, a)

	g.logger.WithFields(logrus.Fields{
		"actor":  a.Actor.String(),
		"action": a.Kind.String(),
		"amount": a.Amount,
		"cards":  deck.CardsToString(a.Cards),
	}).Debug("applied action")

	g.update()
	g.advance()
}

// takeFromDeck removes the command's cards from the deck and returns them
func (g *Game) takeFromDeck(cmd *command) deck.Hand {
	if cmd.reshuffle {
		g.logger.WithField("cards", len(g.discards)).Debug("shuffling discards into the deck")
		g.deck.ShuffleDiscards(g.discards, g.rng)
		g.discards = make(deck.Hand, 0)
	}

	// verify guarantees the deck can cover the command
	if cmd.cards == nil {
		cards, err := g.deck.DrawN(cmd.draw)
		if err != nil {
			panic(err)
		}

		return cards
	}

	for _, card := range cmd.cards {
		if err := g.deck.Remove(card); err != nil {
			panic(err)
		}
	}

	return cmd.cards
}

func (g *Game) popQueue() {
	if len(g.queue) > 0 {
		g.queue = g.queue[1:]
	}
}
