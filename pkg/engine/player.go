package engine

import (
	"encoding/json"
	"fmt"

	"pokerengine/pkg/deck"
)

// Actor identifies who the game is waiting on
// Non-negative values are seat indexes.
type Actor int

// special actors
const (
	NoActor Actor = -2
	Nature  Actor = -1
)

// Seat returns the actor for a seat index
func Seat(i int) Actor {
	return Actor(i)
}

// IsPlayer returns true if the actor is seated at the table
func (a Actor) IsPlayer() bool {
	return a >= 0
}

func (a Actor) String() string {
	switch a {
	case NoActor:
		return "none"
	case Nature:
		return "nature"
	}

	return fmt.Sprintf("seat %d", int(a))
}

// Status is the showdown status of a player
type Status int

// Status constants
const (
	StatusDefault Status = iota
	StatusShown
	StatusMucked
)

func (s Status) String() string {
	switch s {
	case StatusDefault:
		return "default"
	case StatusShown:
		return "shown"
	case StatusMucked:
		return "mucked"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Player is an individual seat in the hand
// Derived values that depend on the rest of the table (bet, stack, hand) live on Game.
type Player struct {
	seat          int
	startingStack int
	commitment    int
	revenue       int
	holeCards     deck.Hand
	exposed       []bool
	status        Status
}

func newPlayer(seat, startingStack int) *Player {
	return &Player{
		seat:          seat,
		startingStack: startingStack,
		holeCards:     make(deck.Hand, 0),
		exposed:       make([]bool, 0),
	}
}

// Seat returns the seat index
func (p *Player) Seat() int {
	return p.seat
}

// StartingStack returns what the player sat down with
func (p *Player) StartingStack() int {
	return p.startingStack
}

// Commitment returns the total amount put into the pot this hand
func (p *Player) Commitment() int {
	return p.commitment
}

// Revenue returns the amount won at distribution
func (p *Player) Revenue() int {
	return p.revenue
}

// HoleCards returns a copy of the player's hole cards
func (p *Player) HoleCards() deck.Hand {
	return p.holeCards.Clone()
}

// Status returns the showdown status
func (p *Player) Status() Status {
	return p.status
}

// Mucked returns true if the player folded or mucked
func (p *Player) Mucked() bool {
	return p.status == StatusMucked
}

// Shown returns true if the player revealed their hand
func (p *Player) Shown() bool {
	return p.status == StatusShown
}

// VisibleCards returns the hole cards the viewer is allowed to see
// The owner sees everything; others see exposed cards, or all cards once shown.
func (p *Player) VisibleCards(viewer Actor) deck.Hand {
	if viewer == Seat(p.seat) || p.status == StatusShown {
		return p.HoleCards()
	}

	if p.status == StatusMucked {
		return deck.Hand{}
	}

	visible := make(deck.Hand, 0, len(p.holeCards))
	for i, card := range p.holeCards {
		if p.exposed[i] {
			visible = append(visible, card)
		}
	}

	return visible
}

func (p *Player) commit(amount int) {
	p.commitment += amount
}

func (p *Player) addHoleCards(cards deck.Hand, exposed bool) {
	for _, card := range cards {
		p.holeCards.AddCard(card)
		p.exposed = append(p.exposed, exposed)
	}
}

func (p *Player) discard(cards deck.Hand) {
	for _, card := range cards {
		i := p.holeCards.IndexOf(card)
		if p.holeCards.Discard(card) {
			p.exposed = append(p.exposed[:i:i], p.exposed[i+1:]...)
		}
	}
}
