// Package handhistory records finished hands.
package handhistory

import (
	"encoding/json"
	"errors"
	"strings"

	"pokerengine/pkg/engine"
	"pokerengine/pkg/notation"
)

// ErrHandInProgress is returned when a history is requested before the pot is distributed
var ErrHandInProgress = errors.New("the hand is still in progress")

// Seat is a player's result
type Seat struct {
	Seat          int           `json:"seat"`
	StartingStack int           `json:"startingStack"`
	Commitment    int           `json:"commitment"`
	Revenue       int           `json:"revenue"`
	FinalStack    int           `json:"finalStack"`
	Net           int           `json:"net"`
	Status        engine.Status `json:"status"`
	// Cards and Hand are only recorded for hands shown at showdown
	Cards string `json:"cards,omitempty"`
	Hand  string `json:"hand,omitempty"`
}

// History is the record of a finished hand
type History struct {
	ID      string   `json:"id"`
	Variant string   `json:"variant"`
	Ante    int      `json:"ante"`
	Blinds  []int    `json:"blinds"`
	Board   string   `json:"board"`
	Seats   []Seat   `json:"seats"`
	Actions []string `json:"actions"`
}

// FromGame builds the history of a finished game
func FromGame(variant string, g *engine.Game) (*History, error) {
	if !g.IsTerminal() {
		return nil, ErrHandInProgress
	}

	payouts := g.Payouts()
	seats := make([]Seat, 0, len(payouts))
	for i, p := range g.Players() {
		seat := Seat{
			Seat:          i,
			StartingStack: p.StartingStack(),
			Commitment:    p.Commitment(),
			Revenue:       p.Revenue(),
			FinalStack:    g.Stack(i),
			Net:           payouts[i],
			Status:        p.Status(),
		}

		if p.Shown() {
			seat.Cards = p.HoleCards().String()
			seat.Hand = g.Hand(i).String()
		}

		seats = append(seats, seat)
	}

	history := g.History()
	actions := make([]string, len(history))
	for i, a := range history {
		actions[i] = notation.Format(a)
	}

	return &History{
		ID:      g.ID(),
		Variant: variant,
		Ante:    g.Ante(),
		Blinds:  g.Blinds(),
		Board:   g.BoardCards().String(),
		Seats:   seats,
		Actions: actions,
	}, nil
}

// Script returns the actions in the scripted language, one per line
func (h *History) Script() string {
	return strings.Join(h.Actions, "\n")
}

// JSON returns the indented JSON encoding
func (h *History) JSON() ([]byte, error) {
	return json.MarshalIndent(h, "", "  ")
}
