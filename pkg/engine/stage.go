package engine

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// StageKind is the kind of a stage in the hand's timeline
type StageKind int

// StageKind constants
const (
	StageHoleDealing StageKind = iota
	StageBoardDealing
	StageBetting
	StageDiscardDraw
	StageShowdown
)

func (s StageKind) String() string {
	switch s {
	case StageHoleDealing:
		return "hole-dealing"
	case StageBoardDealing:
		return "board-dealing"
	case StageBetting:
		return "betting"
	case StageDiscardDraw:
		return "discard-draw"
	case StageShowdown:
		return "showdown"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s StageKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}

// Stage is one unit of the hand's timeline
// Only the fields relevant to Kind are used.
type Stage struct {
	Kind StageKind `json:"kind"`

	// dealing stages
	Count   int  `json:"count,omitempty"`
	Exposed bool `json:"exposed,omitempty"`

	// betting stages
	Limit           Limit `json:"limit,omitempty"`
	InitialMaxDelta int   `json:"initialMaxDelta,omitempty"`
	// MaxRaises caps bets and raises in the stage, 0 means unlimited
	MaxRaises int `json:"maxRaises,omitempty"`
}

// DefaultFixedLimitRaises is the usual cap of one bet and three raises
const DefaultFixedLimitRaises = 4

// HoleCardDealing deals count hole cards to every player, face up if exposed
func HoleCardDealing(count int, exposed bool) Stage {
	return Stage{Kind: StageHoleDealing, Count: count, Exposed: exposed}
}

// BoardCardDealing deals count community cards
func BoardCardDealing(count int) Stage {
	return Stage{Kind: StageBoardDealing, Count: count}
}

// Betting is a betting round with the given limit and minimum raise increment
// Fixed-limit rounds are capped at DefaultFixedLimitRaises.
func Betting(limit Limit, initialMaxDelta int) Stage {
	s := Stage{Kind: StageBetting, Limit: limit, InitialMaxDelta: initialMaxDelta}
	if limit == FixedLimit {
		s.MaxRaises = DefaultFixedLimitRaises
	}

	return s
}

// DiscardDraw lets every player exchange hole cards once
func DiscardDraw() Stage {
	return Stage{Kind: StageDiscardDraw}
}

// Showdown has the remaining players show or muck
func Showdown() Stage {
	return Stage{Kind: StageShowdown}
}

// runningTargets returns, per stage, how many cards a player (hole) or the board
// must hold once the stage is complete
func runningTargets(stages []Stage) []int {
	targets := make([]int, len(stages))
	hole, board := 0, 0
	for i, s := range stages {
		switch s.Kind {
		case StageHoleDealing:
			hole += s.Count
			targets[i] = hole
		case StageBoardDealing:
			board += s.Count
			targets[i] = board
		}
	}

	return targets
}

func (g *Game) currentStage() *Stage {
	if g.stageIndex >= len(g.stages) {
		return nil
	}

	return &g.stages[g.stageIndex]
}

// skippable returns true if the current stage has nothing left to do
func (g *Game) skippable() bool {
	if g.nonMuckedCount() <= 1 {
		return true
	}

	stage := g.currentStage()
	switch stage.Kind {
	case StageHoleDealing:
		target := g.targets[g.stageIndex]
		for _, p := range g.players {
			if !p.Mucked() && len(p.holeCards) < target {
				return false
			}
		}

		return true
	case StageBoardDealing:
		return len(g.board) >= g.targets[g.stageIndex]
	case StageBetting:
		if len(g.queue) == 0 {
			return true
		}

		// nobody left to bet against and nothing to call
		return g.relevantCount() <= 1 && g.Bet(g.queue[0]) >= g.maxBet()
	case StageDiscardDraw, StageShowdown:
		return len(g.queue) == 0
	}

	panic("unknown stage")
}

// opener returns who acts first in the current stage
func (g *Game) opener() Actor {
	stage := g.currentStage()
	switch stage.Kind {
	case StageHoleDealing, StageBoardDealing:
		return Nature
	case StageBetting:
		// first relevant player after the highest bet, ties going to the later seat
		high := 0
		for i := range g.players {
			if g.Bet(i) >= g.Bet(high) {
				high = i
			}
		}

		seats := g.seatsFrom(high+1, g.IsRelevant)
		if len(seats) == 0 {
			return NoActor
		}

		return Seat(seats[0])
	case StageDiscardDraw:
		seats := g.seatsFrom(0, g.isLive)
		if len(seats) == 0 {
			return NoActor
		}

		return Seat(seats[0])
	case StageShowdown:
		seats := g.seatsFrom(max(g.aggressor, 0), g.isLive)
		if len(seats) == 0 {
			return NoActor
		}

		return Seat(seats[0])
	}

	panic("unknown stage")
}

// openStage prepares the current stage for its first action
func (g *Game) openStage() {
	stage := g.currentStage()
	opener := g.opener()
	g.actor = opener

	switch stage.Kind {
	case StageBetting:
		g.maxDelta = stage.InitialMaxDelta
		g.raiseCount = 0
		g.queue = nil
		if opener.IsPlayer() {
			g.queue = g.seatsFrom(int(opener), g.IsRelevant)
			if g.maxBet() == 0 {
				g.aggressor = int(opener)
			}
		}
	case StageDiscardDraw, StageShowdown:
		g.queue = nil
		if opener.IsPlayer() {
			g.queue = g.seatsFrom(int(opener), g.isLive)
		}
	default:
		g.queue = nil
	}

	g.logger.WithFields(logrus.Fields{
		"stage":  stage.Kind.String(),
		"index":  g.stageIndex,
		"opener": opener.String(),
	}).Debug("opened stage")
}

// closeStage ends the current stage
// Closing a betting stage trims the requirement to the second-highest commitment,
// anything committed above it is not part of the pot until distribution.
func (g *Game) closeStage() {
	g.queue = nil
	if g.currentStage().Kind != StageBetting {
		return
	}

	first, second := 0, 0
	for _, p := range g.players {
		switch {
		case p.commitment >= first:
			first, second = p.commitment, first
		case p.commitment > second:
			second = p.commitment
		}
	}

	g.requirement = max(g.requirement, second)
}

// update drops players who can no longer act from the queue and hands control to the next one
func (g *Game) update() {
	stage := g.currentStage()
	if stage == nil {
		return
	}

	switch stage.Kind {
	case StageBetting:
		g.queue = filterSeats(g.queue, g.IsRelevant)
	case StageDiscardDraw, StageShowdown:
		g.queue = filterSeats(g.queue, g.isLive)
	default:
		return
	}

	if len(g.queue) > 0 {
		g.actor = Seat(g.queue[0])
	} else {
		g.actor = NoActor
	}
}

// advance closes every skippable stage and opens the next one that is not
// Once the stages are exhausted the pot is distributed and the hand is over.
func (g *Game) advance() {
	for g.stageIndex < len(g.stages) {
		if !g.skippable() {
			return
		}

		g.closeStage()
		g.stageIndex++
		if g.stageIndex < len(g.stages) {
			g.openStage()
		}
	}

	g.distribute()
	g.actor = NoActor
	g.terminal = true
}

// seatsFrom returns seats matching pred in table order, starting at start and wrapping around
func (g *Game) seatsFrom(start int, pred func(seat int) bool) []int {
	n := len(g.players)
	seats := make([]int, 0, n)
	for i := 0; i < n; i++ {
		seat := (start + i) % n
		if pred(seat) {
			seats = append(seats, seat)
		}
	}

	return seats
}

func filterSeats(seats []int, pred func(seat int) bool) []int {
	filtered := make([]int, 0, len(seats))
	for _, seat := range seats {
		if pred(seat) {
			filtered = append(filtered, seat)
		}
	}

	return filtered
}
