package engine

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Limit is the betting structure of a betting stage
type Limit int

// Limit constants
const (
	NoLimit Limit = iota
	PotLimit
	FixedLimit
)

var limitNames = map[Limit]string{
	NoLimit:    "no-limit",
	PotLimit:   "pot-limit",
	FixedLimit: "fixed-limit",
}

func (l Limit) String() string {
	return limitNames[l]
}

// MarshalJSON encodes JSON
func (l Limit) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// LimitFromString returns the limit from a string such as "pot-limit"
func LimitFromString(s string) (Limit, error) {
	for limit, name := range limitNames {
		if strings.EqualFold(name, s) {
			return limit, nil
		}
	}

	return 0, fmt.Errorf("invalid limit: %s", s)
}

// minRaiseTo is a full raise, or the actor's whole total if they cannot cover one
func (g *Game) minRaiseTo(seat int) int {
	total := g.Bet(seat) + g.Stack(seat)
	return min(g.maxBet()+g.maxDelta, total)
}

// maxRaiseTo is the largest amount the actor may raise to under the stage's limit
func (g *Game) maxRaiseTo(seat int) int {
	total := g.Bet(seat) + g.Stack(seat)
	minimum := g.minRaiseTo(seat)

	switch g.currentStage().Limit {
	case PotLimit:
		// the pot after calling, on top of the call
		maxBet := g.maxBet()
		potAfterCall := g.Pot() + g.totalBets() + maxBet - g.Bet(seat)
		return max(minimum, min(maxBet+potAfterCall, total))
	case FixedLimit:
		return minimum
	}

	return total
}
