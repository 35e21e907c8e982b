// Package evaluator ranks poker hands for the engine.
//
// The engine only depends on the Evaluator interface: given hole and board
// cards it needs a totally ordered Hand, or ErrInsufficientCards when the
// cards cannot form a hand yet.
package evaluator

import (
	"errors"
	"fmt"

	"github.com/paulhankin/poker"
	"pokerengine/pkg/deck"
)

// ErrInsufficientCards is returned when there are not enough cards to form a hand
var ErrInsufficientCards = errors.New("insufficient cards")

// Evaluator ranks a player's hole cards against the board
type Evaluator interface {
	Evaluate(hole, board deck.Hand) (*Hand, error)
}

// Hand is an evaluated hand
// Hands with a higher Strength beat hands with a lower one.
type Hand struct {
	Strength    int       `json:"strength"`
	Description string    `json:"description"`
	Cards       deck.Hand `json:"cards"`
}

// Compare returns -1, 0 or 1 if h is worse, equal or better than other
// A nil hand loses to any hand and ties with another nil hand.
func (h *Hand) Compare(other *Hand) int {
	switch {
	case h == nil && other == nil:
		return 0
	case h == nil:
		return -1
	case other == nil:
		return 1
	case h.Strength < other.Strength:
		return -1
	case h.Strength > other.Strength:
		return 1
	}

	return 0
}

func (h *Hand) String() string {
	if h == nil {
		return ""
	}

	return h.Description
}

// toPokerCard converts to the evaluation library's representation, where the ace is rank 1
func toPokerCard(c *deck.Card) (poker.Card, error) {
	var suit poker.Suit
	switch c.Suit {
	case deck.Clubs:
		suit = poker.Club
	case deck.Diamonds:
		suit = poker.Diamond
	case deck.Hearts:
		suit = poker.Heart
	case deck.Spades:
		suit = poker.Spade
	default:
		return 0, fmt.Errorf("unknown suit: %s", c.Suit)
	}

	rank := c.Rank
	if rank == deck.Ace {
		rank = 1
	}

	return poker.MakeCard(suit, poker.Rank(rank))
}

// bestFive returns the strongest five-card hand among cards
func bestFive(cards deck.Hand) (*Hand, error) {
	if len(cards) < 5 {
		return nil, ErrInsufficientCards
	}

	converted := make([]poker.Card, len(cards))
	for i, c := range cards {
		pc, err := toPokerCard(c)
		if err != nil {
			return nil, err
		}

		converted[i] = pc
	}

	var best *Hand
	forEachCombination(len(cards), 5, func(idx []int) bool {
		var five [5]poker.Card
		for i, j := range idx {
			five[i] = converted[j]
		}

		strength := int(poker.Eval5(&five))
		if best == nil || strength > best.Strength {
			best = newHand(strength, five, pick(cards, idx))
		}

		return true
	})

	return best, nil
}

func newHand(strength int, five [5]poker.Card, cards deck.Hand) *Hand {
	description, err := poker.Describe(five[:])
	if err != nil {
		description = ""
	}

	return &Hand{
		Strength:    strength,
		Description: description,
		Cards:       cards,
	}
}

func pick(cards deck.Hand, idx []int) deck.Hand {
	picked := make(deck.Hand, len(idx))
	for i, j := range idx {
		picked[i] = cards[j]
	}

	return picked
}

// forEachCombination calls fn with every k-sized index combination of n items
// Iteration stops early if fn returns false.
func forEachCombination(n, k int, fn func(idx []int) bool) {
	if k > n {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		if !fn(idx) {
			return
		}

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}

		if i < 0 {
			return
		}

		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
