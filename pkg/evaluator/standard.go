package evaluator

import (
	"pokerengine/pkg/deck"
)

// StandardHigh ranks the best five cards out of the hole and board cards combined
type StandardHigh struct{}

// Evaluate returns the best high hand
func (StandardHigh) Evaluate(hole, board deck.Hand) (*Hand, error) {
	cards := make(deck.Hand, 0, len(hole)+len(board))
	cards = append(cards, hole...)
	cards = append(cards, board...)

	return bestFive(cards)
}

// Omaha ranks hands that must use exactly two hole cards and three board cards
type Omaha struct{}

// Evaluate returns the best high hand using exactly two hole cards
func (Omaha) Evaluate(hole, board deck.Hand) (*Hand, error) {
	if len(hole) < 2 || len(board) < 3 {
		return nil, ErrInsufficientCards
	}

	var best *Hand
	var err error
	forEachCombination(len(hole), 2, func(h []int) bool {
		forEachCombination(len(board), 3, func(b []int) bool {
			cards := append(pick(hole, h), pick(board, b)...)

			var hand *Hand
			hand, err = bestFive(cards)
			if err != nil {
				return false
			}

			if best.Compare(hand) < 0 {
				best = hand
			}

			return true
		})

		return err == nil
	})

	if err != nil {
		return nil, err
	}

	return best, nil
}

// ByName returns the evaluator registered under name
func ByName(name string) (Evaluator, bool) {
	switch name {
	case "standard", "":
		return StandardHigh{}, true
	case "omaha":
		return Omaha{}, true
	}

	return nil, false
}
