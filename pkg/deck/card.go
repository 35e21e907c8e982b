package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is an error when a card token cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits lists every suit in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Ten   = 10
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

const rankChars = "23456789TJQKA"

// String returns the card with a suit symbol, i.e., A♠
func (c *Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%c%s", rankChars[c.Rank-2], suit)
}

// Token returns the two-character form of the card, i.e., As or Td
func (c *Card) Token() string {
	return fmt.Sprintf("%c%c", rankChars[c.Rank-2], c.Suit[0])
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// CardFromString parses a two-character token such as "As", "Td" or "2c"
func CardFromString(s string) (*Card, error) {
	if len(s) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank := strings.IndexByte(rankChars, strings.ToUpper(s[:1])[0])
	if rank < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var suit Suit
	switch strings.ToLower(s[1:]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	return &Card{
		Rank: rank + 2,
		Suit: suit,
	}, nil
}

// CardsFromString parses a concatenation of two-character tokens, i.e., "AcKd7h"
// Whitespace between tokens is ignored.
func CardsFromString(s string) (Hand, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: %q has an odd length", ErrInvalidCard, s)
	}

	cards := make(Hand, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := CardFromString(s[i : i+2])
		if err != nil {
			return nil, err
		}

		cards = append(cards, card)
	}

	return cards, nil
}

// MustCardsFromString is like CardsFromString but panics on bad input
// It is intended for tests and static tables.
func MustCardsFromString(s string) Hand {
	cards, err := CardsFromString(s)
	if err != nil {
		panic(err)
	}

	return cards
}

// CardsToString converts cards into the concatenated token form, i.e., AcKd
func CardsToString(cards []*Card) string {
	var sb strings.Builder
	for _, card := range cards {
		sb.WriteString(card.Token())
	}

	return sb.String()
}
