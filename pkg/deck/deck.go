package deck

import (
	"errors"
	"fmt"

	"pokerengine/internal/rng"
)

// ErrEndOfDeck is an error when DrawN() is attempted and there are not enough cards
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrCardNotInDeck is an error when a specific card is requested that was already dealt
var ErrCardNotInDeck = errors.New("card is not in the deck")

// Deck represents a playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the remaining cards using the provided generator
func (d *Deck) Shuffle(gen rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// ShuffleDiscards shuffles the discards and places them under the remaining cards
func (d *Deck) ShuffleDiscards(discards Hand, gen rng.Generator) {
	cards := discards.Clone()
	for j := len(cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}

	d.Cards = append(d.Cards, cards...)
}

// DrawN draws n cards, or none if the deck cannot cover them
func (d *Deck) DrawN(n int) (Hand, error) {
	if !d.CanDraw(n) {
		return nil, ErrEndOfDeck
	}

	cards := make(Hand, n)
	copy(cards, d.Cards[:n])
	d.Cards = d.Cards[n:]

	return cards, nil
}

// Contains returns true if the card has not been dealt yet
func (d *Deck) Contains(card *Card) bool {
	return Hand(d.Cards).HasCard(card)
}

// Remove takes a specific card out of the deck
func (d *Deck) Remove(card *Card) error {
	for i, c := range d.Cards {
		if c.Equal(card) {
			d.Cards = append(d.Cards[:i:i], d.Cards[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrCardNotInDeck, card.Token())
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
