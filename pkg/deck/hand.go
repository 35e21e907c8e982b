package deck

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	return h.IndexOf(card) >= 0
}

// IndexOf returns the position of the card, or -1 if it is not in the hand
func (h Hand) IndexOf(card *Card) int {
	for i, c := range h {
		if c.Equal(card) {
			return i
		}
	}

	return -1
}

// HasDuplicates returns true if any card appears more than once
func (h Hand) HasDuplicates() bool {
	for i := range h {
		for j := i + 1; j < len(h); j++ {
			if h[i].Equal(h[j]) {
				return true
			}
		}
	}

	return false
}

// Discard will discard the specified card and return true if it was found
func (h *Hand) Discard(card *Card) bool {
	i := h.IndexOf(card)
	if i < 0 {
		return false
	}

	*h = append((*h)[:i:i], (*h)[i+1:]...)
	return true
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
