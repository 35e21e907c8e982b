package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pokerengine/pkg/deck"
)

func evaluate(t *testing.T, e Evaluator, hole, board string) *Hand {
	t.Helper()
	hand, err := e.Evaluate(deck.MustCardsFromString(hole), deck.MustCardsFromString(board))
	require.NoError(t, err)
	require.NotNil(t, hand)
	return hand
}

func TestStandardHigh_Evaluate(t *testing.T) {
	a := assert.New(t)
	e := StandardHigh{}

	royal := evaluate(t, e, "AsKs", "QsJsTs2c3d")
	quads := evaluate(t, e, "9c9d", "9h9s2c3d4h")
	pair := evaluate(t, e, "9c9d", "Ah7s2c3d5h")
	otherPair := evaluate(t, e, "9h9s", "Ah7s2c3d5h")

	a.Equal(1, royal.Compare(quads))
	a.Equal(1, quads.Compare(pair))
	a.Equal(-1, pair.Compare(royal))
	a.Equal(0, pair.Compare(otherPair))
	a.Len(royal.Cards, 5)
	a.NotEmpty(royal.String())
}

func TestStandardHigh_insufficientCards(t *testing.T) {
	hand, err := StandardHigh{}.Evaluate(deck.MustCardsFromString("AsKs"), deck.MustCardsFromString("2c3d"))
	assert.Nil(t, hand)
	assert.Equal(t, ErrInsufficientCards, err)
}

func TestOmaha_Evaluate(t *testing.T) {
	a := assert.New(t)

	// four hearts in the hole cannot make a flush with two hearts on board
	standard := evaluate(t, StandardHigh{}, "2h3h8h9h", "ThJhQcKd4s")
	omaha := evaluate(t, Omaha{}, "2h3h8h9h", "ThJhQcKd4s")
	a.Equal(1, standard.Compare(omaha))

	straight := evaluate(t, StandardHigh{}, "8c9d", "TsJcQh")
	a.Equal(0, omaha.Compare(straight))

	hand, err := Omaha{}.Evaluate(deck.MustCardsFromString("AsKsQsJs"), deck.MustCardsFromString("2c3d"))
	a.Nil(hand)
	a.Equal(ErrInsufficientCards, err)
}

func TestHand_Compare(t *testing.T) {
	a := assert.New(t)

	var none *Hand
	some := &Hand{Strength: 1}
	a.Equal(0, none.Compare(nil))
	a.Equal(-1, none.Compare(some))
	a.Equal(1, some.Compare(none))
	a.Equal("", none.String())
}

func TestByName(t *testing.T) {
	a := assert.New(t)

	e, ok := ByName("standard")
	a.True(ok)
	a.Equal(StandardHigh{}, e)

	e, ok = ByName("omaha")
	a.True(ok)
	a.Equal(Omaha{}, e)

	_, ok = ByName("badugi")
	a.False(ok)
}

func Test_forEachCombination(t *testing.T) {
	count := 0
	forEachCombination(7, 5, func(idx []int) bool {
		count++
		return true
	})
	assert.Equal(t, 21, count)

	count = 0
	forEachCombination(3, 5, func(idx []int) bool {
		count++
		return true
	})
	assert.Equal(t, 0, count)
}
