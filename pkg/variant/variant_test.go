package variant

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pokerengine/internal/rng"
	"pokerengine/pkg/engine"
	"pokerengine/pkg/evaluator"
)

func TestBuiltins(t *testing.T) {
	a := assert.New(t)

	a.Subset(Names(), []string{
		"five-card-draw",
		"fixed-limit-texas-holdem",
		"no-limit-texas-holdem",
		"pot-limit-omaha",
	})

	for _, name := range Names() {
		def, err := Get(name)
		a.NoError(err)
		a.NoError(def.Validate(), name)
	}

	_, err := Get("razz")
	a.EqualError(err, "no variant with name: razz")
}

func TestDefinition_Validate(t *testing.T) {
	a := assert.New(t)

	def := Definition{
		Limit:     "spread-limit",
		Evaluator: "badugi",
		Ante:      -1,
		Blinds:    []int{2, -1},
		Stages: []StageDefinition{
			{Kind: KindHole},
			{Kind: KindBetting},
			{Kind: "river"},
		},
	}

	err := def.Validate()
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	a.Len(merr.Errors, 9)
	a.Contains(err.Error(), "name is required")
	a.Contains(err.Error(), "invalid limit: spread-limit")
	a.Contains(err.Error(), `stage 2: unknown kind: "river"`)
}

func TestDefinition_Options(t *testing.T) {
	a := assert.New(t)

	def, err := Get("fixed-limit-texas-holdem")
	require.NoError(t, err)

	opts, err := def.Options()
	require.NoError(t, err)

	a.Equal([]int{1, 2}, opts.Blinds)
	a.Equal(evaluator.StandardHigh{}, opts.Evaluator)
	a.Len(opts.Stages, 9)
	a.Equal(engine.HoleCardDealing(2, false), opts.Stages[0])
	a.Equal(engine.Betting(engine.FixedLimit, 2), opts.Stages[1])
	a.Equal(engine.Betting(engine.FixedLimit, 4), opts.Stages[7])
	a.Equal(engine.DefaultFixedLimitRaises, opts.Stages[7].MaxRaises)

	def.MaxRaises = 3
	opts, err = def.Options()
	require.NoError(t, err)
	a.Equal(3, opts.Stages[1].MaxRaises)

	plo, _ := Get("pot-limit-omaha")
	opts, err = plo.Options()
	require.NoError(t, err)
	a.Equal(evaluator.Omaha{}, opts.Evaluator)
	a.Equal(4, opts.Stages[0].Count)
}

func TestDefinition_NewGame(t *testing.T) {
	a := assert.New(t)

	def, _ := Get("no-limit-texas-holdem")
	g1, err := def.NewGame(logrus.StandardLogger(), []int{100, 100, 100}, rng.NewSeeded(42))
	require.NoError(t, err)
	g2, err := def.NewGame(logrus.StandardLogger(), []int{100, 100, 100}, rng.NewSeeded(42))
	require.NoError(t, err)

	a.Equal(g1.Deck().Cards, g2.Deck().Cards)
	a.Equal(52, g1.Deck().CardsLeft())
	a.Equal(engine.Nature, g1.Actor())

	_, err = def.NewGame(logrus.StandardLogger(), []int{100}, rng.NewSeeded(42))
	a.True(errors.Is(err, engine.ErrInsufficientPlayers))

	_, err = Definition{Name: "broken"}.NewGame(logrus.StandardLogger(), []int{100, 100}, rng.NewSeeded(42))
	a.Error(err)
}

func TestParse(t *testing.T) {
	a := assert.New(t)

	def, err := Parse([]byte(`
name: seven-card-stud
limit: fixed-limit
evaluator: standard
ante: 1
minBet: 2
stages:
  - kind: hole
    count: 2
  - kind: hole
    count: 1
    exposed: true
  - kind: betting
  - kind: hole
    count: 1
    exposed: true
  - kind: betting
    minBet: 4
  - kind: showdown
`))
	require.NoError(t, err)
	a.Equal("seven-card-stud", def.Name)
	a.True(def.Stages[1].Exposed)
	a.Equal(4, def.Stages[4].MinBet)
	a.Equal("seven-card-stud (ante ${1})", def.Title())

	_, err = Parse([]byte("name: x\nunknown: 1\n"))
	a.Error(err)

	_, err = Parse([]byte("name: x\nlimit: no-limit\n"))
	a.EqualError(err, "1 error occurred:\n\t* at least one stage is required\n\n")
}

func TestRegister(t *testing.T) {
	a := assert.New(t)

	a.Error(Register(Definition{Name: "invalid"}))
	_, err := Get("invalid")
	a.Error(err)

	def, _ := Get("five-card-draw")
	def.Name = "five-card-draw-big"
	def.Ante = 5
	a.NoError(Register(def))

	got, err := Get("five-card-draw-big")
	a.NoError(err)
	a.Equal(5, got.Ante)
	a.Equal("five-card-draw-big (ante ${5}/${1}/${2})", got.Title())
}
