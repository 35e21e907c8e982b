// Package variant describes games as parameter tables and builds engine hands from them.
package variant

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"pokerengine/internal/rng"
	"pokerengine/pkg/deck"
	"pokerengine/pkg/engine"
	"pokerengine/pkg/evaluator"
)

// stage kinds as written in definitions
const (
	KindHole     = "hole"
	KindBoard    = "board"
	KindBetting  = "betting"
	KindDraw     = "draw"
	KindShowdown = "showdown"
)

// StageDefinition is one stage of a variant
type StageDefinition struct {
	Kind    string `yaml:"kind" json:"kind"`
	Count   int    `yaml:"count,omitempty" json:"count,omitempty"`
	Exposed bool   `yaml:"exposed,omitempty" json:"exposed,omitempty"`
	// MinBet overrides the variant's minimum bet for a betting stage
	MinBet int `yaml:"minBet,omitempty" json:"minBet,omitempty"`
}

// Definition is a game variant
type Definition struct {
	Name      string `yaml:"name" json:"name"`
	Limit     string `yaml:"limit" json:"limit"`
	Evaluator string `yaml:"evaluator" json:"evaluator"`
	Ante      int    `yaml:"ante" json:"ante"`
	Blinds    []int  `yaml:"blinds" json:"blinds"`
	MinBet    int    `yaml:"minBet" json:"minBet"`
	// MaxRaises caps bets and raises per betting stage, 0 keeps the limit's default
	MaxRaises int               `yaml:"maxRaises,omitempty" json:"maxRaises,omitempty"`
	Stages    []StageDefinition `yaml:"stages" json:"stages"`
}

// Parse decodes a YAML definition and validates it
func Parse(data []byte) (Definition, error) {
	var def Definition
	if err := yaml.UnmarshalStrict(data, &def); err != nil {
		return Definition{}, err
	}

	if err := def.Validate(); err != nil {
		return Definition{}, err
	}

	return def, nil
}

// Validate returns every problem with the definition
func (d Definition) Validate() error {
	var result *multierror.Error

	if d.Name == "" {
		result = multierror.Append(result, fmt.Errorf("name is required"))
	}

	if _, err := engine.LimitFromString(d.Limit); err != nil {
		result = multierror.Append(result, err)
	}

	if _, ok := evaluator.ByName(d.Evaluator); !ok {
		result = multierror.Append(result, fmt.Errorf("unknown evaluator: %s", d.Evaluator))
	}

	if d.Ante < 0 {
		result = multierror.Append(result, fmt.Errorf("ante must be >= 0"))
	}

	if !sort.IntsAreSorted(d.Blinds) {
		result = multierror.Append(result, fmt.Errorf("blinds must be in ascending order"))
	}

	for _, blind := range d.Blinds {
		if blind < 0 {
			result = multierror.Append(result, fmt.Errorf("blinds must be >= 0"))
			break
		}
	}

	if d.MaxRaises < 0 {
		result = multierror.Append(result, fmt.Errorf("maxRaises must be >= 0"))
	}

	if len(d.Stages) == 0 {
		result = multierror.Append(result, fmt.Errorf("at least one stage is required"))
	}

	for i, s := range d.Stages {
		switch s.Kind {
		case KindHole, KindBoard:
			if s.Count <= 0 {
				result = multierror.Append(result, fmt.Errorf("stage %d: count must be > 0", i))
			}
		case KindBetting:
			if s.MinBet <= 0 && d.MinBet <= 0 {
				result = multierror.Append(result, fmt.Errorf("stage %d: minBet must be > 0", i))
			}
		case KindDraw, KindShowdown:
		default:
			result = multierror.Append(result, fmt.Errorf("stage %d: unknown kind: %q", i, s.Kind))
		}
	}

	return result.ErrorOrNil()
}

// Options returns the engine options for a hand of the variant
func (d Definition) Options() (engine.Options, error) {
	if err := d.Validate(); err != nil {
		return engine.Options{}, err
	}

	limit, _ := engine.LimitFromString(d.Limit)
	eval, _ := evaluator.ByName(d.Evaluator)

	stages := make([]engine.Stage, len(d.Stages))
	for i, s := range d.Stages {
		switch s.Kind {
		case KindHole:
			stages[i] = engine.HoleCardDealing(s.Count, s.Exposed)
		case KindBoard:
			stages[i] = engine.BoardCardDealing(s.Count)
		case KindBetting:
			minBet := s.MinBet
			if minBet <= 0 {
				minBet = d.MinBet
			}

			stages[i] = engine.Betting(limit, minBet)
			if d.MaxRaises > 0 {
				stages[i].MaxRaises = d.MaxRaises
			}
		case KindDraw:
			stages[i] = engine.DiscardDraw()
		case KindShowdown:
			stages[i] = engine.Showdown()
		}
	}

	blinds := make([]int, len(d.Blinds))
	copy(blinds, d.Blinds)

	return engine.Options{
		Ante:      d.Ante,
		Blinds:    blinds,
		Stages:    stages,
		Evaluator: eval,
	}, nil
}

// NewGame deals a new hand of the variant with a deck shuffled by gen
func (d Definition) NewGame(logger logrus.FieldLogger, stacks []int, gen rng.Generator) (*engine.Game, error) {
	opts, err := d.Options()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}

	opts.Deck = deck.New()
	opts.Deck.Shuffle(gen)
	opts.Rand = gen

	return engine.NewGame(logger.WithField("variant", d.Name), opts, stacks)
}

// Title returns the name with the stakes, i.e., "five-card-draw (ante ${1}/${1}/${2})"
func (d Definition) Title() string {
	var sb strings.Builder
	sb.WriteString(d.Name)

	stakes := make([]string, 0, len(d.Blinds)+1)
	if d.Ante > 0 {
		stakes = append(stakes, fmt.Sprintf("ante ${%d}", d.Ante))
	}

	for _, blind := range d.Blinds {
		stakes = append(stakes, fmt.Sprintf("${%d}", blind))
	}

	if len(stakes) > 0 {
		sb.WriteString(" (")
		sb.WriteString(strings.Join(stakes, "/"))
		sb.WriteString(")")
	}

	return sb.String()
}
