package variant

import (
	"fmt"
	"sort"
	"sync"
)

var (
	mu          sync.RWMutex
	definitions = map[string]Definition{}
)

func init() {
	for _, def := range builtins() {
		definitions[def.Name] = def
	}
}

func builtins() []Definition {
	holdem := func(name, limit string) Definition {
		return Definition{
			Name:      name,
			Limit:     limit,
			Evaluator: "standard",
			Blinds:    []int{1, 2},
			MinBet:    2,
			Stages: []StageDefinition{
				{Kind: KindHole, Count: 2},
				{Kind: KindBetting},
				{Kind: KindBoard, Count: 3},
				{Kind: KindBetting},
				{Kind: KindBoard, Count: 1},
				{Kind: KindBetting},
				{Kind: KindBoard, Count: 1},
				{Kind: KindBetting},
				{Kind: KindShowdown},
			},
		}
	}

	nlhe := holdem("no-limit-texas-holdem", "no-limit")

	plo := holdem("pot-limit-omaha", "pot-limit")
	plo.Evaluator = "omaha"
	plo.Stages[0].Count = 4

	// big bets on the turn and river
	flhe := holdem("fixed-limit-texas-holdem", "fixed-limit")
	flhe.Stages[5].MinBet = 4
	flhe.Stages[7].MinBet = 4

	draw := Definition{
		Name:      "five-card-draw",
		Limit:     "no-limit",
		Evaluator: "standard",
		Ante:      1,
		Blinds:    []int{1, 2},
		MinBet:    2,
		Stages: []StageDefinition{
			{Kind: KindHole, Count: 5},
			{Kind: KindBetting},
			{Kind: KindDraw},
			{Kind: KindBetting},
			{Kind: KindShowdown},
		},
	}

	return []Definition{nlhe, plo, flhe, draw}
}

// Register adds or replaces a definition after validating it
func Register(def Definition) error {
	if err := def.Validate(); err != nil {
		return fmt.Errorf("%s: %w", def.Name, err)
	}

	mu.Lock()
	defer mu.Unlock()

	definitions[def.Name] = def
	return nil
}

// Get returns a definition by the given name
func Get(name string) (Definition, error) {
	mu.RLock()
	defer mu.RUnlock()

	def, ok := definitions[name]
	if !ok {
		return Definition{}, fmt.Errorf("no variant with name: %s", name)
	}

	return def, nil
}

// Names returns the registered variant names in order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
