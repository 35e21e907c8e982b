// Package notation reads and writes the scripted action language used to replay hands.
//
// One instruction per line:
//
//	f                    fold
//	cc                   check or call
//	br <amount>          bet or raise to amount
//	s [0|1]              show or muck, 1 forces a show
//	dp <seat> [<cards>]  deal hole cards to seat
//	db [<cards>]         deal board cards
//	sd [<discards> [<draws>]]  discard and draw, no cards stands pat
//
// Cards are concatenated two-character tokens such as AsKd. Omitted cards are
// drawn from the deck. Blank lines and lines starting with # are ignored.
package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pokerengine/pkg/deck"
	"pokerengine/pkg/engine"
)

// ErrInvalidInstruction is returned when a line cannot be parsed
var ErrInvalidInstruction = errors.New("invalid instruction")

// Instruction is a parsed line
// Player instructions do not name their actor, the game's current actor is used.
type Instruction struct {
	Kind   engine.ActionKind
	Amount int
	Target int
	Cards  deck.Hand
	Draws  deck.Hand
	Force  bool
}

// Action returns the engine action for the instruction performed by actor
func (i Instruction) Action(actor engine.Actor) engine.Action {
	a := engine.Action{
		Kind:   i.Kind,
		Actor:  actor,
		Amount: i.Amount,
		Target: i.Target,
		Cards:  i.Cards,
		Draws:  i.Draws,
		Force:  i.Force,
	}

	switch i.Kind {
	case engine.ActionDealHole, engine.ActionDealBoard:
		a.Actor = engine.Nature
	}

	return a
}

func (i Instruction) String() string {
	return Format(i.Action(engine.NoActor))
}

// Parse parses a single instruction
func Parse(line string) (Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Instruction{}, fmt.Errorf("%w: empty line", ErrInvalidInstruction)
	}

	// the amount may be attached, i.e., br35000
	if strings.HasPrefix(fields[0], "br") && len(fields[0]) > 2 {
		fields = append([]string{"br", fields[0][2:]}, fields[1:]...)
	}

	op, args := fields[0], fields[1:]
	switch op {
	case "f":
		if len(args) != 0 {
			return invalid(line)
		}

		return Instruction{Kind: engine.ActionFold}, nil
	case "cc":
		if len(args) != 0 {
			return invalid(line)
		}

		return Instruction{Kind: engine.ActionCheckCall}, nil
	case "br":
		if len(args) != 1 {
			return invalid(line)
		}

		amount, err := strconv.Atoi(args[0])
		if err != nil || amount <= 0 {
			return invalid(line)
		}

		return Instruction{Kind: engine.ActionBetRaise, Amount: amount}, nil
	case "s":
		ins := Instruction{Kind: engine.ActionShowdown}
		switch {
		case len(args) == 0:
		case len(args) == 1 && args[0] == "0":
		case len(args) == 1 && args[0] == "1":
			ins.Force = true
		default:
			return invalid(line)
		}

		return ins, nil
	case "dp":
		if len(args) < 1 || len(args) > 2 {
			return invalid(line)
		}

		seat, err := strconv.Atoi(args[0])
		if err != nil || seat < 0 {
			return invalid(line)
		}

		ins := Instruction{Kind: engine.ActionDealHole, Target: seat}
		if len(args) == 2 {
			if ins.Cards, err = parseCards(line, args[1]); err != nil {
				return Instruction{}, err
			}
		}

		return ins, nil
	case "db":
		if len(args) > 1 {
			return invalid(line)
		}

		ins := Instruction{Kind: engine.ActionDealBoard}
		if len(args) == 1 {
			cards, err := parseCards(line, args[0])
			if err != nil {
				return Instruction{}, err
			}

			ins.Cards = cards
		}

		return ins, nil
	case "sd":
		if len(args) > 2 {
			return invalid(line)
		}

		ins := Instruction{Kind: engine.ActionDiscardDraw, Cards: deck.Hand{}}
		var err error
		if len(args) >= 1 {
			if ins.Cards, err = parseCards(line, args[0]); err != nil {
				return Instruction{}, err
			}
		}

		if len(args) == 2 {
			if ins.Draws, err = parseCards(line, args[1]); err != nil {
				return Instruction{}, err
			}
		}

		return ins, nil
	}

	return invalid(line)
}

// ParseAll parses a multi-line script
func ParseAll(script string) ([]Instruction, error) {
	instructions := make([]Instruction, 0)
	for n, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ins, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}

		instructions = append(instructions, ins)
	}

	return instructions, nil
}

// Format returns the instruction form of an action
func Format(a engine.Action) string {
	switch a.Kind {
	case engine.ActionFold:
		return "f"
	case engine.ActionCheckCall:
		return "cc"
	case engine.ActionBetRaise:
		return fmt.Sprintf("br %d", a.Amount)
	case engine.ActionShowdown:
		if a.Force {
			return "s 1"
		}

		return "s"
	case engine.ActionDealHole:
		return strings.TrimSpace(fmt.Sprintf("dp %d %s", a.Target, a.Cards))
	case engine.ActionDealBoard:
		return strings.TrimSpace("db " + a.Cards.String())
	case engine.ActionDiscardDraw:
		return strings.TrimSpace(fmt.Sprintf("sd %s %s", a.Cards, a.Draws))
	}

	return ""
}

// FormatAll formats actions, one per line
func FormatAll(actions []engine.Action) string {
	lines := make([]string, len(actions))
	for i, a := range actions {
		lines[i] = Format(a)
	}

	return strings.Join(lines, "\n")
}

// Replay applies the instructions in order, stopping at the first rejected one
func Replay(g *engine.Game, instructions []Instruction) error {
	for n, ins := range instructions {
		if err := g.Act(ins.Action(g.Actor())); err != nil {
			return fmt.Errorf("instruction %d (%s): %w", n+1, ins, err)
		}
	}

	return nil
}

func parseCards(line, s string) (deck.Hand, error) {
	cards, err := deck.CardsFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidInstruction, line, err)
	}

	return cards, nil
}

func invalid(line string) (Instruction, error) {
	return Instruction{}, fmt.Errorf("%w: %q", ErrInvalidInstruction, line)
}
