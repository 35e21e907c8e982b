// Package engine drives a single hand of a betting card game from deal to payout.
//
// A Game is built from a list of stages (dealing, betting, discard/draw and
// showdown). Callers submit one Action at a time for the current actor; every
// action is verified before anything is mutated, and after it is applied the
// game walks forward through the stages until one needs input again. When the
// stages are exhausted the pot is split into side pots and distributed.
//
// A Game is not safe for concurrent use.
package engine

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"pokerengine/internal/rng"
	"pokerengine/pkg/deck"
	"pokerengine/pkg/evaluator"
)

// Options configures a hand
type Options struct {
	// HandID identifies the hand in logs and histories, a random one is used if empty
	HandID string
	Ante   int
	// Blinds in ascending order, posted from the first seat (reversed when heads-up)
	Blinds    []int
	Stages    []Stage
	Evaluator evaluator.Evaluator
	// Deck is the card source, a shuffled standard deck is used if nil
	Deck *deck.Deck
	// Rand shuffles the default deck and the discards when a draw runs the deck dry
	Rand rng.Generator
}

// Game is a single hand
type Game struct {
	id        string
	logger    logrus.FieldLogger
	ante      int
	blinds    []int
	stages    []Stage
	targets   []int
	evaluator evaluator.Evaluator
	deck      *deck.Deck
	rng       rng.Generator

	stageIndex int
	players    []*Player
	actor      Actor
	board      deck.Hand
	discards   deck.Hand

	// aggressor closes the betting round when action returns to them and opens the showdown
	aggressor int
	// requirement is the commitment ceiling counted into the pot
	requirement int
	// maxDelta is the current minimum raise increment
	maxDelta   int
	raiseCount int
	// queue holds the seats that still owe an action in the current stage
	queue []int

	history []Action

	// terminal is set once the pot has been distributed
	terminal bool
}

// NewGame returns a new hand with the blinds and antes posted
// and the first stage that needs input opened
func NewGame(logger logrus.FieldLogger, opts Options, stacks []int) (*Game, error) {
	if err := validateOptions(opts, stacks); err != nil {
		return nil, err
	}

	id := opts.HandID
	if id == "" {
		id = uuid.New().String()
	}

	gen := opts.Rand
	if gen == nil {
		gen = rng.Crypto{}
	}

	d := opts.Deck
	if d == nil {
		d = deck.New()
		d.Shuffle(gen)
	}

	stages := make([]Stage, len(opts.Stages))
	copy(stages, opts.Stages)

	g := &Game{
		id:          id,
		logger:      logger.WithField("hand", id),
		ante:        opts.Ante,
		blinds:      seatBlinds(opts.Blinds, len(stacks)),
		stages:      stages,
		targets:     runningTargets(stages),
		evaluator:   opts.Evaluator,
		deck:        d,
		rng:         gen,
		players:     make([]*Player, len(stacks)),
		actor:       NoActor,
		board:       make(deck.Hand, 0),
		discards:    make(deck.Hand, 0),
		aggressor:   -1,
		requirement: opts.Ante,
		history:     make([]Action, 0),
	}

	for i, stack := range stacks {
		p := newPlayer(i, stack)
		p.commit(min(g.ante+g.blinds[i], stack))
		g.players[i] = p
	}

	g.logger.WithFields(logrus.Fields{
		"players": len(stacks),
		"ante":    g.ante,
		"blinds":  g.blinds,
	}).Debug("new hand")

	g.openStage()
	g.advance()
	return g, nil
}

func validateOptions(opts Options, stacks []int) error {
	if len(stacks) < 2 {
		return PlayerCountError(len(stacks))
	}

	if len(opts.Blinds) > len(stacks) {
		return fmt.Errorf("%w: %d blinds for %d players", ErrInvalidBlindConfig, len(opts.Blinds), len(stacks))
	}

	if !sort.IntsAreSorted(opts.Blinds) {
		return fmt.Errorf("%w: blinds must be in ascending order", ErrInvalidBlindConfig)
	}

	for _, blind := range opts.Blinds {
		if blind < 0 {
			return fmt.Errorf("%w: blinds must be >= 0", ErrInvalidBlindConfig)
		}
	}

	if opts.Ante < 0 {
		return fmt.Errorf("%w: ante must be >= 0", ErrInvalidConfig)
	}

	for i, stack := range stacks {
		if stack < 0 {
			return fmt.Errorf("%w: stack of seat %d must be >= 0", ErrInvalidConfig, i)
		}
	}

	if len(opts.Stages) == 0 {
		return fmt.Errorf("%w: at least one stage is required", ErrInvalidConfig)
	}

	for i, s := range opts.Stages {
		switch s.Kind {
		case StageHoleDealing, StageBoardDealing:
			if s.Count <= 0 {
				return fmt.Errorf("%w: stage %d must deal at least one card", ErrInvalidConfig, i)
			}
		case StageBetting:
			if s.InitialMaxDelta <= 0 {
				return fmt.Errorf("%w: stage %d needs a positive minimum raise", ErrInvalidConfig, i)
			}
		}
	}

	if opts.Evaluator == nil {
		return fmt.Errorf("%w: an evaluator is required", ErrInvalidConfig)
	}

	return nil
}

// seatBlinds maps blinds onto seats
// Heads-up the order is reversed so the button posts the small blind.
func seatBlinds(blinds []int, players int) []int {
	seated := make([]int, players)
	copy(seated, blinds)

	if players == 2 {
		seated[0], seated[1] = seated[1], seated[0]
	}

	return seated
}

// ID returns the hand ID
func (g *Game) ID() string {
	return g.id
}

// Actor returns who the game is waiting on, NoActor once the hand is over
func (g *Game) Actor() Actor {
	return g.actor
}

// IsTerminal returns true once the pot has been distributed
func (g *Game) IsTerminal() bool {
	return g.terminal
}

// Stage returns the current stage, false once the hand is over
func (g *Game) Stage() (Stage, bool) {
	s := g.currentStage()
	if s == nil || g.IsTerminal() {
		return Stage{}, false
	}

	return *s, true
}

// StageIndex returns the index of the current stage
func (g *Game) StageIndex() int {
	return g.stageIndex
}

// Stages returns the hand's timeline
func (g *Game) Stages() []Stage {
	stages := make([]Stage, len(g.stages))
	copy(stages, g.stages)
	return stages
}

// Ante returns the ante
func (g *Game) Ante() int {
	return g.ante
}

// Blinds returns the blinds by seat
func (g *Game) Blinds() []int {
	blinds := make([]int, len(g.blinds))
	copy(blinds, g.blinds)
	return blinds
}

// Players returns the players in seat order
func (g *Game) Players() []*Player {
	players := make([]*Player, len(g.players))
	copy(players, g.players)
	return players
}

// Player returns the player in a seat
func (g *Game) Player(seat int) *Player {
	return g.players[seat]
}

// BoardCards returns the community cards
func (g *Game) BoardCards() deck.Hand {
	return g.board.Clone()
}

// Discards returns the thrown cards that have not been shuffled back into the deck
func (g *Game) Discards() deck.Hand {
	return g.discards.Clone()
}

// Deck returns the undealt cards
func (g *Game) Deck() *deck.Deck {
	return g.deck
}

// History returns every applied action in order
func (g *Game) History() []Action {
	history := make([]Action, len(g.history))
	copy(history, g.history)
	return history
}

// Aggressor returns the seat of the current aggressor, or -1 if there is none
func (g *Game) Aggressor() int {
	return g.aggressor
}

// MaxDelta returns the current minimum raise increment
func (g *Game) MaxDelta() int {
	return g.maxDelta
}

// Requirement returns the commitment ceiling that is counted into the pot
func (g *Game) Requirement() int {
	return g.requirement
}

// Pot returns the amount collected into the pot, excluding bets in front of players
func (g *Game) Pot() int {
	if g.IsTerminal() {
		return 0
	}

	pot := 0
	for _, p := range g.players {
		pot += min(p.commitment, g.requirement)
	}

	return pot
}

// Bet returns the amount a player has in front of them in the current betting round
func (g *Game) Bet(seat int) int {
	if g.IsTerminal() {
		return 0
	}

	return max(g.players[seat].commitment-g.requirement, 0)
}

// Stack returns what a player has behind
func (g *Game) Stack(seat int) int {
	p := g.players[seat]
	return p.startingStack - p.commitment + p.revenue
}

// Hand returns the player's best hand, or nil if they do not have enough cards
func (g *Game) Hand(seat int) *evaluator.Hand {
	hand, err := g.evaluator.Evaluate(g.players[seat].holeCards, g.board)
	if err != nil {
		return nil
	}

	return hand
}

// EffectiveStack returns the most the player can ever contest:
// the second-largest starting stack among live players, capped at their own
func (g *Game) EffectiveStack(seat int) int {
	stacks := make([]int, 0, len(g.players))
	for _, p := range g.players {
		if !p.Mucked() {
			stacks = append(stacks, p.startingStack)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(stacks)))

	own := g.players[seat].startingStack
	switch len(stacks) {
	case 0:
		return own
	case 1:
		return min(stacks[0], own)
	}

	return min(stacks[1], own)
}

// IsRelevant returns true if the player can still take part in betting
func (g *Game) IsRelevant(seat int) bool {
	p := g.players[seat]
	return !p.Mucked() && p.commitment < g.EffectiveStack(seat)
}

// Payouts returns each seat's net result, only meaningful once the hand is over
func (g *Game) Payouts() []int {
	payouts := make([]int, len(g.players))
	for i, p := range g.players {
		payouts[i] = p.revenue - p.commitment
	}

	return payouts
}

func (g *Game) isLive(seat int) bool {
	return !g.players[seat].Mucked()
}

func (g *Game) nonMuckedCount() int {
	count := 0
	for _, p := range g.players {
		if !p.Mucked() {
			count++
		}
	}

	return count
}

func (g *Game) relevantCount() int {
	count := 0
	for i := range g.players {
		if g.IsRelevant(i) {
			count++
		}
	}

	return count
}

func (g *Game) maxBet() int {
	maxBet := 0
	for i := range g.players {
		maxBet = max(maxBet, g.Bet(i))
	}

	return maxBet
}

func (g *Game) totalBets() int {
	total := 0
	for i := range g.players {
		total += g.Bet(i)
	}

	return total
}
