package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"pokerengine/internal/config"
	"pokerengine/internal/rng"
	"pokerengine/pkg/engine"
	"pokerengine/pkg/notation"
	"pokerengine/pkg/variant"
)

// handFile is a scripted hand
type handFile struct {
	// Variant is a registered variant name, the configured default is used if empty
	Variant string `yaml:"variant"`
	// Definition describes a variant inline instead of by name
	Definition *variant.Definition `yaml:"definition"`
	HandID     string              `yaml:"handId"`
	Stacks     []int               `yaml:"stacks"`
	Players    int                 `yaml:"players"`
	Seed       int64               `yaml:"seed"`
	Actions    []string            `yaml:"actions"`
}

func loadHandFile(path string) (*handFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var hf handFile
	if err := yaml.UnmarshalStrict(data, &hf); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &hf, nil
}

func (h *handFile) definition(cfg config.Config) (variant.Definition, error) {
	if h.Definition != nil {
		return *h.Definition, h.Definition.Validate()
	}

	name := h.Variant
	if name == "" {
		name = cfg.Game.Variant
	}

	return variant.Get(name)
}

// stacks returns the starting stacks, filling in the configured stack for each player if none are listed
func (h *handFile) stacks(cfg config.Config) ([]int, error) {
	if len(h.Stacks) > 0 {
		return h.Stacks, nil
	}

	if h.Players == 0 {
		return nil, errors.New("the hand needs stacks or a number of players")
	}

	stacks := make([]int, h.Players)
	for i := range stacks {
		stacks[i] = cfg.Game.StartingStack
	}

	return stacks, nil
}

func (h *handFile) seed(cfg config.Config) int64 {
	if h.Seed != 0 {
		return h.Seed
	}

	return cfg.Game.Seed
}

// play deals the hand and replays its actions
// A rejected action stops the replay and is returned along with the game so far.
func (h *handFile) play(logger logrus.FieldLogger, cfg config.Config) (variant.Definition, *engine.Game, error) {
	def, err := h.definition(cfg)
	if err != nil {
		return def, nil, err
	}

	stacks, err := h.stacks(cfg)
	if err != nil {
		return def, nil, err
	}

	opts, err := def.Options()
	if err != nil {
		return def, nil, err
	}

	instructions := make([]notation.Instruction, len(h.Actions))
	for i, line := range h.Actions {
		if instructions[i], err = notation.Parse(line); err != nil {
			return def, nil, fmt.Errorf("action %d: %w", i+1, err)
		}
	}

	seed := h.seed(cfg)
	logger.WithFields(logrus.Fields{
		"variant": def.Name,
		"seed":    seed,
	}).Debug("dealing hand")

	opts.HandID = h.HandID
	opts.Deck = newDeck(rng.FromSeed(seed))

	g, err := engine.NewGame(logger, opts, stacks)
	if err != nil {
		return def, nil, err
	}

	return def, g, notation.Replay(g, instructions)
}
