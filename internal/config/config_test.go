package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"pokerengine/internal/util"
	"pokerengine/pkg/variant"
)

func TestInstance(t *testing.T) {
	defer util.SetEnv("PE_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("PE_GAME_STARTING_STACK", "1000")()

	a := assert.New(t)
	config = Config{}
	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal("text", cfg.Log.Format)
	a.Equal("house-holdem", cfg.Game.Variant)
	a.Equal(1000, cfg.Game.StartingStack)
	a.Equal(int64(7), cfg.Game.Seed)
	a.Len(cfg.Variants, 1)

	def, err := variant.Get("house-holdem")
	a.NoError(err)
	a.Equal("pot-limit", def.Limit)

	// ensure that it's only loaded once
	_ = os.Setenv("PE_GAME_STARTING_STACK", "2000")
	// ensure we aren't using a pointer
	cfg.Game.StartingStack = 1
	cfg = Instance()
	a.Equal(1000, cfg.Game.StartingStack)
}

func TestDefaults(t *testing.T) {
	defer util.SetEnv("PE_CONFIG_FILE", "testdata/missing.yaml")()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(DefaultConfig().Game, cfg.Game)
	a.Equal("info", cfg.Log.Level)
}

func TestLoad_environment(t *testing.T) {
	defer util.SetEnv("PE_CONFIG_FILE", "testdata/missing.yaml")()
	defer util.SetEnv("PE_LOG_FORMAT", "json")()
	defer util.SetEnv("PE_GAME_SEED", "99")()

	a := assert.New(t)
	a.NoError(Load())
	a.Equal("json", Instance().Log.Format)
	a.Equal(int64(99), Instance().Game.Seed)

	defer util.SetEnv("PE_GAME_SEED", "abc")()
	a.Error(Load())
}

func TestLoad_invalidVariant(t *testing.T) {
	defer util.SetEnv("PE_CONFIG_FILE", "testdata/bad_variant.yaml")()

	err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid limit: spread-limit")
}
