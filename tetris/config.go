package tetris

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("invalid config")

// Randomizer and scoring names accepted by Config.
const (
	RandomizerBag     = "bag"
	RandomizerUniform = "uniform"

	ScoringClassic = "classic"
	ScoringNone    = "none"
)

// Config selects the rules of a session.
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Seed seeds the randomizer. Zero picks a random seed.
	Seed       uint64 `toml:"seed"`
	Randomizer string `toml:"randomizer"`

	Hold    bool `toml:"hold"`
	Ghost   bool `toml:"ghost"`
	Preview int  `toml:"preview"`

	Scoring string `toml:"scoring"`
	// MinDropIntervalMS is the shortest gravity period, in milliseconds.
	MinDropIntervalMS int `toml:"min_drop_interval_ms"`
}

// DefaultConfig returns a 10×24 board with the 7-bag randomizer, hold,
// ghost, a five piece preview and classic scoring.
func DefaultConfig() Config {
	return Config{
		Width:             10,
		Height:            24,
		Randomizer:        RandomizerBag,
		Hold:              true,
		Ghost:             true,
		Preview:           5,
		Scoring:           ScoringClassic,
		MinDropIntervalMS: 50,
	}
}

// Validate checks that the config describes a playable game.
func (c Config) Validate() error {
	var problems []string
	if c.Width < 4 {
		problems = append(problems, fmt.Sprintf("width %d is below 4", c.Width))
	}
	if c.Height < 4 {
		problems = append(problems, fmt.Sprintf("height %d is below 4", c.Height))
	}
	if c.Preview < 0 || c.Preview > lookahead {
		problems = append(problems, fmt.Sprintf("preview %d is outside [0,%d]", c.Preview, lookahead))
	}
	if !slices.Contains([]string{RandomizerBag, RandomizerUniform}, c.Randomizer) {
		problems = append(problems, fmt.Sprintf("unknown randomizer %q", c.Randomizer))
	}
	if !slices.Contains([]string{ScoringClassic, ScoringNone}, c.Scoring) {
		problems = append(problems, fmt.Sprintf("unknown scoring %q", c.Scoring))
	}
	if c.MinDropIntervalMS <= 0 {
		problems = append(problems, fmt.Sprintf("min_drop_interval_ms %d must be positive", c.MinDropIntervalMS))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// MinDropInterval returns the gravity floor as a duration.
func (c Config) MinDropInterval() time.Duration {
	return time.Duration(c.MinDropIntervalMS) * time.Millisecond
}

// LoadConfig reads a TOML file over DefaultConfig and validates the result.
// Keys that do not map to a Config field are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) newRandomizer() Randomizer {
	rng := newRand(c.Seed)
	if c.Randomizer == RandomizerUniform {
		return NewUniform(rng)
	}
	return NewBag(rng)
}

func (c Config) newScoring() ScoringPolicy {
	if c.Scoring == ScoringNone {
		return NoScoring{}
	}
	return ClassicScoring{}
}
