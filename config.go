package sentilabel

import (
	"fmt"

	"github.com/Fahri-Hilm/sentilabel/internal/config"
	"github.com/Fahri-Hilm/sentilabel/internal/logger"
	"github.com/Fahri-Hilm/sentilabel/lexicons"
)

// Config configures an Engine.
type Config struct {
	// Lexicon names a builtin lexicon. Ignored when LexiconPath is set.
	Lexicon string `yaml:"lexicon" env:"SENTILABEL_LEXICON"`
	// LexiconPath loads a lexicon YAML file instead of a builtin one.
	LexiconPath string `yaml:"lexicon_path" env:"SENTILABEL_LEXICON_PATH"`
	// MinScore is the smallest winning score a layer accepts.
	MinScore float64 `yaml:"min_score" env:"SENTILABEL_MIN_SCORE"`
	// ConflictThreshold is the core confidence below which mixed polarity
	// evidence turns the core label into the mixed label.
	ConflictThreshold float64 `yaml:"conflict_threshold" env:"SENTILABEL_CONFLICT_THRESHOLD"`
	// HitCounting is "distinct" or "occurrence".
	HitCounting HitCounting `yaml:"hit_counting" env:"SENTILABEL_HIT_COUNTING"`
	// Negation is "fusion", "flag" or "none".
	Negation NegationStrategy `yaml:"negation" env:"SENTILABEL_NEGATION"`
	// Workers bounds LabelBatch concurrency. Zero means one per CPU.
	Workers int `yaml:"workers" env:"SENTILABEL_WORKERS"`

	Clean CleanOptions  `yaml:"clean"`
	Log   logger.Config `yaml:"log"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Lexicon:           lexicons.Default,
		MinScore:          0.5,
		ConflictThreshold: 0.6,
		HitCounting:       HitCountDistinct,
		Negation:          NegationFusion,
		Clean:             DefaultCleanOptions(),
	}
}

// Validate checks the configuration for values the engine cannot use.
func (c Config) Validate() error {
	switch {
	case c.MinScore < 0:
		return fmt.Errorf("%w: min_score must not be negative, got %v", ErrInvalidConfig, c.MinScore)
	case c.ConflictThreshold < 0 || c.ConflictThreshold > 1:
		return fmt.Errorf("%w: conflict_threshold must be within [0, 1], got %v", ErrInvalidConfig, c.ConflictThreshold)
	case !c.HitCounting.Valid():
		return fmt.Errorf("%w: hit_counting %q", ErrInvalidConfig, c.HitCounting)
	case !c.Negation.Valid():
		return fmt.Errorf("%w: negation %q", ErrInvalidConfig, c.Negation)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	case c.Clean.MinLength < 0:
		return fmt.Errorf("%w: clean.min_length must not be negative, got %d", ErrInvalidConfig, c.Clean.MinLength)
	}
	return nil
}

// LoadConfig reads path over the defaults and applies environment
// overrides. An empty path uses the defaults and the environment only.
func LoadConfig(path string) (Config, error) {
	cfg, err := config.LoadWithDefaults(path, func(c *Config) { *c = DefaultConfig() })
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return *cfg, nil
}

// lexicon loads the lexicon selected by the configuration.
func (c Config) lexicon() (*Lexicon, error) {
	if c.LexiconPath != "" {
		return LoadLexicon(c.LexiconPath)
	}
	return BuiltinLexicon(c.Lexicon)
}
