package sentilabel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fahri-Hilm/sentilabel/lexicons"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sentilabel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, lexicons.Default, cfg.Lexicon)
	assert.Equal(t, 0.5, cfg.MinScore)
	assert.Equal(t, 0.6, cfg.ConflictThreshold)
	assert.Equal(t, HitCountDistinct, cfg.HitCounting)
	assert.Equal(t, NegationFusion, cfg.Negation)
	assert.Equal(t, DefaultCleanOptions(), cfg.Clean)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		mutate func(*Config)
		desc   string
	}{
		{func(c *Config) { c.MinScore = -0.1 }, "Negative minimum score"},
		{func(c *Config) { c.ConflictThreshold = 1.5 }, "Threshold above one"},
		{func(c *Config) { c.ConflictThreshold = -1 }, "Negative threshold"},
		{func(c *Config) { c.HitCounting = "weighted" }, "Unknown hit counting"},
		{func(c *Config) { c.Negation = "invert" }, "Unknown negation"},
		{func(c *Config) { c.Workers = -2 }, "Negative workers"},
		{func(c *Config) { c.Clean.MinLength = -1 }, "Negative minimum length"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

			_, err := NewEngine(cfg, UsingLexicon(newTestLexicon(t)))
			var cfgErr *ConfigurationError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
lexicon: nine-layer-v1
min_score: 1.0
hit_counting: Occurrence
negation: flag
workers: 4
clean:
  remove_numbers: false
  min_length: 5
log:
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "nine-layer-v1", cfg.Lexicon)
	assert.Equal(t, 1.0, cfg.MinScore)
	assert.Equal(t, 0.6, cfg.ConflictThreshold)
	assert.Equal(t, HitCountOccurrence, cfg.HitCounting)
	assert.Equal(t, NegationFlag, cfg.Negation)
	assert.Equal(t, 4, cfg.Workers)
	assert.False(t, cfg.Clean.RemoveNumbers)
	assert.True(t, cfg.Clean.RemoveURLs)
	assert.Equal(t, 5, cfg.Clean.MinLength)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "min_score: 1.0\nnegation: flag\n")
	t.Setenv("SENTILABEL_MIN_SCORE", "2.5")
	t.Setenv("SENTILABEL_NEGATION", "none")
	t.Setenv("SENTILABEL_MIN_LENGTH", "7")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.MinScore)
	assert.Equal(t, NegationNone, cfg.Negation)
	assert.Equal(t, 7, cfg.Clean.MinLength)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "min_scor: 1\n"))
		assert.Error(t, err)
	})

	t.Run("invalid enum", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "hit_counting: weighted\n"))
		assert.Error(t, err)
	})

	t.Run("invalid environment value", func(t *testing.T) {
		t.Setenv("SENTILABEL_NEGATION", "invert")
		_, err := LoadConfig("")
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestConfigLexiconSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallLexicon), 0o600))

	cfg := DefaultConfig()
	cfg.Lexicon = "nope"
	cfg.LexiconPath = path
	e, err := NewEngine(cfg)
	require.NoError(t, err)
	assert.Equal(t, "small", e.Lexicon().Name())
	assert.Equal(t, cfg, e.Config())

	cfg.LexiconPath = ""
	_, err = NewEngine(cfg)
	assert.ErrorIs(t, err, ErrUnknownLexicon)
}
