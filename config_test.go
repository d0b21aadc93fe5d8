package numo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numo.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, []string{"translate", "unit", "currency", "math", "variable"}, cfg.Runners)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"runners": ["math", "variable"],
		"http_timeout": "2s",
		"currency_cache_ttl": "1m",
		"currency_api_url": "http://rates.test/v6/latest"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"math", "variable"}, cfg.Runners)
	assert.Equal(t, 2*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Minute, cfg.CurrencyTTL)
	assert.Equal(t, "http://rates.test/v6/latest", cfg.CurrencyAPI)
	// Unset fields keep their defaults.
	assert.Equal(t, defaultTranslateAPI, cfg.TranslateAPI)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("NUMO_CURRENCY_API", "http://env.test/rates")
	t.Setenv("NUMO_TRANSLATE_API", "http://env.test/translate")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "http://env.test/rates", cfg.CurrencyAPI)
	assert.Equal(t, "http://env.test/translate", cfg.TranslateAPI)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})
	t.Run("bad json", func(t *testing.T) {
		_, err := LoadConfig(writeConfigFile(t, `{"runners": [`))
		assert.Error(t, err)
	})
	t.Run("unknown runner", func(t *testing.T) {
		_, err := LoadConfig(writeConfigFile(t, `{"runners": ["math", "sql"]}`))
		require.Error(t, err)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})
	t.Run("empty runner list", func(t *testing.T) {
		_, err := LoadConfig(writeConfigFile(t, `{"runners": []}`))
		assert.Error(t, err)
	})
	t.Run("bad duration", func(t *testing.T) {
		_, err := LoadConfig(writeConfigFile(t, `{"http_timeout": "soon"}`))
		assert.Error(t, err)
	})
}

func TestConfigBuildRunners(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Runners = []string{"math", "unit", "variable"}

	runners, err := cfg.BuildRunners()
	require.NoError(t, err)
	require.Len(t, runners, 3)
	assert.Equal(t, "math", runners[0].Name())
	assert.Equal(t, "unit", runners[1].Name())
	assert.Equal(t, "variable", runners[2].Name())
}

func TestConfigEngine(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Runners = []string{"math"}
	n, err := cfg.Engine(nil)
	require.NoError(t, err)
	require.NotNil(t, n)

	results := n.Calculate(context.Background(), []string{"2 + 2"})
	require.Len(t, results, 1)
	assert.Equal(t, Result{"4", true}, results[0])
}
