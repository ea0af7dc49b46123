package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithFlags_Defaults(t *testing.T) {
	// Empty values count as unset.
	for _, key := range []string{"PORT", "LOG_DEBUG", "MAX_UPLOAD_MB", "LLM_PROVIDER", "OPENAI_MODEL", "SUMMARY_CACHE_SIZE", "MINIO_ENDPOINT"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadWithFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 25, cfg.MaxUploadMB)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "gpt-3.5-turbo", cfg.LLM.OpenAIModel)
	assert.Equal(t, 60, cfg.LLM.RequestTimeoutSec)
	assert.Equal(t, 0, cfg.Cache.SummarySize, "summary cache is opt-in")
	assert.Equal(t, 3600, cfg.Cache.SummaryTTLSec)
	assert.False(t, cfg.MinIO.Enabled())
}

func TestLoadWithFlags_MissingCredentialIsEmpty(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := LoadWithFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.LLM.OpenAIAPIKey)
}

func TestLoadWithFlags_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_DEBUG", "true")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("SUMMARY_CACHE_SIZE", "64")
	t.Setenv("MAX_UPLOAD_MB", "5")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg, err := LoadWithFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAIAPIKey)
	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, 64, cfg.Cache.SummarySize)
	assert.Equal(t, 5, cfg.MaxUploadMB)
	assert.True(t, cfg.MinIO.Enabled())
	assert.True(t, cfg.MinIO.UseSSL)
}

func TestLoadWithFlags_InvalidPositiveIntFallsBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "invalid")
	t.Setenv("COMPLETION_TIMEOUT_SEC", "-3")

	cfg, err := LoadWithFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.MaxUploadMB)
	assert.Equal(t, 60, cfg.LLM.RequestTimeoutSec)
}

func TestLoadWithFlags_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")

	newFlags := func() *pflag.FlagSet {
		fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
		fs.String("port", "8000", "")
		fs.Bool("debug", false, "")
		return fs
	}

	t.Run("env wins over unset flag", func(t *testing.T) {
		cfg, err := LoadWithFlags(newFlags())
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.False(t, cfg.Debug)
	})

	t.Run("explicit flag wins over env", func(t *testing.T) {
		fs := newFlags()
		require.NoError(t, fs.Parse([]string{"--port", "7070", "--debug"}))

		cfg, err := LoadWithFlags(fs)
		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.Port)
		assert.True(t, cfg.Debug)
	})
}
