package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Supported completion providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// LLMConfig selects and configures the completion provider.
// An empty API key is valid: calls fail at request time, not at start-up.
type LLMConfig struct {
	Provider          string
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OpenAIModel       string
	GeminiAPIKey      string
	GeminiModel       string
	RequestTimeoutSec int
}

// CacheConfig controls the summary cache. Size 0 disables it.
type CacheConfig struct {
	SummarySize   int
	SummaryTTLSec int
}

// MinIOConfig holds object storage settings for the optional upload archive.
// The archive is disabled when Endpoint is empty.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether the upload archive should be used.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost          string
	Port             string
	Debug            bool
	MaxUploadMB      int
	CORSAllowOrigins string
	LLM              LLMConfig
	Cache            CacheConfig
	MinIO            MinIOConfig
}

// flagKeys maps command-line flag names to the environment keys they override.
var flagKeys = map[string]string{
	"port":  "PORT",
	"debug": "LOG_DEBUG",
}

// LoadWithFlags reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Any flag of fs listed in flagKeys that was set explicitly takes precedence over the
// environment. fs may be nil.
func LoadWithFlags(fs *pflag.FlagSet) (*AppConfig, error) {
	v := newViper()
	if fs == nil {
		return load(v), nil
	}
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return load(v), nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("APP_HOST", "localhost:8000")
	v.SetDefault("PORT", "8000")
	v.SetDefault("LOG_DEBUG", false)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	v.SetDefault("LLM_PROVIDER", ProviderOpenAI)
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_BASE_URL", "")
	v.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")

	v.SetDefault("SUMMARY_CACHE_SIZE", 0)

	v.SetDefault("MINIO_ENDPOINT", "")
	v.SetDefault("MINIO_ACCESS_KEY", "")
	v.SetDefault("MINIO_SECRET_KEY", "")
	v.SetDefault("MINIO_BUCKET", "")
	v.SetDefault("MINIO_USE_SSL", false)

	for key, def := range positiveDefaults {
		v.SetDefault(key, def)
	}
	return v
}

func load(v *viper.Viper) *AppConfig {
	return &AppConfig{
		AppHost:          v.GetString("APP_HOST"),
		Port:             v.GetString("PORT"),
		Debug:            v.GetBool("LOG_DEBUG"),
		MaxUploadMB:      positiveInt(v, "MAX_UPLOAD_MB"),
		CORSAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		LLM: LLMConfig{
			Provider:          strings.ToLower(v.GetString("LLM_PROVIDER")),
			OpenAIAPIKey:      v.GetString("OPENAI_API_KEY"),
			OpenAIBaseURL:     v.GetString("OPENAI_BASE_URL"),
			OpenAIModel:       v.GetString("OPENAI_MODEL"),
			GeminiAPIKey:      v.GetString("GEMINI_API_KEY"),
			GeminiModel:       v.GetString("GEMINI_MODEL"),
			RequestTimeoutSec: positiveInt(v, "COMPLETION_TIMEOUT_SEC"),
		},
		Cache: CacheConfig{
			SummarySize:   v.GetInt("SUMMARY_CACHE_SIZE"),
			SummaryTTLSec: positiveInt(v, "SUMMARY_CACHE_TTL_SEC"),
		},
		MinIO: MinIOConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
		},
	}
}

// positiveDefaults are the fallbacks for settings that must be greater than zero.
var positiveDefaults = map[string]int{
	"MAX_UPLOAD_MB":          25,
	"COMPLETION_TIMEOUT_SEC": 60,
	"SUMMARY_CACHE_TTL_SEC":  3600,
}

// positiveInt returns the value of key, or its default when the value is not a positive integer.
func positiveInt(v *viper.Viper, key string) int {
	if n := v.GetInt(key); n > 0 {
		return n
	}
	return positiveDefaults[key]
}
