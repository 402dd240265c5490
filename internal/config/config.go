package config

import (
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
	"github.com/nguyentantai21042004/audio-summarizer/internal/resilience"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	OpenAI        OpenAIConfig        `yaml:"openai"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Summarization SummarizationConfig `yaml:"summarization"`
	FFmpeg        FFmpegConfig        `yaml:"ffmpeg"`
	Paths         PathsConfig         `yaml:"paths"`
	Retry         RetryConfig         `yaml:"retry"`
	Logging       LoggingConfig       `yaml:"logging"`
	Watch         WatchConfig         `yaml:"watch"`

	// Credentials come from the environment only.
	Credentials Credentials `yaml:"-"`
}

type OpenAIConfig struct {
	BaseURL string `yaml:"base_url"`
}

type TranscriptionConfig struct {
	Model         string `yaml:"model"`
	Language      string `yaml:"language"`
	MaxFileSizeMB int    `yaml:"max_file_size_mb"`
	ChunkMinutes  int    `yaml:"chunk_minutes"`
}

type SummarizationConfig struct {
	Provider    string   `yaml:"provider"`
	Model       string   `yaml:"model"`
	MaxTokens   int      `yaml:"max_tokens"`
	Temperature *float32 `yaml:"temperature"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ProbePath  string `yaml:"probe_path"`
}

type PathsConfig struct {
	Output   string `yaml:"output"`
	Temp     string `yaml:"temp"`
	Glossary string `yaml:"glossary"`
}

type RetryConfig struct {
	MaxAttempts      int           `yaml:"max_attempts"`
	InitialBackoff   time.Duration `yaml:"initial_backoff"`
	MaxBackoff       time.Duration `yaml:"max_backoff"`
	BreakerThreshold int           `yaml:"breaker_threshold"`
	BreakerCooldown  time.Duration `yaml:"breaker_cooldown"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type WatchConfig struct {
	Extensions []string `yaml:"extensions"`
}

type Credentials struct {
	OpenAIKey  string
	GeminiKeys []string
}

// Validate fills defaults and reports the first missing required setting as
// a *models.ConfigurationError.
func (c *Config) Validate() error {
	c.applyDefaults()

	switch c.Summarization.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return &models.ConfigurationError{Field: "summarization.provider", Msg: "must be openai or gemini"}
	}

	if c.Credentials.OpenAIKey == "" {
		return &models.ConfigurationError{Field: EnvOpenAIKey, Msg: "environment variable is not set"}
	}
	if c.Summarization.Provider == ProviderGemini && len(c.Credentials.GeminiKeys) == 0 {
		return &models.ConfigurationError{Field: EnvGeminiKeys, Msg: "environment variable is not set"}
	}

	if c.Retry.MaxAttempts < 1 {
		return &models.ConfigurationError{Field: "retry.max_attempts", Msg: "must be at least 1"}
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Transcription.Model == "" {
		c.Transcription.Model = "whisper-1"
	}
	if c.Transcription.MaxFileSizeMB == 0 {
		c.Transcription.MaxFileSizeMB = 25
	}
	if c.Transcription.ChunkMinutes == 0 {
		c.Transcription.ChunkMinutes = 30
	}
	if c.Summarization.Provider == "" {
		c.Summarization.Provider = ProviderOpenAI
	}
	if c.Summarization.Model == "" {
		switch c.Summarization.Provider {
		case ProviderGemini:
			c.Summarization.Model = "gemini-2.5-flash"
		default:
			c.Summarization.Model = "gpt-4o"
		}
	}
	if c.Summarization.MaxTokens == 0 {
		c.Summarization.MaxTokens = 1500
	}
	if c.Summarization.Temperature == nil {
		t := float32(0.5)
		c.Summarization.Temperature = &t
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "."
	}
	// retrying is opt-in
	if c.Retry.MaxAttempts == 0 {
		c.Retry.MaxAttempts = resilience.NoRetry.MaxAttempts
	}
	if c.Retry.InitialBackoff == 0 {
		c.Retry.InitialBackoff = 2 * time.Second
	}
	if c.Retry.MaxBackoff == 0 {
		c.Retry.MaxBackoff = 30 * time.Second
	}
	if c.Retry.BreakerThreshold == 0 {
		c.Retry.BreakerThreshold = 5
	}
	if c.Retry.BreakerCooldown == 0 {
		c.Retry.BreakerCooldown = time.Minute
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if len(c.Watch.Extensions) == 0 {
		c.Watch.Extensions = []string{".mp3", ".mp4", ".mpeg", ".mpga", ".m4a", ".wav", ".webm", ".ogg", ".flac"}
	}
}

// MaxFileSizeBytes is the single-upload limit in bytes.
func (c *Config) MaxFileSizeBytes() int64 {
	return int64(c.Transcription.MaxFileSizeMB) * 1024 * 1024
}

// ChunkLength is the duration of each chunk of an oversized file.
func (c *Config) ChunkLength() time.Duration {
	return time.Duration(c.Transcription.ChunkMinutes) * time.Minute
}

// RetryPolicy converts the retry section for the resilience guard.
func (c *Config) RetryPolicy() resilience.Policy {
	return resilience.Policy{
		MaxAttempts:      c.Retry.MaxAttempts,
		InitialBackoff:   c.Retry.InitialBackoff,
		MaxBackoff:       c.Retry.MaxBackoff,
		BreakerThreshold: c.Retry.BreakerThreshold,
		BreakerCooldown:  c.Retry.BreakerCooldown,
	}
}
