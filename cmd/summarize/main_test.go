package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/nguyentantai21042004/audio-summarizer/internal/config"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
	"github.com/nguyentantai21042004/audio-summarizer/internal/processor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcessor struct {
	calls   int
	gotPath string
	gotType models.PromptType
	result  *processor.Result
	err     error
}

func (f *fakeProcessor) Process(ctx context.Context, audioPath string, promptType models.PromptType) (*processor.Result, error) {
	f.calls++
	f.gotPath = audioPath
	f.gotType = promptType
	return f.result, f.err
}

type harness struct {
	builds int
	cfg    *config.Config
	proc   *fakeProcessor
	env    map[string]string
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newHarness() *harness {
	return &harness{
		proc: &fakeProcessor{result: &processor.Result{
			Transcript: models.Transcript{Segments: []string{"こんにちは"}},
			Summary:    "- 要点",
		}},
		env: map[string]string{config.EnvOpenAIKey: "sk-test"},
	}
}

func (h *harness) run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCommand(deps{
		build: func(cfg *config.Config, log logger.Logger) (processor.Processor, error) {
			h.builds++
			h.cfg = cfg
			return h.proc, nil
		},
		getenv: func(k string) string { return h.env[k] },
	})
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(&h.stdout)
	cmd.SetErr(&h.stderr)
	return cmd.ExecuteContext(context.Background())
}

func TestSummarize_MissingAPIKeyStopsBeforeWork(t *testing.T) {
	h := newHarness()
	delete(h.env, config.EnvOpenAIKey)

	err := h.run(t, "meeting.mp3")

	var cfgErr *models.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, config.EnvOpenAIKey, cfgErr.Field)
	assert.Zero(t, h.builds)
	assert.Zero(t, h.proc.calls)
}

func TestSummarize_PrintsTranscriptAndSummary(t *testing.T) {
	h := newHarness()

	require.NoError(t, h.run(t, "meeting.mp3", "--prompt-type", "meeting"))

	assert.Equal(t, 1, h.proc.calls)
	assert.Equal(t, "meeting.mp3", h.proc.gotPath)
	assert.Equal(t, models.PromptMeeting, h.proc.gotType)
	assert.Contains(t, h.stdout.String(), "=== 文字起こし ===\nこんにちは")
	assert.Contains(t, h.stdout.String(), "=== 要約 ===\n- 要点")
}

func TestSummarize_QuietSuppressesOutput(t *testing.T) {
	h := newHarness()

	require.NoError(t, h.run(t, "meeting.mp3", "--quiet"))
	assert.Empty(t, h.stdout.String())
}

func TestSummarize_PromptTypePassedThrough(t *testing.T) {
	h := newHarness()

	require.NoError(t, h.run(t, "meeting.mp3", "--prompt-type", "podcast"))
	assert.Equal(t, models.PromptType("podcast"), h.proc.gotType)
}

func TestSummarize_OutputFlagOverridesConfig(t *testing.T) {
	h := newHarness()
	dir := t.TempDir()

	require.NoError(t, h.run(t, "meeting.mp3", "--output", dir, "--debug"))
	assert.Equal(t, dir, h.cfg.Paths.Output)
	assert.Equal(t, "debug", h.cfg.Logging.Level)
}

func TestSummarize_ProcessErrorIsReturned(t *testing.T) {
	h := newHarness()
	h.proc.result = nil
	h.proc.err = &models.InputNotFoundError{Path: "missing.mp3"}

	err := h.run(t, "missing.mp3")

	var nf *models.InputNotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Empty(t, h.stdout.String())
}

func TestSummarize_ExplicitConfigMustExist(t *testing.T) {
	h := newHarness()

	err := h.run(t, "meeting.mp3", "--config", "does-not-exist.yaml")
	assert.Error(t, err)
	assert.Zero(t, h.builds)
}

func TestSummarize_RequiresExactlyOneArgument(t *testing.T) {
	h := newHarness()

	assert.Error(t, h.run(t))
	assert.Error(t, h.run(t, "a.mp3", "b.mp3"))
	assert.Zero(t, h.builds)
}

func TestBuildProcessor(t *testing.T) {
	t.Run("openai", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Credentials.OpenAIKey = "sk-test"
		require.NoError(t, cfg.Validate())

		proc, err := buildProcessor(cfg, logger.Nop())
		require.NoError(t, err)
		assert.NotNil(t, proc)
	})

	t.Run("gemini", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Summarization.Provider = config.ProviderGemini
		cfg.Credentials.OpenAIKey = "sk-test"
		cfg.Credentials.GeminiKeys = []string{"g-1", "g-2"}
		require.NoError(t, cfg.Validate())

		proc, err := buildProcessor(cfg, logger.Nop())
		require.NoError(t, err)
		assert.NotNil(t, proc)
	})
}

func TestBuildProcessor_DefaultConfigDoesNotRetryQuotaErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"You exceeded your current quota","type":"insufficient_quota","code":"insufficient_quota"}}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	audioPath := filepath.Join(dir, "memo.mp3")
	require.NoError(t, os.WriteFile(audioPath, []byte{0}, 0644))

	cfg := &config.Config{}
	cfg.OpenAI.BaseURL = srv.URL
	cfg.Paths.Output = filepath.Join(dir, "out")
	cfg.Paths.Glossary = filepath.Join(dir, "special_terms.txt")
	cfg.Credentials.OpenAIKey = "sk-test"
	require.NoError(t, cfg.Validate())

	proc, err := buildProcessor(cfg, logger.Nop())
	require.NoError(t, err)

	_, err = proc.Process(context.Background(), audioPath, models.PromptGeneral)

	var se *models.ServiceError
	require.ErrorAs(t, err, &se)
	assert.False(t, se.Retryable)
	assert.Equal(t, int32(1), hits.Load())
	assert.NoDirExists(t, cfg.Paths.Output)
}
