package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
	"github.com/nguyentantai21042004/audio-summarizer/internal/output"
	"github.com/nguyentantai21042004/audio-summarizer/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranscriber struct {
	transcript models.Transcript
	err        error
	calls      int
}

func (f *fakeTranscriber) Transcribe(context.Context, string) (models.Transcript, error) {
	f.calls++
	return f.transcript, f.err
}

type fakeSummarizer struct {
	summary string
	err     error
	prompts []models.Prompt
}

func (f *fakeSummarizer) Summarize(_ context.Context, p models.Prompt) (string, error) {
	f.prompts = append(f.prompts, p)
	return f.summary, f.err
}

type fixture struct {
	tr       *fakeTranscriber
	sum      *fakeSummarizer
	outRoot  string
	audio    string
	glossary string
	proc     Processor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()

	f := &fixture{
		tr:       &fakeTranscriber{transcript: models.Transcript{Segments: []string{"part one", "part two"}}},
		sum:      &fakeSummarizer{summary: "- 要点"},
		outRoot:  filepath.Join(dir, "out"),
		audio:    filepath.Join(dir, "standup.mp3"),
		glossary: filepath.Join(dir, "special_terms.txt"),
	}
	require.NoError(t, os.WriteFile(f.audio, []byte("audio"), 0644))

	clock := func() time.Time { return time.Date(2026, 10, 19, 14, 30, 0, 0, time.Local) }
	w := output.New(f.outRoot, clock, logger.Nop())
	f.proc = New(f.tr, f.sum, w, f.glossary, logger.Nop())
	return f
}

func TestProcess(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(f.glossary, []byte("# terms\nKPI\n"), 0644))

	res, err := f.proc.Process(context.Background(), f.audio, models.PromptMeeting)
	require.NoError(t, err)

	want := prompt.Build("part one"+models.ChunkSeparator+"part two", []string{"KPI"}, models.PromptMeeting)
	require.Len(t, f.sum.prompts, 1)
	assert.Equal(t, want, f.sum.prompts[0])

	assert.Equal(t, filepath.Join(f.outRoot, "20261019_1430", "standup.md"), res.Artifact.Path)
	data, err := os.ReadFile(res.Artifact.Path)
	require.NoError(t, err)
	assert.Equal(t, "# 要約: standup\n\n- 要点", string(data))
	assert.Equal(t, "- 要点", res.Summary)
}

func TestProcessWithoutGlossaryFile(t *testing.T) {
	f := newFixture(t)

	_, err := f.proc.Process(context.Background(), f.audio, models.PromptType("bogus"))
	require.NoError(t, err)

	require.Len(t, f.sum.prompts, 1)
	assert.False(t, strings.Contains(f.sum.prompts[0].User, prompt.GlossaryHeading))
	assert.Equal(t, prompt.Build("part one"+models.ChunkSeparator+"part two", nil, models.PromptGeneral), f.sum.prompts[0])
}

func TestProcessNormalisesRawPromptType(t *testing.T) {
	f := newFixture(t)

	_, err := f.proc.Process(context.Background(), f.audio, models.PromptType("  Meeting "))
	require.NoError(t, err)

	require.Len(t, f.sum.prompts, 1)
	assert.Equal(t, prompt.Build("part one"+models.ChunkSeparator+"part two", nil, models.PromptMeeting), f.sum.prompts[0])
}

func TestProcessMissingInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.proc.Process(context.Background(), filepath.Join(t.TempDir(), "nope.mp3"), models.PromptGeneral)

	var nf *models.InputNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Zero(t, f.tr.calls)
	assert.Empty(t, f.sum.prompts)
	assert.NoDirExists(t, f.outRoot)
}

func TestProcessFailuresWriteNothing(t *testing.T) {
	svcErr := &models.ServiceError{Service: "openai", Op: "x", Err: errors.New("down")}

	tests := []struct {
		name  string
		setup func(f *fixture)
	}{
		{"transcription fails", func(f *fixture) { f.tr.err = svcErr }},
		{"summarization fails", func(f *fixture) { f.sum.err = svcErr }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.proc.Process(context.Background(), f.audio, models.PromptGeneral)

			assert.Nil(t, res)
			assert.ErrorIs(t, err, svcErr)
			assert.NoDirExists(t, f.outRoot)
		})
	}
}
