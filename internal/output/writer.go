package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
)

// Write creates <root>/<YYYYMMDD_HHMM>/<base>.md, replacing any existing file.
func (w *implWriter) Write(ctx context.Context, audioPath, summary string) (models.OutputArtifact, error) {
	artifact := Plan(w.root, w.now().Format(RunDirLayout), audioPath, summary)

	if err := os.MkdirAll(artifact.Dir, 0755); err != nil {
		return models.OutputArtifact{}, fmt.Errorf("create output dir %s: %w", artifact.Dir, err)
	}

	if err := os.WriteFile(artifact.Path, []byte(artifact.Content), 0644); err != nil {
		return models.OutputArtifact{}, fmt.Errorf("write summary %s: %w", artifact.Path, err)
	}

	w.logger.Info(ctx, "Summary saved to '%s'", artifact.Path)
	return artifact, nil
}

// Plan computes the artifact for runID without touching the filesystem.
func Plan(root, runID, audioPath, summary string) models.OutputArtifact {
	base := BaseName(audioPath)
	dir := filepath.Join(root, runID)

	return models.OutputArtifact{
		Dir:     dir,
		Path:    filepath.Join(dir, base+".md"),
		Content: fmt.Sprintf("# 要約: %s\n\n%s", base, summary),
	}
}

// BaseName strips the directory and the final extension from path.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
