package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
)

func (c *implChunker) Split(ctx context.Context, path string, fn ChunkHandler) error {
	ext := filepath.Ext(path)
	if ext == "" {
		return &models.DecodeError{Path: path, Err: errors.New("no file extension to infer the container format")}
	}

	totalMs, err := c.probeDurationMs(ctx, path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &models.DecodeError{Path: path, Err: err}
	}

	chunks := PlanChunks(totalMs, c.opts.ChunkLength.Milliseconds())
	c.logger.Info(ctx, "Audio duration %s, splitting into %d chunk(s)", formatSeconds(totalMs)+"s", len(chunks))
	if len(chunks) == 0 {
		c.logger.Warn(ctx, "Audio %s has zero duration, nothing to transcribe", path)
		return nil
	}

	tmpDir, err := os.MkdirTemp(c.opts.TempDir, "chunks-*")
	if err != nil {
		return fmt.Errorf("create chunk dir: %w", err)
	}
	defer c.removeDir(ctx, tmpDir)

	for _, chunk := range chunks {
		chunk.Path = filepath.Join(tmpDir, fmt.Sprintf("chunk_%d%s", chunk.Index, ext))

		if err := c.export(ctx, path, chunk); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return &models.DecodeError{Path: path, Err: fmt.Errorf("export chunk %d: %w", chunk.Index, err)}
		}

		if err := fn(ctx, chunk); err != nil {
			return err
		}
	}

	return nil
}

// export writes [StartMs, EndMs) of src to chunk.Path without re-encoding.
func (c *implChunker) export(ctx context.Context, src string, chunk models.Chunk) error {
	// -ss before -i seeks the input; -c:a copy keeps codec, rate and channels
	args := []string{
		"-v", "error",
		"-y",
		"-ss", formatSeconds(chunk.StartMs),
		"-i", src,
		"-t", formatSeconds(chunk.DurationMs()),
		"-vn",
		"-c:a", "copy",
		chunk.Path,
	}

	if _, err := c.executor.Execute(ctx, c.opts.FFmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg: %w", err)
	}

	c.logger.Debug(ctx, "Exported chunk %d [%ss, %ss): %s",
		chunk.Index, formatSeconds(chunk.StartMs), formatSeconds(chunk.EndMs), chunk.Path)
	return nil
}

func (c *implChunker) removeDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		c.logger.Warn(ctx, "Failed to cleanup chunk dir %s: %v", dir, err)
	} else {
		c.logger.Debug(ctx, "Cleaned up chunk dir: %s", dir)
	}
}
