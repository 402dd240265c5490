package audio

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// probeDurationMs decodes the container header and returns the total duration.
func (c *implChunker) probeDurationMs(ctx context.Context, path string) (int64, error) {
	// -show_entries format=duration prints only the duration in seconds
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	out, err := c.executor.Execute(ctx, c.opts.FFprobePath, args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	raw := strings.TrimSpace(out)
	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return 0, fmt.Errorf("unreadable duration %q", raw)
	}

	return int64(math.Round(seconds * 1000)), nil
}

// formatSeconds renders milliseconds as an ffmpeg time value.
func formatSeconds(ms int64) string {
	return strconv.FormatFloat(float64(ms)/1000, 'f', 3, 64)
}
