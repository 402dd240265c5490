package models

import "strings"

// ChunkSeparator is placed between chunk-level transcript segments.
const ChunkSeparator = "\n\n--- (次のチャンク) ---\n\n"

// AudioSource is the recording a run was started for.
type AudioSource struct {
	Path string
	Size int64
}

// Chunk is a fixed-duration slice of an AudioSource exported to a temp file.
// The interval is half-open: [StartMs, EndMs).
type Chunk struct {
	Index   int
	StartMs int64
	EndMs   int64
	Path    string
}

// DurationMs returns the length of the chunk interval.
func (c Chunk) DurationMs() int64 {
	return c.EndMs - c.StartMs
}

// Transcript holds chunk-level text in chunk index order.
type Transcript struct {
	Segments []string
}

func (t Transcript) String() string {
	return strings.Join(t.Segments, ChunkSeparator)
}
