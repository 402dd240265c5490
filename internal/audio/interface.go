package audio

import (
	"context"

	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
)

// ChunkHandler receives each exported chunk in index order.
type ChunkHandler func(ctx context.Context, chunk models.Chunk) error

// Chunker splits an audio file into fixed-duration segments.
type Chunker interface {
	// Split exports path into consecutive chunks inside a temporary directory
	// and hands each one to fn before the next is exported. The directory and
	// every chunk file are removed before Split returns.
	Split(ctx context.Context, path string, fn ChunkHandler) error
}
