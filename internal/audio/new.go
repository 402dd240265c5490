package audio

import (
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/pkg/executor"
)

// DefaultChunkLength is the duration of every chunk except possibly the last.
const DefaultChunkLength = 30 * time.Minute

// Options configures the ffmpeg-backed Chunker.
type Options struct {
	FFmpegPath  string
	FFprobePath string
	ChunkLength time.Duration
	// TempDir is the parent for the per-run chunk directory. Empty means os.TempDir().
	TempDir string
}

type implChunker struct {
	opts     Options
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Chunker that probes and exports audio with ffprobe/ffmpeg.
func New(opts Options, exec executor.Executor, log logger.Logger) Chunker {
	if opts.FFmpegPath == "" {
		opts.FFmpegPath = "ffmpeg"
	}
	if opts.FFprobePath == "" {
		opts.FFprobePath = "ffprobe"
	}
	if opts.ChunkLength <= 0 {
		opts.ChunkLength = DefaultChunkLength
	}

	return &implChunker{
		opts:     opts,
		executor: exec,
		logger:   log,
	}
}
