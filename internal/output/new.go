package output

import (
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

// RunDirLayout names run directories by the minute they were created.
const RunDirLayout = "20060102_1504"

type implWriter struct {
	root   string
	now    func() time.Time
	logger logger.Logger
}

// New creates a Writer rooted at root ("" means the working directory).
// now defaults to time.Now.
func New(root string, now func() time.Time, log logger.Logger) Writer {
	if now == nil {
		now = time.Now
	}
	return &implWriter{root: root, now: now, logger: log}
}
