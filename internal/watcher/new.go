package watcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

// DefaultSettleDelay gives writers time to finish before a file is handled.
const DefaultSettleDelay = 500 * time.Millisecond

// New creates a Watcher on inputDir that calls handler for every created file
// whose extension is in extensions.
func New(inputDir string, extensions []string, handler EventHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	exts := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = struct{}{}
	}

	return &implWatcher{
		inputDir:    inputDir,
		extensions:  exts,
		handler:     handler,
		logger:      log,
		watcher:     watcher,
		settleDelay: DefaultSettleDelay,
	}, nil
}
