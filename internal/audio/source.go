package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
)

// Stat resolves path to an AudioSource. A missing path or a directory yields
// *models.InputNotFoundError.
func Stat(path string) (models.AudioSource, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.AudioSource{}, &models.InputNotFoundError{Path: path}
	}
	if err != nil {
		return models.AudioSource{}, fmt.Errorf("stat audio: %w", err)
	}
	if !info.Mode().IsRegular() {
		return models.AudioSource{}, &models.InputNotFoundError{Path: path}
	}

	return models.AudioSource{Path: path, Size: info.Size()}, nil
}
