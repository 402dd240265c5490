package glossary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGlossary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	terms, err := Load(writeGlossary(t, "# comment\n\nfoo\nbar\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, terms)
}

func TestLoadMissingFile(t *testing.T) {
	terms, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.NoError(t, err)
	assert.Empty(t, terms)
}

func TestLoadDirectoryIsError(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"only comments", "# a\n#b\n", nil},
		{"trims whitespace", "  Kubernetes  \r\n\tgRPC\n", []string{"Kubernetes", "gRPC"}},
		{"indented comment", "   # note\nterm\n", []string{"term"}},
		{"keeps duplicates and order", "b\na\nb\n", []string{"b", "a", "b"}},
		{"no trailing newline", "last", []string{"last"}},
		{"inner hash kept", "C# language\n", []string{"C# language"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, FileName, filepath.Base(DefaultPath()))
}
