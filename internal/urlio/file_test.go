package urlio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "urls.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadURLsFromFile(t *testing.T) {
	path := writeTempFile(t, "http://example.com/a\nhttp://example.com/b\n")
	urls, err := ReadURLsFromFile(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"http://example.com/a", "http://example.com/b"}, urls)
}

func TestReadURLsFromFile_SkipsBlanksAndComments(t *testing.T) {
	path := writeTempFile(t, "\n# comment\nhttp://example.com/a\n   \n  http://example.com/b  \n")
	urls, err := ReadURLsFromFile(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"http://example.com/a", "http://example.com/b"}, urls)
}

func TestReadURLsFromFile_KeepsMalformedLines(t *testing.T) {
	path := writeTempFile(t, "not a url at all\nfoo:\n")
	urls, err := ReadURLsFromFile(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"not a url at all", "foo:"}, urls)
}

func TestReadURLsFromFile_NotFound(t *testing.T) {
	_, err := ReadURLsFromFile(filepath.Join(t.TempDir(), "absent.txt"), zerolog.Nop())
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestReadURLsFromFile_Directory(t *testing.T) {
	_, err := ReadURLsFromFile(t.TempDir(), zerolog.Nop())
	assert.ErrorIs(t, err, ErrReadingFile)
}

func TestReadURLsFromFile_Empty(t *testing.T) {
	path := writeTempFile(t, "\n# only comments\n\n")
	_, err := ReadURLsFromFile(path, zerolog.Nop())
	assert.ErrorIs(t, err, ErrFileEmpty)
}

func TestReadURLs(t *testing.T) {
	urls, err := ReadURLs(strings.NewReader("a\n\n#skip\nb"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, urls)
}

func TestReadURLs_EmptyStream(t *testing.T) {
	urls, err := ReadURLs(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, urls)
}
