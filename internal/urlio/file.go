// Package urlio reads URL lists from files and streams.
package urlio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var (
	ErrFileNotFound   = errors.New("file not found")
	ErrFilePermission = errors.New("file permission denied")
	ErrFileEmpty      = errors.New("file contains no URLs")
	ErrReadingFile    = errors.New("error reading file")
)

// ReadURLsFromFile reads URLs from a file, one per line. Blank lines and
// lines starting with '#' are skipped. Lines are passed through verbatim,
// whitespace-trimmed only; malformed URLs are still returned since the
// parser downstream never rejects input.
func ReadURLsFromFile(filePath string, logger zerolog.Logger) ([]string, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrFilePermission, filePath)
		}
		return nil, fmt.Errorf("%w: stat %s: %v", ErrReadingFile, filePath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrReadingFile, filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrFilePermission, filePath)
		}
		return nil, fmt.Errorf("%w: open %s: %v", ErrReadingFile, filePath, err)
	}
	defer file.Close()

	urls, err := ReadURLs(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadingFile, filePath, err)
	}
	if len(urls) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrFileEmpty, filePath)
	}

	logger.Debug().Str("file", filePath).Int("count", len(urls)).Msg("Loaded URLs from file")
	return urls, nil
}

// ReadURLs reads URLs from a stream, one per line, skipping blanks and
// '#'-prefixed comment lines.
func ReadURLs(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return urls, nil
}
