// Package document loads and saves plain text files as line slices.
package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Load reads path into lines. A missing, empty or unreadable file yields a
// single empty line; only a directory is rejected. A final line terminator
// does not produce an extra empty line, and CRLF endings are read as LF.
func Load(path string) ([]string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("path", path).Msg("new file")
		return []string{""}, nil
	}
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("unreadable file, starting empty")
		return []string{""}, nil
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("unreadable file, starting empty")
		return []string{""}, nil
	}
	return Split(string(data)), nil
}

// Split turns file content into lines.
func Split(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Join is the inverse of Split: every line is followed by "\n".
func Join(lines []string) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Save writes lines to path atomically (temp file then rename). An existing
// file keeps its mode; a new one gets 0644. An existing file that cannot be
// read is never overwritten, since Load would have started it empty.
func Save(path string, lines []string) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("refusing to overwrite unreadable %s: %w", path, err)
		}
		_ = f.Close()
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.WriteString(Join(lines)); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Chmod(mode); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	log.Info().Str("path", path).Int("lines", len(lines)).Msg("saved")
	return nil
}
