// Package envfile parses KEY=VALUE environment files and merges them into a
// single environment for a spawned process. Merge order is explicit files
// first in listed order, then directory-discovered files in lexicographic
// filename order; later files win on key conflict.
package envfile

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lvim-tech/qlaunch/pkg/log"
	"github.com/lvim-tech/qlaunch/pkg/utils"
)

// Parse reads KEY=VALUE lines from data. Blank lines and lines beginning
// with '#' are skipped. Keys must start with a letter or underscore.
// Surrounding single or double quotes are stripped from values; nothing
// else is interpreted (no nested variable expansion).
func Parse(data []byte) map[string]string {
	vars := make(map[string]string)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if !validKey(key) {
			continue
		}

		// Махни обграждащите кавички
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		vars[key] = value
	}

	return vars
}

// ParseFile parses a single env file from disk.
func ParseFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(utils.ExpandPath(path))
	if err != nil {
		return nil, err
	}
	return Parse(data), nil
}

// Assemble merges the given env files into one key/value environment.
// Explicit files are processed in listed order, then dirFiles (already
// discovered and ordered by the caller). Later files override earlier keys.
// Missing files are a non-fatal warning; assembly continues and the paths
// are returned for reporting.
func Assemble(explicit []string, dirFiles []string) (map[string]string, []string) {
	merged := make(map[string]string)
	var missing []string

	for _, path := range append(append([]string{}, explicit...), dirFiles...) {
		vars, err := ParseFile(path)
		if err != nil {
			log.Warn("env file not found, skipping", "path", path, "error", err)
			missing = append(missing, path)
			continue
		}
		for k, v := range vars {
			merged[k] = v
		}
	}

	return merged, missing
}

// ScanDir returns dotenv-style files directly inside dir, sorted by
// filename. The scan is single-level; subdirectories are not descended.
// A missing or unreadable directory yields no files.
func ScanDir(dir string) []string {
	if dir == "" {
		return nil
	}
	dir = utils.ExpandPath(dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsEnvFile(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return filepath.Base(files[i]) < filepath.Base(files[j])
	})

	return files
}

// IsEnvFile matches dotenv naming: ".env", "*.env" and "*.env.*".
func IsEnvFile(name string) bool {
	return name == ".env" || strings.HasSuffix(name, ".env") || strings.Contains(name, ".env.")
}

// validKey проверява KEY формата: [A-Za-z_][A-Za-z0-9_]*
func validKey(key string) bool {
	if key == "" {
		return false
	}
	for i, c := range key {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
