package mapstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// readMap loads a JSON object of strings. Missing or corrupt files yield an
// empty map: persisted names are a convenience and never block the user.
func readMap(path string) map[string]string {
	m := make(map[string]string)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn("could not read map, starting empty", "path", path, "err", err)
		}
		return m
	}

	if err := json.Unmarshal(data, &m); err != nil {
		log.Warn("map file is corrupt, starting empty", "path", path, "err", err)
		return make(map[string]string)
	}
	if m == nil {
		m = make(map[string]string)
	}

	return m
}

// writeMap replaces the file at path with m as indented JSON.
func writeMap(path string, m map[string]string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for %s: %w", path, err)
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to serialize map: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write map file: %w", err)
	}

	log.Debug("map saved", "path", path, "entries", len(m))
	return nil
}
