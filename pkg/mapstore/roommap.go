package mapstore

import (
	"fmt"
	"os"
	"path/filepath"
)

// RoomMapFile is the name of the installation-wide room map.
const RoomMapFile = "room_map.json"

// DefaultRoomMapPath returns ~/.roomrenamer/room_map.json.
func DefaultRoomMapPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".roomrenamer", RoomMapFile), nil
}

// RoomStore persists the mapping from raw location labels to display names.
// It is shared by every schedule the user opens.
type RoomStore struct {
	Path string
}

// NewRoomStore returns a store backed by path.
func NewRoomStore(path string) *RoomStore {
	return &RoomStore{Path: path}
}

// Load returns the persisted room map, or an empty map.
func (s *RoomStore) Load() map[string]string {
	return readMap(s.Path)
}

// Merge overlays partial on the persisted map, writes the result back and
// returns the merged map along with the path written to. Entries not named
// in partial are left alone.
func (s *RoomStore) Merge(partial map[string]string) (map[string]string, string, error) {
	merged := readMap(s.Path)
	for k, v := range partial {
		merged[k] = v
	}

	if err := writeMap(s.Path, merged); err != nil {
		return nil, "", err
	}
	return merged, s.Path, nil
}
