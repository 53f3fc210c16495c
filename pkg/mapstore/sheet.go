package mapstore

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
)

// SheetEntry is one line of a room sheet, the spreadsheet-friendly view of a room map.
type SheetEntry struct {
	Room    string `csv:"room"`
	Display string `csv:"display"`
}

// SheetEntries lists rooms with their current display name, falling back to
// the room itself when no name is stored.
func SheetEntries(rooms []string, roomMap map[string]string) []*SheetEntry {
	entries := make([]*SheetEntry, 0, len(rooms))
	for _, room := range rooms {
		display, ok := roomMap[room]
		if !ok {
			display = room
		}
		entries = append(entries, &SheetEntry{Room: room, Display: display})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Room < entries[j].Room })
	return entries
}

// WriteSheet writes entries as CSV with a "room,display" header.
func WriteSheet(w io.Writer, entries []*SheetEntry) error {
	if err := gocsv.Marshal(entries, w); err != nil {
		return fmt.Errorf("failed to write room sheet: %w", err)
	}
	return nil
}

// ReadSheet parses a room sheet into a partial room map. Rows without a room
// or without a display name are ignored.
func ReadSheet(r io.Reader) (map[string]string, error) {
	var entries []*SheetEntry
	if err := gocsv.Unmarshal(r, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse room sheet: %w", err)
	}

	partial := make(map[string]string, len(entries))
	for _, e := range entries {
		room := strings.TrimSpace(e.Room)
		display := strings.TrimSpace(e.Display)
		if room == "" || display == "" {
			continue
		}
		partial[room] = display
	}
	return partial, nil
}
