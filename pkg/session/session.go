// Package session holds the state of one editing session: the loaded
// schedule, the room map and the course map of that schedule. Front ends
// (CLI, TUI) drive it through plain string inputs and outputs.
package session

import (
	"errors"
	"fmt"
	"os"

	"roomrenamer/pkg/exporter"
	"roomrenamer/pkg/mapstore"
	"roomrenamer/pkg/rooms"
	"roomrenamer/pkg/schedule"

	"github.com/charmbracelet/log"
)

var (
	// ErrSourceRead is returned when the schedule cannot be opened or decoded.
	ErrSourceRead = schedule.ErrRead
	// ErrDestinationUnresolved is returned when there is neither an explicit
	// destination nor a loaded schedule to derive one from.
	ErrDestinationUnresolved = errors.New("no destination path and no schedule loaded")
	// ErrWrite is returned when an output file cannot be written.
	ErrWrite = errors.New("cannot write file")
)

// MapEditor is the mutation surface shared by every front end.
type MapEditor interface {
	UpdateRoomMap(partial map[string]string) (string, error)
	UpdateCourseMap(m map[string]string) (string, error)
}

var _ MapEditor = (*Session)(nil)

// Options configures a new session.
type Options struct {
	RoomStore  *mapstore.RoomStore
	Normalizer *rooms.Normalizer
	ProductID  string
	UIDDomain  string
	// NewUID overrides event UID generation.
	NewUID func() string
}

// Session is not safe for concurrent use; create one per caller.
type Session struct {
	store      *mapstore.RoomStore
	normalizer *rooms.Normalizer
	productID  string
	uidDomain  string
	newUID     func() string

	schedulePath string
	rows         []schedule.Row
	roomMap      map[string]string
	courseMap    map[string]string
}

// New creates a session and loads the persisted room map.
func New(opts Options) (*Session, error) {
	if opts.RoomStore == nil {
		return nil, errors.New("session needs a room store")
	}

	normalizer := opts.Normalizer
	if normalizer == nil {
		n, err := rooms.NewNormalizer()
		if err != nil {
			return nil, err
		}
		normalizer = n
	}

	s := &Session{
		store:      opts.RoomStore,
		normalizer: normalizer,
		productID:  opts.ProductID,
		uidDomain:  opts.UIDDomain,
		newUID:     opts.NewUID,
		roomMap:    opts.RoomStore.Load(),
		courseMap:  make(map[string]string),
	}
	return s, nil
}

// LoadSchedule parses the schedule at path and makes it current. On failure
// the previous state is kept.
func (s *Session) LoadSchedule(path string) error {
	rows, err := schedule.ParseFile(path)
	if err != nil {
		return err
	}

	s.rows = rows
	s.schedulePath = path
	s.roomMap = s.store.Load()
	s.courseMap = mapstore.LoadCourseMap(path)

	log.Debug("schedule loaded", "path", path, "rows", len(rows), "rooms", len(s.roomMap), "course_overrides", len(s.courseMap))
	return nil
}

// SchedulePath returns the path of the loaded schedule, or "".
func (s *Session) SchedulePath() string {
	return s.schedulePath
}

// ListCourses returns the sorted course names of the loaded schedule.
func (s *Session) ListCourses() []string {
	return schedule.ListCourses(s.rows)
}

// ListRoomsForCourse returns the sorted normalized rooms used by subject.
func (s *Session) ListRoomsForCourse(subject string) []string {
	return schedule.ListRooms(s.rows, subject, s.normalize)
}

// NormalizeRoom applies the location rules to a raw location string.
func (s *Session) NormalizeRoom(raw string) string {
	return s.normalize(raw)
}

func (s *Session) normalize(raw string) string {
	return s.normalizer.Normalize(raw, s.roomMap)
}

// DisplayRoomName returns the stored name of room, or room itself.
func (s *Session) DisplayRoomName(room string) string {
	if name, ok := s.roomMap[room]; ok {
		return name
	}
	return room
}

// RoomMap returns a copy of the current room map.
func (s *Session) RoomMap() map[string]string {
	return copyMap(s.roomMap)
}

// CourseMap returns a copy of the course map of the loaded schedule.
func (s *Session) CourseMap() map[string]string {
	return copyMap(s.courseMap)
}

// UpdateRoomMap merges partial into the room map and persists it.
func (s *Session) UpdateRoomMap(partial map[string]string) (string, error) {
	for k, v := range partial {
		s.roomMap[k] = v
	}
	return s.SaveRoomMap()
}

// SaveRoomMap merges the in-memory room map into the persisted one.
func (s *Session) SaveRoomMap() (string, error) {
	merged, path, err := s.store.Merge(s.roomMap)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWrite, err)
	}
	s.roomMap = merged
	return path, nil
}

// UpdateCourseMap replaces the course map of the loaded schedule and
// persists it next to the schedule.
func (s *Session) UpdateCourseMap(m map[string]string) (string, error) {
	if s.schedulePath == "" {
		return "", ErrDestinationUnresolved
	}

	next := copyMap(m)
	path, err := mapstore.SaveCourseMap(s.schedulePath, next)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWrite, err)
	}
	s.courseMap = next
	return path, nil
}

// SetCourseName stores name as the override for every room of subject.
// An empty name, or one equal to subject, clears the overrides instead.
func (s *Session) SetCourseName(subject, name string) (string, error) {
	next := copyMap(s.courseMap)
	for _, room := range s.ListRoomsForCourse(subject) {
		if name == "" || name == subject {
			delete(next, room)
			continue
		}
		next[room] = name
	}
	return s.UpdateCourseMap(next)
}

// Calendar renders the calendar document of subject without writing it.
func (s *Session) Calendar(subject string) string {
	return exporter.Generate(s.rows, subject, exporter.Options{
		Normalize: s.normalize,
		CourseMap: s.courseMap,
		ProductID: s.productID,
		UIDDomain: s.uidDomain,
		NewUID:    s.newUID,
	})
}

// ExportCalendar writes the calendar of subject to dest, or next to the
// loaded schedule when dest is empty, and returns the path written.
func (s *Session) ExportCalendar(subject, dest string) (string, error) {
	if dest == "" {
		if s.schedulePath == "" {
			return "", ErrDestinationUnresolved
		}
		dest = exporter.DefaultOutputPath(s.schedulePath, subject)
	}

	if err := os.WriteFile(dest, []byte(s.Calendar(subject)), 0644); err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrWrite, dest, err)
	}

	log.Debug("calendar exported", "subject", subject, "path", dest)
	return dest, nil
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
