package exporter

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"roomrenamer/pkg/schedule"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const (
	// DefaultProductID identifies the generator in the PRODID line.
	DefaultProductID = "-//RoomRenamerApp//IT"
	// DefaultUIDDomain is appended to every event UID.
	DefaultUIDDomain = "roomrenamer.local"

	dateLayout  = "02-01-2006 15:04"
	stampLayout = "20060102T150405"
)

// Options carries everything the generator looks up while building events.
type Options struct {
	// Normalize turns a raw location column into a room name.
	Normalize func(raw string) string
	// CourseMap overrides the course name per normalized room.
	CourseMap map[string]string
	ProductID string
	UIDDomain string
	// NewUID is called once per event; defaults to random UUIDs.
	NewUID func() string
}

// Lesson is a single resolved class session.
type Lesson struct {
	Course string
	Room   string
	Start  time.Time
	End    time.Time
}

// Summary is the event title shown in calendar clients.
func (l Lesson) Summary() string {
	return strings.TrimSpace(fmt.Sprintf("%s - %s", l.Course, l.Room))
}

// Lessons resolves the rows of subject into lessons. Rows with a bad date or
// time range are dropped without notice.
func Lessons(rows []schedule.Row, subject string, opts Options) []Lesson {
	caser := schedule.NewCaser()
	var lessons []Lesson

	for _, row := range rows {
		if !row.Usable() {
			continue
		}
		if row.Course(caser) != subject {
			continue
		}

		start, end, ok := parseSlot(strings.TrimSpace(row.Date()), strings.TrimSpace(row.TimeRange()))
		if !ok {
			continue
		}

		room := strings.TrimSpace(row.RawLocation())
		if opts.Normalize != nil {
			room = opts.Normalize(room)
		}

		course := subject
		if name, ok := opts.CourseMap[room]; ok {
			course = name
		}

		lessons = append(lessons, Lesson{Course: course, Room: room, Start: start, End: end})
	}

	return lessons
}

// parseSlot parses "01-03-2024" and "10:00 - 12:00" into wall-clock times.
func parseSlot(date, timeRange string) (time.Time, time.Time, bool) {
	parts := strings.Split(timeRange, "-")
	startStr := strings.TrimSpace(parts[0])
	endStr := ""
	if len(parts) > 1 {
		endStr = strings.TrimSpace(parts[1])
	}

	start, err := time.Parse(dateLayout, fmt.Sprintf("%s %s", date, startStr))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(dateLayout, fmt.Sprintf("%s %s", date, endStr))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// Generate builds the calendar document for subject. Times are written as
// floating local times, without a zone or "Z" suffix.
func Generate(rows []schedule.Row, subject string, opts Options) string {
	productID := opts.ProductID
	if productID == "" {
		productID = DefaultProductID
	}
	domain := opts.UIDDomain
	if domain == "" {
		domain = DefaultUIDDomain
	}
	newUID := opts.NewUID
	if newUID == nil {
		newUID = uuid.NewString
	}

	cal := ics.NewCalendar()
	cal.SetProductId(productID)

	for _, l := range Lessons(rows, subject, opts) {
		event := cal.AddEvent(fmt.Sprintf("%s@%s", newUID(), domain))
		event.SetSummary(l.Summary())
		event.SetProperty(ics.ComponentPropertyDtStart, l.Start.Format(stampLayout))
		event.SetProperty(ics.ComponentPropertyDtEnd, l.End.Format(stampLayout))
	}

	return strings.TrimRight(strings.ReplaceAll(cal.Serialize(), "\r\n", "\n"), "\n")
}

// DefaultOutputPath derives the calendar path from the schedule path, e.g.
// "lezioni.csv" + "Analisi Matematica" -> "lezioni_Analisi_Matematica.ics".
func DefaultOutputPath(schedulePath, subject string) string {
	base := strings.TrimSuffix(schedulePath, filepath.Ext(schedulePath))
	return fmt.Sprintf("%s_%s.ics", base, strings.ReplaceAll(subject, " ", "_"))
}
