package schedule

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// courseSeparator splits the course name from its section suffix ("Analisi - A").
const courseSeparator = "-"

// headerToken is the column title that leaks into the data when an export
// carries a longer header than usual.
const headerToken = "insegnamento"

// NewCaser returns the title caser used to compare course names. Casers keep
// state between calls, so each enumeration gets its own.
func NewCaser() cases.Caser {
	return cases.Title(language.Italian)
}

// TitleCase applies the course normalization to s.
func TitleCase(s string) string {
	return NewCaser().String(s)
}

func courseName(raw string, caser cases.Caser) string {
	name := strings.TrimSpace(strings.SplitN(raw, courseSeparator, 2)[0])
	if name == "" {
		return ""
	}
	return caser.String(name)
}

// Course derives the normalized course name of the row using caser.
func (r Row) Course(caser cases.Caser) string {
	return courseName(r.RawCourse(), caser)
}

// CourseName derives the normalized course name from a raw course column.
func CourseName(raw string) string {
	return courseName(raw, NewCaser())
}

// ListCourses returns the distinct course names of the schedule, sorted.
func ListCourses(rows []Row) []string {
	caser := NewCaser()
	seen := make(map[string]bool)
	var courses []string

	for _, row := range rows {
		if !row.HasCourse() {
			continue
		}
		name := strings.TrimSpace(strings.SplitN(row.RawCourse(), courseSeparator, 2)[0])
		if name == "" || strings.EqualFold(name, headerToken) {
			continue
		}
		name = caser.String(name)
		if !seen[name] {
			seen[name] = true
			courses = append(courses, name)
		}
	}

	sort.Strings(courses)
	return courses
}

// ListRooms returns the distinct normalized rooms used by the given course, sorted.
func ListRooms(rows []Row, subject string, normalize func(string) string) []string {
	caser := NewCaser()
	seen := make(map[string]bool)
	var rooms []string

	for _, row := range rows {
		if !row.Usable() {
			continue
		}
		if row.Course(caser) != subject {
			continue
		}
		room := normalize(strings.TrimSpace(row.RawLocation()))
		if !seen[room] {
			seen[room] = true
			rooms = append(rooms, room)
		}
	}

	sort.Strings(rooms)
	return rooms
}
