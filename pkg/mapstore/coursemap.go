package mapstore

import (
	"errors"
	"path/filepath"
	"strings"
)

// courseMapSuffix is appended to the schedule's base name to build the sidecar name.
const courseMapSuffix = "_course_map.json"

// ErrNoSchedule is returned when a course map is saved without a schedule to sit next to.
var ErrNoSchedule = errors.New("no schedule loaded")

// CourseMapPath returns the sidecar path for a schedule, e.g.
// "lezioni.csv" -> "lezioni_course_map.json".
func CourseMapPath(schedulePath string) string {
	return strings.TrimSuffix(schedulePath, filepath.Ext(schedulePath)) + courseMapSuffix
}

// LoadCourseMap returns the course name overrides stored next to the schedule.
func LoadCourseMap(schedulePath string) map[string]string {
	if schedulePath == "" {
		return make(map[string]string)
	}
	return readMap(CourseMapPath(schedulePath))
}

// SaveCourseMap replaces the sidecar of the schedule with m.
func SaveCourseMap(schedulePath string, m map[string]string) (string, error) {
	if schedulePath == "" {
		return "", ErrNoSchedule
	}

	path := CourseMapPath(schedulePath)
	if m == nil {
		m = map[string]string{}
	}
	if err := writeMap(path, m); err != nil {
		return "", err
	}
	return path, nil
}
