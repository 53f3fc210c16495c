package schedule

// Field positions inside a data row of the schedule export.
const (
	colDate      = 0
	colTimeRange = 1
	colCourse    = 2
	colLocation  = 5
)

// Row is a single data line of the schedule export, split on ';'.
// Example: ["01-03-2024", "10:00 - 12:00", "Analisi Matematica - A", "x", "y", "[Sede Test (Piano Terra)] Aula 5"]
type Row []string

func (r Row) field(i int) string {
	if i >= len(r) {
		return ""
	}
	return r[i]
}

// Date returns the raw date column, e.g. "01-03-2024".
func (r Row) Date() string { return r.field(colDate) }

// TimeRange returns the raw time column, e.g. "10:00 - 12:00".
func (r Row) TimeRange() string { return r.field(colTimeRange) }

// RawCourse returns the raw course column, e.g. "Analisi Matematica - A".
func (r Row) RawCourse() string { return r.field(colCourse) }

// RawLocation returns the free-text location column.
func (r Row) RawLocation() string { return r.field(colLocation) }

// HasCourse reports whether the row is long enough to carry a course name.
func (r Row) HasCourse() bool { return len(r) > colCourse }

// Usable reports whether the row carries every column needed to build an event.
func (r Row) Usable() bool { return len(r) > colLocation }
