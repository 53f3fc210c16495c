package schedule

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const header = "Università degli Studi\nCorso di Laurea\n\nAnno 2024\nData;Orario;Insegnamento;Docente;Tipo;Aula\n;;;;;\n"

func TestParseSkipsHeader(t *testing.T) {
	input := header +
		"01-03-2024;10:00 - 12:00;Analisi Matematica - A;x;y;[Sede Test (Piano Terra)] Aula 5\n" +
		"02-03-2024;09:00 - 11:00\n"

	rows, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %+v", len(rows), rows)
	}

	first := rows[0]
	if first.Date() != "01-03-2024" || first.TimeRange() != "10:00 - 12:00" {
		t.Errorf("unexpected date/time fields: %+v", first)
	}
	if first.RawLocation() != "[Sede Test (Piano Terra)] Aula 5" {
		t.Errorf("unexpected location %q", first.RawLocation())
	}
	if !first.Usable() {
		t.Errorf("expected first row to be usable")
	}

	second := rows[1]
	if second.Usable() || second.HasCourse() {
		t.Errorf("expected short row to be unusable: %+v", second)
	}
	if second.RawLocation() != "" {
		t.Errorf("expected missing location to be empty, got %q", second.RawLocation())
	}
}

func TestParseHeaderIsNotInspected(t *testing.T) {
	// Header lines with stray quotes and data-like content are still discarded.
	input := "\"broken\n01-01-2024;08:00 - 09:00;Fake;x;y;z\n\n\n\n\n" +
		"05-03-2024;14:00 - 16:00;Fisica - B;x;y;Aula 12\n"

	rows, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []Row{{"05-03-2024", "14:00 - 16:00", "Fisica - B", "x", "y", "Aula 12"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Got: %+v\nExpected: %+v", rows, want)
	}
}

func TestParseShortFile(t *testing.T) {
	rows, err := Parse(strings.NewReader("only\ntwo lines"))
	if err != nil {
		t.Fatalf("expected no error for a short file, got: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %+v", rows)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("utf8 with bom", func(t *testing.T) {
		path := filepath.Join(dir, "bom.csv")
		content := "\xEF\xBB\xBF" + header + "01-03-2024;10:00 - 12:00;Chimica;x;y;Aula 1\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		rows, err := ParseFile(path)
		if err != nil {
			t.Fatalf("ParseFile failed: %v", err)
		}
		if len(rows) != 1 || rows[0].RawCourse() != "Chimica" {
			t.Errorf("unexpected rows: %+v", rows)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ParseFile(filepath.Join(dir, "nope.csv"))
		if !errors.Is(err, ErrRead) {
			t.Errorf("expected ErrRead, got %v", err)
		}
	})

	t.Run("invalid utf8", func(t *testing.T) {
		path := filepath.Join(dir, "latin1.csv")
		if err := os.WriteFile(path, []byte(header+"01-03-2024;10:00 - 12:00;Universit\xe0;x;y;z\n"), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		_, err := ParseFile(path)
		if !errors.Is(err, ErrRead) {
			t.Errorf("expected ErrRead for undecodable file, got %v", err)
		}
	})
}
