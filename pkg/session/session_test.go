package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"roomrenamer/pkg/mapstore"
)

const fixture = `Università degli Studi
Calendario lezioni
Anno accademico 2023/2024

Data;Orario;Insegnamento;Docente;Tipo;Aula
;;;;;
01-03-2024;10:00 - 12:00;Analisi Matematica - A;Rossi;Lezione;[Sede Test (Piano Terra)] Aula 5
04-03-2024;14:00 - 16:00;analisi matematica - B;Rossi;Lezione;[C.Didat.Morgagni (Piano Terra)] Auditorium A
05-03-2024;25:99 - x;Analisi Matematica - A;Rossi;Lezione;[Sede Test (Piano Terra)] Aula 5
06-03-2024;09:00 - 11:00;Fisica - A;Bianchi;Lezione;Aula 12
INSEGNAMENTO;x;Insegnamento
`

type testEnv struct {
	dir          string
	schedulePath string
	roomMapPath  string
}

func newEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()
	env := testEnv{
		dir:          dir,
		schedulePath: filepath.Join(dir, "lezioni.csv"),
		roomMapPath:  filepath.Join(dir, "config", mapstore.RoomMapFile),
	}
	if err := os.WriteFile(env.schedulePath, []byte(fixture), 0644); err != nil {
		t.Fatalf("failed to write schedule fixture: %v", err)
	}
	return env
}

func newSession(t *testing.T, env testEnv) *Session {
	t.Helper()
	n := 0
	s, err := New(Options{
		RoomStore: mapstore.NewRoomStore(env.roomMapPath),
		NewUID: func() string {
			n++
			return fmt.Sprintf("test-%d", n)
		},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestSessionEndToEnd(t *testing.T) {
	env := newEnv(t)
	if _, _, err := mapstore.NewRoomStore(env.roomMapPath).Merge(map[string]string{"Sede Test": "ST", "C.Didat.Morgagni": "CDm"}); err != nil {
		t.Fatalf("failed to seed room map: %v", err)
	}

	s := newSession(t, env)
	if err := s.LoadSchedule(env.schedulePath); err != nil {
		t.Fatalf("LoadSchedule failed: %v", err)
	}

	courses := s.ListCourses()
	if want := []string{"Analisi Matematica", "Fisica"}; !reflect.DeepEqual(courses, want) {
		t.Errorf("Got courses: %+v\nExpected: %+v", courses, want)
	}

	rooms := s.ListRoomsForCourse("Analisi Matematica")
	if want := []string{"CDm Aud A", "ST 5"}; !reflect.DeepEqual(rooms, want) {
		t.Errorf("Got rooms: %+v\nExpected: %+v", rooms, want)
	}

	doc := s.Calendar("Analisi Matematica")
	for _, line := range []string{
		"SUMMARY:Analisi Matematica - ST 5",
		"DTSTART:20240301T100000",
		"DTEND:20240301T120000",
		"SUMMARY:Analisi Matematica - CDm Aud A",
		"DTSTART:20240304T140000",
	} {
		if !strings.Contains(doc, line) {
			t.Errorf("expected calendar to contain %q, got:\n%s", line, doc)
		}
	}
	if n := strings.Count(doc, "BEGIN:VEVENT"); n != 2 {
		t.Errorf("expected 2 events, got %d", n)
	}
}

func TestSessionExportDefaultPath(t *testing.T) {
	env := newEnv(t)
	s := newSession(t, env)
	if err := s.LoadSchedule(env.schedulePath); err != nil {
		t.Fatalf("LoadSchedule failed: %v", err)
	}

	path, err := s.ExportCalendar("Analisi Matematica", "")
	if err != nil {
		t.Fatalf("ExportCalendar failed: %v", err)
	}
	if want := filepath.Join(env.dir, "lezioni_Analisi_Matematica.ics"); path != want {
		t.Errorf("expected %s, got %s", want, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read exported calendar: %v", err)
	}
	if !strings.Contains(string(data), "SUMMARY:Analisi Matematica - Sede Test 5") {
		t.Errorf("unexpected calendar contents:\n%s", data)
	}
}

func TestSessionExportExplicitPath(t *testing.T) {
	env := newEnv(t)
	s := newSession(t, env)

	// Works without a schedule: the document is just empty.
	dest := filepath.Join(env.dir, "out.ics")
	path, err := s.ExportCalendar("Fisica", dest)
	if err != nil {
		t.Fatalf("ExportCalendar failed: %v", err)
	}
	if path != dest {
		t.Errorf("expected %s, got %s", dest, path)
	}
}

func TestSessionExportErrors(t *testing.T) {
	env := newEnv(t)
	s := newSession(t, env)

	if _, err := s.ExportCalendar("Fisica", ""); !errors.Is(err, ErrDestinationUnresolved) {
		t.Errorf("expected ErrDestinationUnresolved, got %v", err)
	}

	entries, _ := os.ReadDir(env.dir)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".ics") {
			t.Errorf("expected no calendar file, found %s", e.Name())
		}
	}

	dest := filepath.Join(env.dir, "missing-dir", "out.ics")
	if _, err := s.ExportCalendar("Fisica", dest); !errors.Is(err, ErrWrite) {
		t.Errorf("expected ErrWrite, got %v", err)
	}
}

func TestSessionLoadScheduleFailureKeepsState(t *testing.T) {
	env := newEnv(t)
	s := newSession(t, env)
	if err := s.LoadSchedule(env.schedulePath); err != nil {
		t.Fatalf("LoadSchedule failed: %v", err)
	}

	err := s.LoadSchedule(filepath.Join(env.dir, "missing.csv"))
	if !errors.Is(err, ErrSourceRead) {
		t.Fatalf("expected ErrSourceRead, got %v", err)
	}
	if s.SchedulePath() != env.schedulePath || len(s.ListCourses()) != 2 {
		t.Errorf("expected previous schedule to stay loaded")
	}
}

func TestSessionRoomMap(t *testing.T) {
	env := newEnv(t)
	if _, _, err := mapstore.NewRoomStore(env.roomMapPath).Merge(map[string]string{"Old": "kept"}); err != nil {
		t.Fatalf("failed to seed room map: %v", err)
	}

	s := newSession(t, env)
	if err := s.LoadSchedule(env.schedulePath); err != nil {
		t.Fatalf("LoadSchedule failed: %v", err)
	}

	if got := s.DisplayRoomName("Sede Test 5"); got != "Sede Test 5" {
		t.Errorf("expected unmapped room to display as itself, got %q", got)
	}

	path, err := s.UpdateRoomMap(map[string]string{"Sede Test": "ST", "Sede Test 5": "Sala Cinque"})
	if err != nil {
		t.Fatalf("UpdateRoomMap failed: %v", err)
	}
	if path != env.roomMapPath {
		t.Errorf("expected write to %s, got %s", env.roomMapPath, path)
	}

	if got := s.DisplayRoomName("Sede Test 5"); got != "Sala Cinque" {
		t.Errorf("expected stored display name, got %q", got)
	}
	// Location abbreviations take effect immediately.
	if rooms := s.ListRoomsForCourse("Analisi Matematica"); !reflect.DeepEqual(rooms, []string{"C.Didat.Morgagni Aud A", "ST 5"}) {
		t.Errorf("unexpected rooms after update: %+v", rooms)
	}

	// A fresh session sees the merged map.
	reloaded := newSession(t, env).RoomMap()
	want := map[string]string{"Old": "kept", "Sede Test": "ST", "Sede Test 5": "Sala Cinque"}
	if !reflect.DeepEqual(reloaded, want) {
		t.Errorf("Got: %+v\nExpected: %+v", reloaded, want)
	}
}

func TestSessionCourseMap(t *testing.T) {
	env := newEnv(t)
	s := newSession(t, env)

	if _, err := s.UpdateCourseMap(map[string]string{"a": "b"}); !errors.Is(err, ErrDestinationUnresolved) {
		t.Errorf("expected ErrDestinationUnresolved without schedule, got %v", err)
	}

	if err := s.LoadSchedule(env.schedulePath); err != nil {
		t.Fatalf("LoadSchedule failed: %v", err)
	}

	path, err := s.SetCourseName("Analisi Matematica", "Analisi I")
	if err != nil {
		t.Fatalf("SetCourseName failed: %v", err)
	}
	if path != mapstore.CourseMapPath(env.schedulePath) {
		t.Errorf("expected sidecar path, got %s", path)
	}

	want := map[string]string{"C.Didat.Morgagni Aud A": "Analisi I", "Sede Test 5": "Analisi I"}
	if got := s.CourseMap(); !reflect.DeepEqual(got, want) {
		t.Errorf("Got: %+v\nExpected: %+v", got, want)
	}

	if doc := s.Calendar("Analisi Matematica"); !strings.Contains(doc, "SUMMARY:Analisi I - Sede Test 5") {
		t.Errorf("expected course override in summary, got:\n%s", doc)
	}

	// Reloading the schedule picks the sidecar back up.
	other := newSession(t, env)
	if err := other.LoadSchedule(env.schedulePath); err != nil {
		t.Fatalf("LoadSchedule failed: %v", err)
	}
	if got := other.CourseMap(); !reflect.DeepEqual(got, want) {
		t.Errorf("Got: %+v\nExpected: %+v", got, want)
	}

	// Resetting the name clears the overrides of that course.
	if _, err := s.SetCourseName("Analisi Matematica", "Analisi Matematica"); err != nil {
		t.Fatalf("SetCourseName failed: %v", err)
	}
	if got := s.CourseMap(); len(got) != 0 {
		t.Errorf("expected overrides to be cleared, got %+v", got)
	}
}
