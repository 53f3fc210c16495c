package mapstore

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestSheetEntries(t *testing.T) {
	entries := SheetEntries([]string{"ST 5", "CDm 001"}, map[string]string{"ST 5": "Sala Cinque"})

	want := []*SheetEntry{
		{Room: "CDm 001", Display: "CDm 001"},
		{Room: "ST 5", Display: "Sala Cinque"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Got: %+v\nExpected: %+v", entries, want)
	}
}

func TestWriteSheet(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSheet(&buf, []*SheetEntry{{Room: "ST 5", Display: "Sala, Cinque"}})
	if err != nil {
		t.Fatalf("WriteSheet failed: %v", err)
	}

	output := buf.String()
	if !strings.HasPrefix(output, "room,display\n") {
		t.Errorf("expected CSV header, got:\n%s", output)
	}
	if !strings.Contains(output, `ST 5,"Sala, Cinque"`) {
		t.Errorf("expected quoted display name, got:\n%s", output)
	}
}

func TestReadSheet(t *testing.T) {
	input := "room,display\nST 5, Sala Cinque \nCDm 001,\n,orphan\n"

	got, err := ReadSheet(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}

	want := map[string]string{"ST 5": "Sala Cinque"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Got: %+v\nExpected: %+v", got, want)
	}
}
