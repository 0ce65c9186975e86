package store

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"img.0.jpg,1.5,2.5,3.5",
		"img.1.jpg,0.000000,1.000000,2.000000",
	}, "\n")

	records, err := ReadCSV(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ID != "img.0.jpg" || len(records[0].Vector) != 3 {
		t.Fatalf("record[0] = %+v", records[0])
	}
	if records[0].Vector[1] != 2.5 {
		t.Fatalf("record[0].Vector[1] = %v, want 2.5", records[0].Vector[1])
	}
}

func TestReadCSV_MalformedTokens(t *testing.T) {
	// A bad token is skipped with a diagnostic; the rest of the line and the
	// rest of the file still load. A line with no parsable values is dropped.
	input := strings.Join([]string{
		"img.0.jpg,1.0,oops,3.0",
		"img.1.jpg,not,numbers",
		"img.2.jpg,9.0",
	}, "\n")

	var warnings []string
	records, err := ReadCSV(strings.NewReader(input), func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	})
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if len(records[0].Vector) != 2 {
		t.Fatalf("record[0] has %d values, want 2 after skipping bad token", len(records[0].Vector))
	}
	if records[1].ID != "img.2.jpg" {
		t.Fatalf("record[1].ID = %q, want img.2.jpg", records[1].ID)
	}
	if len(warnings) != 4 {
		t.Fatalf("got %d warnings, want 4: %v", len(warnings), warnings)
	}
}

func TestWriteReadCSV_RoundTrip(t *testing.T) {
	records := []Record{
		{ID: "img.0.jpg", Vector: []float32{120, 130.5, 125}},
		{ID: "img.1.jpg", Vector: []float32{-1.25, 0}},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	got, err := ReadCSV(&buf, nil)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("got %d records, want %d", len(got), len(records))
	}
	for i := range records {
		if got[i].ID != records[i].ID {
			t.Fatalf("record[%d].ID = %q, want %q", i, got[i].ID, records[i].ID)
		}
		for j := range records[i].Vector {
			if got[i].Vector[j] != records[i].Vector[j] {
				t.Fatalf("record[%d].Vector[%d] = %v, want %v", i, j, got[i].Vector[j], records[i].Vector[j])
			}
		}
	}
}
