package output

import (
	"bytes"
	"testing"
)

func TestCSVFormatter(t *testing.T) {
	rows := []map[string]interface{}{
		{"Category": "A", "Day": int64(1), "Count": int64(2)},
		{"Category": "B", "Day": int64(1), "Count": int64(1)},
	}

	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)
	if err := formatter.Format(rows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "Category,Day,Count\nA,1,2\nB,1,1\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestCSVFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)
	if err := formatter.Format(nil); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Format() wrote %q for empty input, want nothing", buf.String())
	}
}

func TestCSVFormatter_SparseRows(t *testing.T) {
	// Pivot tables carry different keys per row; missing cells render empty
	rows := []map[string]interface{}{
		{"Category": "ASSAULT", "MAIN ST": int64(1)},
		{"Category": "THEFT", "MAIN ST": int64(2), "OAK AVE": int64(1)},
	}

	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)
	if err := formatter.Format(rows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "Category,MAIN ST,OAK AVE\nASSAULT,1,\nTHEFT,2,1\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestCSVFormatter_NilCell(t *testing.T) {
	rows := []map[string]interface{}{
		{"Month": int64(13), "Season": nil},
	}

	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)
	if err := formatter.Format(rows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "Month,Season\n13,\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestCSVFormatter_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	formatter := NewCSVFormatter(&first)
	formatter.SetOutput(&second)

	rows := []map[string]interface{}{{"a": int64(1)}}
	if err := formatter.Format(rows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if first.Len() != 0 {
		t.Error("Format() wrote to the replaced writer")
	}
	if second.Len() == 0 {
		t.Error("Format() wrote nothing to the new writer")
	}
}
