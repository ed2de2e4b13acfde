package feature

import (
	"sort"
	"testing"
)

func TestColumnNames(t *testing.T) {
	rows := []map[string]interface{}{
		{"a": 1, "b": 2},
		{"b": 3, "c": 4},
	}

	got := ColumnNames(rows)
	sort.Strings(got)

	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("ColumnNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ColumnNames() = %v, want %v", got, want)
			break
		}
	}
}

func TestColumnNames_Empty(t *testing.T) {
	if got := ColumnNames(nil); got != nil {
		t.Errorf("ColumnNames(nil) = %v, want nil", got)
	}
}

func TestNaNRecords(t *testing.T) {
	complete := map[string]interface{}{"a": int64(1), "b": "x"}
	nilCell := map[string]interface{}{"a": nil, "b": "y"}
	missingKey := map[string]interface{}{"a": int64(2)} // no "b"

	rows := []map[string]interface{}{complete, nilCell, missingKey}

	got := NaNRecords(rows)
	if len(got) != 2 {
		t.Fatalf("NaNRecords() returned %d rows, want 2", len(got))
	}
	if got[0]["b"] != "y" {
		t.Errorf("first selected row = %v, want the nil-cell row", got[0])
	}
	if got[1]["a"] != int64(2) {
		t.Errorf("second selected row = %v, want the missing-key row", got[1])
	}
}

func TestNaNRecords_NoneMissing(t *testing.T) {
	rows := []map[string]interface{}{
		{"a": int64(1), "b": "x"},
		{"a": int64(2), "b": "y"},
	}
	if got := NaNRecords(rows); len(got) != 0 {
		t.Errorf("NaNRecords() returned %d rows, want 0", len(got))
	}
}

func TestNaNRecords_BlankPlaceholderIsNotMissing(t *testing.T) {
	// The " " placeholder from address extraction is a value, not a gap
	rows := []map[string]interface{}{
		{"Street": " ", "Intersection": " "},
	}
	if got := NaNRecords(rows); len(got) != 0 {
		t.Errorf("NaNRecords() selected the placeholder row, want none")
	}
}
