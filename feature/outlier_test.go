package feature

import (
	"testing"
)

func TestRemoveOutliers(t *testing.T) {
	tests := []struct {
		name   string
		values []interface{}
		low    float64
		high   float64
		want   []interface{}
	}{
		{
			"bounds are exclusive",
			[]interface{}{int64(-1), int64(0), int64(5), int64(10), int64(11)},
			0, 10,
			[]interface{}{int64(5)},
		},
		{
			"all inside",
			[]interface{}{int64(1), int64(2), int64(3)},
			0, 10,
			[]interface{}{int64(1), int64(2), int64(3)},
		},
		{
			"all outside",
			[]interface{}{int64(-5), int64(20)},
			0, 10,
			[]interface{}{},
		},
		{
			"floats near bounds",
			[]interface{}{0.0001, 9.9999, 10.0},
			0, 10,
			[]interface{}{0.0001, 9.9999},
		},
		{
			"numeric strings parse",
			[]interface{}{"5", "15"},
			0, 10,
			[]interface{}{"5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([]map[string]interface{}, 0, len(tt.values))
			for _, v := range tt.values {
				rows = append(rows, map[string]interface{}{"X": v})
			}

			got, err := RemoveOutliers(rows, "X", tt.low, tt.high)
			if err != nil {
				t.Fatalf("RemoveOutliers() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("RemoveOutliers() kept %d rows, want %d", len(got), len(tt.want))
			}
			for i, w := range tt.want {
				if got[i]["X"] != w {
					t.Errorf("row %d = %v, want %v", i, got[i]["X"], w)
				}
			}
		})
	}
}

func TestRemoveOutliers_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows []map[string]interface{}
	}{
		{"missing column", []map[string]interface{}{{"Y": int64(5)}}},
		{"non-numeric cell", []map[string]interface{}{{"X": "not a number"}}},
		{"nil cell", []map[string]interface{}{{"X": nil}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RemoveOutliers(tt.rows, "X", 0, 10); err == nil {
				t.Error("RemoveOutliers() expected error, got nil")
			}
		})
	}
}
