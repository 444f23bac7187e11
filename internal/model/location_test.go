package model

import "testing"

func TestLocation_Distance(t *testing.T) {
	tests := []struct {
		name string
		a, b Location
		want int32
	}{
		{"same tile", NewLocation(5, 5), NewLocation(5, 5), 0},
		{"horizontal", NewLocation(0, 0), NewLocation(3, 0), 3},
		{"vertical", NewLocation(0, 0), NewLocation(0, -4), 4},
		{"diagonal is taxicab", NewLocation(65, 66), NewLocation(70, 68), 7},
		{"negative coordinates", NewLocation(-2, -3), NewLocation(2, 3), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Distance(tt.b); got != tt.want {
				t.Errorf("Distance() = %d, want %d", got, tt.want)
			}
			if got := tt.b.Distance(tt.a); got != tt.want {
				t.Errorf("reverse Distance() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLocation_WithCoordinates(t *testing.T) {
	loc := NewLocation(1, 2)
	moved := loc.WithCoordinates(3, 4)

	if loc != NewLocation(1, 2) {
		t.Errorf("original mutated: %+v", loc)
	}
	if moved != NewLocation(3, 4) {
		t.Errorf("WithCoordinates() = %+v, want {3 4}", moved)
	}
}
