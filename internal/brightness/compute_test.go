package brightness

import (
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		Description string
		Argument    string
		Current     int
		Max         int
		Want        int
	}{
		{"absolute in range", "300", 100, 500, 300},
		{"absolute clamps high", "900", 100, 500, 500},
		{"absolute zero regardless of current", "0", 100, 500, 0},
		{"percent of max", "50%", 10, 200, 100},
		{"percent zero", "0%", 50, 200, 0},
		{"percent clamps above hundred", "150%", 0, 200, 200},
		{"half rounds up at max two", "25%", 0, 2, 1},
		{"half rounds up at max one", "50%", 0, 1, 1},
		{"relative percent up", "+5%", 50, 200, 60},
		{"relative percent down", "-10%", 60, 200, 40},
		{"relative delta up", "+30", 100, 500, 130},
		{"relative delta clamps low", "-500", 100, 500, 0},
		{"relative delta clamps high", "+500", 100, 500, 500},
		// Magnitudes beyond the int range must still saturate at the
		// correct bound, not wrap through the float conversion.
		{"huge absolute saturates at max", "99999999999999999999999", 100, 500, 500},
		{"huge percent saturates at max", "99999999999999999999999%", 100, 500, 500},
		{"huge relative up saturates at max", "+99999999999999999999999", 100, 500, 500},
		{"huge relative down saturates at zero", "-99999999999999999999999", 100, 500, 0},
		{"huge relative percent down saturates at zero", "-99999999999999999999999%", 100, 500, 0},
		{"huge multiply saturates at max", "x99999999999999999999999", 100, 500, 500},
		{"relative noop stays put", "+0", 50, 200, 50},
		{"multiply", "x2", 100, 500, 200},
		{"multiply nudges up", "x1.001", 100, 500, 101},
		{"multiply clamps", "x100", 100, 500, 500},
		{"divide", "/2", 100, 500, 50},
		{"divide nudges down", "/1.001", 100, 500, 99},
		{"linear step up from multiple", "+/10", 50, 100, 60},
		{"linear step up aligns to multiple", "+/10", 55, 100, 60},
		{"linear step down aligns to multiple", "-/10", 55, 100, 50},
		{"linear step down from multiple", "-/10", 50, 100, 40},
		{"linear step clamps at zero", "-/10", 5, 100, 0},
		{"linear step clamps at max", "+/10", 95, 100, 100},
		{"log step up dense range", "+//10", 2, 5, 3},
		{"log step down dense range", "-//10", 2, 5, 1},
		{"log step up sparse range", "+//4", 10, 100, 32},
		{"log step down sparse range", "-//4", 10, 100, 3},
		{"log step stops at max", "+//4", 100, 100, 100},
		{"log step stops at floor", "-//4", 1, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.Description, func(t *testing.T) {
			value, err := Parse(tt.Argument)
			if err != nil {
				t.Fatalf("should have not returned an error; but got %s", err)
			}

			got := value.Resolve(tt.Current, tt.Max)
			if got != tt.Want {
				t.Errorf("want %d; got %d", tt.Want, got)
			}

			if got < 0 || got > tt.Max {
				t.Errorf("resolved value %d escapes [0, %d]", got, tt.Max)
			}
		})
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		Description string
		Max         int
		Steps       int
		Want        []int
	}{
		{
			Description: "geometric tail",
			Max:         100,
			Steps:       4,
			Want:        []int{1, 3, 10, 32, 100},
		},
		{
			Description: "fully linear when steps cover the range",
			Max:         5,
			Steps:       10,
			Want:        []int{1, 2, 3, 4, 5},
		},
		{
			Description: "single level device",
			Max:         1,
			Steps:       4,
			Want:        []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.Description, func(t *testing.T) {
			got := logLevels(tt.Max, tt.Steps)
			if !reflect.DeepEqual(got, tt.Want) {
				t.Errorf("want %v; got %v", tt.Want, got)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 100); got != 0 {
		t.Errorf("want 0; got %d", got)
	}
	if got := Clamp(500, 100); got != 100 {
		t.Errorf("want 100; got %d", got)
	}
	if got := Clamp(42, 100); got != 42 {
		t.Errorf("want 42; got %d", got)
	}
}
