package schedule

import (
	"errors"
	"testing"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"0:00", 0, false},
		{"00:00", 0, false},
		{"9:00", 540, false},
		{"09:05", 545, false},
		{"12:30", 750, false},
		{"14:05", 845, false},
		{"23:59", 1439, false},
		{"", 0, true},
		{"9", 0, true},
		{"900", 0, true},
		{"9:5", 0, true},
		{"24:00", 0, true},
		{"9:75", 0, true},
		{"nine o'clock", 0, true},
		{"9:00pm", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := TimeToMinutes(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("TimeToMinutes(%q) = %d, want error", tt.input, got)
				}
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Errorf("error type = %T, want *ParseError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("TimeToMinutes(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestMinutesToTimeRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 1, 59, 60, 545, 750, 1439} {
		got, err := TimeToMinutes(MinutesToTime(minutes))
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", minutes, err)
		}
		if got != minutes {
			t.Errorf("round trip of %d = %d", minutes, got)
		}
	}
}

func TestMinutesToPixelsMonotonic(t *testing.T) {
	// Scaled positions must strictly increase across the day for any
	// positive scale.
	for _, ppm := range []float64{0.5, 1.0, 80.0 / 60.0} {
		prev := -1.0
		for minutes := 0; minutes < MinutesPerDay; minutes += 5 {
			px := MinutesToPixels(minutes, ppm)
			if px <= prev {
				t.Fatalf("ppm=%v: pixels(%d) = %v, not above %v", ppm, minutes, px, prev)
			}
			prev = px
		}
	}
}

func TestFormatHourLabel(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "12 AM"},
		{1, "1 AM"},
		{11, "11 AM"},
		{12, "12 PM"},
		{13, "1 PM"},
		{23, "11 PM"},
	}

	for _, tt := range tests {
		if got := FormatHourLabel(tt.hour); got != tt.want {
			t.Errorf("FormatHourLabel(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}
