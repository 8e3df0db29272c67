package literal

import (
	"errors"
	"math"
	"testing"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0.0", 0},
		{"3.14", 3.14},
		{"-3.14", -3.14},
		{"6.8523015e+5", 685230.15},
		{"685_230.15", 685230.15},
		{"1:30.5", 90.5},
		{"-1:30.5", -90.5},
		{"190:20:30.15", 685230.15},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFloat(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFloat_Specials(t *testing.T) {
	for _, in := range []string{".inf", ".Inf", ".INF", "+.inf"} {
		got, err := ParseFloat(in)
		if err != nil || !math.IsInf(got, 1) {
			t.Errorf("%q: got %v, %v; want +Inf", in, got, err)
		}
	}
	for _, in := range []string{"-.inf", "-.Inf"} {
		got, err := ParseFloat(in)
		if err != nil || !math.IsInf(got, -1) {
			t.Errorf("%q: got %v, %v; want -Inf", in, got, err)
		}
	}
	got, err := ParseFloat(".nan")
	if err != nil || !math.IsNaN(got) {
		t.Fatalf(".nan: got %v, %v; want NaN", got, err)
	}
	// NaN must not compare equal to itself
	if got == got {
		t.Error("expected NaN != NaN")
	}
}

func TestParseFloat_Errors(t *testing.T) {
	for _, in := range []string{"", "-", "abc", "1:xx", "1.2.3"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseFloat(in); !errors.Is(err, ErrFloat) {
				t.Errorf("expected ErrFloat, got %v", err)
			}
		})
	}
}
