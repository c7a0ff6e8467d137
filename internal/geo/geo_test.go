package geo

import (
	"math"
	"testing"
)

func TestDistanceMiles(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{
			name: "identical points",
			lat1: 39.0489, lon1: -94.4839, lat2: 39.0489, lon2: -94.4839,
			want: 0, tolerance: 0.0001,
		},
		{
			name: "one degree of latitude",
			lat1: 39.0, lon1: -94.0, lat2: 40.0, lon2: -94.0,
			want: 69.09, tolerance: 0.7,
		},
		{
			name: "kansas city to mexico city",
			lat1: 39.0997, lon1: -94.5786, lat2: 19.4326, lon2: -99.1332,
			want: 1380, tolerance: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceMiles(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("DistanceMiles() = %.2f, want %.2f ± %.2f", got, tt.want, tt.tolerance)
			}

			reverse := DistanceMiles(tt.lat2, tt.lon2, tt.lat1, tt.lon1)
			if math.Abs(got-reverse) > 1e-9 {
				t.Errorf("distance not symmetric: %.6f vs %.6f", got, reverse)
			}
		})
	}
}

type point struct {
	name string
	lat  float64
	lon  float64
}

func TestNearest(t *testing.T) {
	pos := func(p point) (float64, float64) { return p.lat, p.lon }

	t.Run("empty candidates", func(t *testing.T) {
		_, ok := Nearest(39.0, -94.0, nil, pos)
		if ok {
			t.Fatal("expected ok=false for empty candidates")
		}
	})

	t.Run("picks closest", func(t *testing.T) {
		candidates := []point{
			{name: "far", lat: 45.0, lon: -94.0},
			{name: "near", lat: 39.1, lon: -94.0},
			{name: "mid", lat: 41.0, lon: -94.0},
		}
		got, ok := Nearest(39.0, -94.0, candidates, pos)
		if !ok {
			t.Fatal("expected ok=true")
		}
		if got.name != "near" {
			t.Errorf("Nearest() = %q, want %q", got.name, "near")
		}
	})

	t.Run("tie keeps first", func(t *testing.T) {
		candidates := []point{
			{name: "first", lat: 40.0, lon: -94.0},
			{name: "second", lat: 40.0, lon: -94.0},
		}
		got, _ := Nearest(39.0, -94.0, candidates, pos)
		if got.name != "first" {
			t.Errorf("Nearest() = %q, want %q", got.name, "first")
		}
	})
}
