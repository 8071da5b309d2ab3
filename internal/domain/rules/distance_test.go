package rules

import (
	"math"
	"testing"
)

func TestHaversineKM(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantKM                 float64
		tolerance              float64
	}{
		{name: "same point", lat1: 48.8566, lon1: 2.3522, lat2: 48.8566, lon2: 2.3522, wantKM: 0, tolerance: 0.001},
		{name: "paris to lyon", lat1: 48.8566, lon1: 2.3522, lat2: 45.7640, lon2: 4.8357, wantKM: 392, tolerance: 3},
		{name: "paris to versailles", lat1: 48.8566, lon1: 2.3522, lat2: 48.8049, lon2: 2.1204, wantKM: 17.8, tolerance: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKM(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.wantKM) > tt.tolerance {
				t.Fatalf("unexpected distance: got %.2f want %.2f (±%.2f)", got, tt.wantKM, tt.tolerance)
			}
		})
	}
}

func TestValidCoordinates(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
		want bool
	}{
		{name: "paris", lat: 48.8566, lon: 2.3522, want: true},
		{name: "equator boundary", lat: 90, lon: 180, want: true},
		{name: "lat out of range", lat: 91, lon: 0, want: false},
		{name: "lon out of range", lat: 0, lon: -181, want: false},
		{name: "nan", lat: math.NaN(), lon: 0, want: false},
		{name: "inf", lat: 0, lon: math.Inf(1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidCoordinates(tt.lat, tt.lon); got != tt.want {
				t.Fatalf("unexpected result: got %v want %v", got, tt.want)
			}
		})
	}
}
