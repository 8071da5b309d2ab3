package geo

import (
	"context"
	"errors"
	"testing"

	"github.com/sfmk07/Flairv3/internal/config"
)

func TestResolveNearestCity(t *testing.T) {
	svc := NewService(config.Default().Geo.Cities, nil)

	tests := []struct {
		name string
		lat  float64
		lon  float64
		city string
	}{
		{name: "paris", lat: 48.85, lon: 2.35, city: "Paris"},
		{name: "lyon", lat: 45.75, lon: 4.85, city: "Lyon"},
		{name: "marseille", lat: 43.30, lon: 5.37, city: "Marseille"},
		{name: "versailles falls back to paris", lat: 48.80, lon: 2.13, city: "Paris"},
		{name: "lille", lat: 50.63, lon: 3.06, city: "Lille"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city, err := svc.ResolveNearestCity(tt.lat, tt.lon)
			if err != nil {
				t.Fatalf("resolve nearest city: %v", err)
			}
			if city.Name != tt.city {
				t.Fatalf("unexpected city: got %s want %s", city.Name, tt.city)
			}
		})
	}
}

func TestResolveNearestCityRejectsBadCoordinates(t *testing.T) {
	svc := NewService(config.Default().Geo.Cities, nil)

	if _, err := svc.ResolveNearestCity(91, 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestResolveNearestCityNoCities(t *testing.T) {
	svc := NewService(nil, nil)

	if _, err := svc.ResolveNearestCity(48.85, 2.35); !errors.Is(err, ErrNoCities) {
		t.Fatalf("expected ErrNoCities, got %v", err)
	}
}

type recordingSaver struct {
	userID int64
	city   string
	lat    float64
	lon    float64
}

func (r *recordingSaver) SaveLocation(_ context.Context, userID int64, city string, lat, lon float64) error {
	r.userID = userID
	r.city = city
	r.lat = lat
	r.lon = lon
	return nil
}

func TestUpdateProfileLocation(t *testing.T) {
	saver := &recordingSaver{}
	svc := NewService(config.Default().Geo.Cities, saver)

	city, err := svc.UpdateProfileLocation(context.Background(), 7, 45.76, 4.84)
	if err != nil {
		t.Fatalf("update profile location: %v", err)
	}
	if city.Name != "Lyon" {
		t.Fatalf("expected Lyon, got %s", city.Name)
	}
	if saver.userID != 7 || saver.city != "Lyon" {
		t.Fatalf("saver got unexpected values: %+v", saver)
	}
}

func TestUpdateProfileLocationInvalidUser(t *testing.T) {
	svc := NewService(config.Default().Geo.Cities, &recordingSaver{})

	if _, err := svc.UpdateProfileLocation(context.Background(), 0, 48.85, 2.35); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
