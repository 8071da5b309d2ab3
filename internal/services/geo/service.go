package geo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sfmk07/Flairv3/internal/config"
	"github.com/sfmk07/Flairv3/internal/domain/rules"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNoCities   = errors.New("no cities configured")
)

type ProfileLocationSaver interface {
	SaveLocation(ctx context.Context, userID int64, city string, lat, lon float64) error
}

type City struct {
	Name string
	Lat  float64
	Lon  float64
}

type Service struct {
	cities []City
	saver  ProfileLocationSaver
}

func NewService(cities []config.CityConfig, saver ProfileLocationSaver) *Service {
	mapped := make([]City, 0, len(cities))
	for _, city := range cities {
		if strings.TrimSpace(city.Name) == "" {
			continue
		}
		mapped = append(mapped, City{Name: city.Name, Lat: city.Lat, Lon: city.Lon})
	}

	return &Service{
		cities: mapped,
		saver:  saver,
	}
}

// UpdateProfileLocation stores fresh coordinates for a user and labels the
// profile with the nearest known city.
func (s *Service) UpdateProfileLocation(ctx context.Context, userID int64, lat, lon float64) (City, error) {
	if userID <= 0 {
		return City{}, fmt.Errorf("invalid user id: %w", ErrValidation)
	}
	if !rules.ValidCoordinates(lat, lon) {
		return City{}, fmt.Errorf("coordinates out of range: %w", ErrValidation)
	}

	city, err := s.ResolveNearestCity(lat, lon)
	if err != nil {
		return City{}, err
	}

	if s.saver != nil {
		if err := s.saver.SaveLocation(ctx, userID, city.Name, lat, lon); err != nil {
			return City{}, err
		}
	}

	return city, nil
}

func (s *Service) ResolveNearestCity(lat, lon float64) (City, error) {
	if !rules.ValidCoordinates(lat, lon) {
		return City{}, fmt.Errorf("coordinates out of range: %w", ErrValidation)
	}
	if len(s.cities) == 0 {
		return City{}, ErrNoCities
	}

	nearest := s.cities[0]
	bestDistance := rules.HaversineKM(lat, lon, nearest.Lat, nearest.Lon)
	for _, city := range s.cities[1:] {
		distance := rules.HaversineKM(lat, lon, city.Lat, city.Lon)
		if distance < bestDistance {
			bestDistance = distance
			nearest = city
		}
	}

	return nearest, nil
}
