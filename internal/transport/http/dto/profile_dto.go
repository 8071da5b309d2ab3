package dto

import (
	"time"

	"github.com/sfmk07/Flairv3/internal/domain/model"
)

type ProfileResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email,omitempty"`
	DisplayName string    `json:"display_name"`
	Gender      string    `json:"gender"`
	Orientation string    `json:"orientation,omitempty"`
	Age         int       `json:"age"`
	City        string    `json:"city"`
	Bio         string    `json:"bio"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	Tags        []string  `json:"tags"`
	Lat         *float64  `json:"lat,omitempty"`
	Lon         *float64  `json:"lon,omitempty"`
	IsVisible   bool      `json:"is_visible"`
	CreatedAt   time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	DisplayName string   `json:"display_name"`
	City        string   `json:"city"`
	Bio         string   `json:"bio"`
	Tags        []string `json:"tags"`
	IsVisible   bool     `json:"is_visible"`
}

// NewProfileResponse maps a domain profile to its private (owner-facing)
// representation. Candidate-facing views drop email and orientation.
func NewProfileResponse(profile model.UserProfile, photoURL string) ProfileResponse {
	return ProfileResponse{
		ID:          profile.ID,
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
		Gender:      string(profile.Gender),
		Orientation: string(profile.Orientation),
		Age:         profile.Age,
		City:        profile.City,
		Bio:         profile.Bio,
		PhotoURL:    photoURL,
		Tags:        profile.Tags,
		Lat:         profile.Lat,
		Lon:         profile.Lon,
		IsVisible:   profile.IsVisible,
		CreatedAt:   profile.CreatedAt,
	}
}
