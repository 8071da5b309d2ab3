package model

import (
	"time"

	"github.com/sfmk07/Flairv3/internal/domain/enums"
)

type UserProfile struct {
	ID          int64             `json:"id"`
	Email       string            `json:"email"`
	DisplayName string            `json:"display_name"`
	Gender      enums.Gender      `json:"gender"`
	Orientation enums.Orientation `json:"orientation"`
	Age         int               `json:"age"`
	City        string            `json:"city"`
	Bio         string            `json:"bio"`
	PhotoKey    string            `json:"photo_key"`
	Tags        []string          `json:"tags"`
	Lat         *float64          `json:"lat"`
	Lon         *float64          `json:"lon"`
	IsVisible   bool              `json:"is_visible"`
	IsAdmin     bool              `json:"is_admin"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// HasCoordinates reports whether both coordinate fields were captured at
// profile creation. Profiles without coordinates never enter a swipe feed.
func (p UserProfile) HasCoordinates() bool {
	return p.Lat != nil && p.Lon != nil
}
