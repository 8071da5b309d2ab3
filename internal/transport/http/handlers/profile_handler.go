package handlers

import (
	"context"
	"errors"
	"net/http"

	authsvc "github.com/sfmk07/Flairv3/internal/services/auth"
	geosvc "github.com/sfmk07/Flairv3/internal/services/geo"
	profilessvc "github.com/sfmk07/Flairv3/internal/services/profiles"
	"github.com/sfmk07/Flairv3/internal/transport/http/dto"
	httperrors "github.com/sfmk07/Flairv3/internal/transport/http/errors"
)

type PhotoURLResolver interface {
	PhotoURL(ctx context.Context, key string) (string, error)
}

type ProfileHandler struct {
	profiles *profilessvc.Service
	geo      *geosvc.Service
	photos   PhotoURLResolver
}

func NewProfileHandler(profiles *profilessvc.Service, geo *geosvc.Service, photos PhotoURLResolver) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, geo: geo, photos: photos}
}

func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.profiles == nil {
		writeInternal(w, "PROFILES_SERVICE_UNAVAILABLE", "profiles service is unavailable")
		return
	}

	profile, err := h.profiles.Get(r.Context(), identity.UserID)
	if err != nil {
		handleProfileError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NewProfileResponse(profile, h.resolvePhotoURL(r.Context(), profile.PhotoKey)))
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.profiles == nil {
		writeInternal(w, "PROFILES_SERVICE_UNAVAILABLE", "profiles service is unavailable")
		return
	}

	var req dto.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	profile, err := h.profiles.Update(r.Context(), identity.UserID, profilessvc.UpdateInput{
		DisplayName: req.DisplayName,
		City:        req.City,
		Bio:         req.Bio,
		Tags:        req.Tags,
		IsVisible:   req.IsVisible,
	})
	if err != nil {
		handleProfileError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NewProfileResponse(profile, h.resolvePhotoURL(r.Context(), profile.PhotoKey)))
}

func (h *ProfileHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.geo == nil {
		writeInternal(w, "GEO_SERVICE_UNAVAILABLE", "geo service is unavailable")
		return
	}

	var req dto.UpdateLocationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	city, err := h.geo.UpdateProfileLocation(r.Context(), identity.UserID, req.Lat, req.Lon)
	if err != nil {
		switch {
		case errors.Is(err, geosvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid coordinates")
		case errors.Is(err, geosvc.ErrNoCities):
			writeInternal(w, "GEO_UNCONFIGURED", "no cities configured")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to update location")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, dto.UpdateLocationResponse{City: city.Name})
}

func (h *ProfileHandler) resolvePhotoURL(ctx context.Context, key string) string {
	if h.photos == nil || key == "" {
		return ""
	}
	url, err := h.photos.PhotoURL(ctx, key)
	if err != nil {
		return ""
	}
	return url
}

func handleProfileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, profilessvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "profile validation failed")
	case errors.Is(err, profilessvc.ErrNotFound):
		writeNotFound(w, "PROFILE_NOT_FOUND", "profile not found")
	default:
		writeInternal(w, "INTERNAL_ERROR", "internal server error")
	}
}
