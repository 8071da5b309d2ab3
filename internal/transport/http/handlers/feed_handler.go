package handlers

import (
	"errors"
	"net/http"

	authsvc "github.com/sfmk07/Flairv3/internal/services/auth"
	discoverysvc "github.com/sfmk07/Flairv3/internal/services/discovery"
	"github.com/sfmk07/Flairv3/internal/transport/http/dto"
	httperrors "github.com/sfmk07/Flairv3/internal/transport/http/errors"
)

type FeedHandler struct {
	discovery *discoverysvc.Service
	photos    PhotoURLResolver
}

func NewFeedHandler(discovery *discoverysvc.Service, photos PhotoURLResolver) *FeedHandler {
	return &FeedHandler{discovery: discovery, photos: photos}
}

// Handle returns the requester's candidate feed. An empty items array is
// the normal "no more candidates" state.
func (h *FeedHandler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.discovery == nil {
		writeInternal(w, "DISCOVERY_SERVICE_UNAVAILABLE", "discovery service is unavailable")
		return
	}

	candidates, err := h.discovery.Discover(r.Context(), identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, discoverysvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid feed request")
		case errors.Is(err, discoverysvc.ErrNotFound):
			writeNotFound(w, "PROFILE_NOT_FOUND", "requester profile not found")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to load feed")
		}
		return
	}

	items := make([]dto.CandidateResponse, 0, len(candidates))
	for _, candidate := range candidates {
		photoURL := ""
		if h.photos != nil && candidate.PhotoKey != "" {
			if url, err := h.photos.PhotoURL(r.Context(), candidate.PhotoKey); err == nil {
				photoURL = url
			}
		}
		items = append(items, dto.CandidateResponse{
			ID:          candidate.ID,
			DisplayName: candidate.DisplayName,
			Gender:      string(candidate.Gender),
			Age:         candidate.Age,
			City:        candidate.City,
			Bio:         candidate.Bio,
			PhotoURL:    photoURL,
			Tags:        candidate.Tags,
		})
	}

	httperrors.Write(w, http.StatusOK, dto.FeedResponse{Items: items})
}
