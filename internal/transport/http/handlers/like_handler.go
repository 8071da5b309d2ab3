package handlers

import (
	"errors"
	"net/http"

	authsvc "github.com/sfmk07/Flairv3/internal/services/auth"
	likessvc "github.com/sfmk07/Flairv3/internal/services/likes"
	"github.com/sfmk07/Flairv3/internal/transport/http/dto"
	httperrors "github.com/sfmk07/Flairv3/internal/transport/http/errors"
)

type LikeHandler struct {
	service *likessvc.Service
}

func NewLikeHandler(service *likessvc.Service) *LikeHandler {
	return &LikeHandler{service: service}
}

func (h *LikeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "LIKES_SERVICE_UNAVAILABLE", "likes service is unavailable")
		return
	}

	var req dto.LikeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	result, err := h.service.RecordLike(r.Context(), identity.UserID, req.TargetID)
	if err != nil {
		switch {
		case errors.Is(err, likessvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid like request")
		case errors.Is(err, likessvc.ErrAlreadyLiked):
			httperrors.Write(w, http.StatusConflict, httperrors.APIError{
				Code:    "ALREADY_LIKED",
				Message: "like already recorded",
			})
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to record like")
		}
		return
	}

	resp := dto.LikeResponse{Matched: result.Matched}
	if result.Match != nil {
		resp.Match = &dto.MatchResponse{
			ID:        result.Match.ID,
			User1ID:   result.Match.User1ID,
			User2ID:   result.Match.User2ID,
			CreatedAt: result.Match.CreatedAt,
		}
	}

	httperrors.Write(w, http.StatusOK, resp)
}
