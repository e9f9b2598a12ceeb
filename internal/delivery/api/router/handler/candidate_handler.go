package handler

import (
	"net/http"

	"wingman/internal/delivery/api/middleware"
	"wingman/internal/delivery/api/response"
	"wingman/internal/domain/entity"
	"wingman/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CandidateHandler previews discovery without creating a match.
type CandidateHandler struct {
	discoveryUC usecase.DiscoveryUsecase
}

// NewCandidateHandler is the constructor for CandidateHandler.
func NewCandidateHandler(discoveryUC usecase.DiscoveryUsecase) *CandidateHandler {
	return &CandidateHandler{discoveryUC: discoveryUC}
}

// CandidatesResponse lists ranked candidates.
type CandidatesResponse struct {
	Candidates   []*entity.Candidate `json:"candidates"`
	NoCandidates bool                `json:"no_candidates"`
}

// ListCandidates returns the caller's ranked candidates.
func (h *CandidateHandler) ListCandidates(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	candidates, err := h.discoveryUC.FindCandidates(c.Request().Context(), userID, nil)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if candidates == nil {
		candidates = []*entity.Candidate{}
	}

	return response.Success(c, http.StatusOK, CandidatesResponse{
		Candidates:   candidates,
		NoCandidates: len(candidates) == 0,
	})
}
