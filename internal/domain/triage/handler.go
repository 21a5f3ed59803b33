package triage

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.PUT("/consultations/:id/resolve", h.ResolveConsultation)
}

// ResolveConsultation requests the escalated → completed transition. Failures
// are absorbed by the service, so the response is 204 either way; the caller
// learns the outcome from the refreshed collections.
func (h *Handler) ResolveConsultation(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "consultation id is required")
	}
	h.svc.Resolve(c.Request().Context(), id)
	return c.NoContent(http.StatusNoContent)
}
