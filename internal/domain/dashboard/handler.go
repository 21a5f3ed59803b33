package dashboard

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/followcare/dashboard/pkg/pagination"
)

// Refresher triggers the explicit pull refresh.
type Refresher interface {
	RefreshAll(ctx context.Context) error
}

type Handler struct {
	svc     *Service
	refresh Refresher
}

func NewHandler(svc *Service, refresh Refresher) *Handler {
	return &Handler{svc: svc, refresh: refresh}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/patients", h.ListPatients)
	g.GET("/consultations", h.ListConsultations)
	g.GET("/call-logs", h.ListCallLogs)
	g.POST("/refresh", h.Refresh)
}

func (h *Handler) ListPatients(c echo.Context) error {
	pg := pagination.FromContext(c)
	items := h.svc.Patients()
	start, end := pg.Page(len(items))
	return c.JSON(http.StatusOK, pagination.NewResponse(items[start:end], len(items), pg.Limit, pg.Offset))
}

func (h *Handler) ListConsultations(c echo.Context) error {
	pg := pagination.FromContext(c)
	items := h.svc.Consultations()
	start, end := pg.Page(len(items))
	return c.JSON(http.StatusOK, pagination.NewResponse(items[start:end], len(items), pg.Limit, pg.Offset))
}

func (h *Handler) ListCallLogs(c echo.Context) error {
	pg := pagination.FromContext(c)
	items := h.svc.CallLogs()
	start, end := pg.Page(len(items))
	return c.JSON(http.StatusOK, pagination.NewResponse(items[start:end], len(items), pg.Limit, pg.Offset))
}

// Refresh performs the explicit pull refresh. A partially failed refresh is
// degraded, not fatal: the affected collections keep their cached values, so
// the response is 204 regardless.
func (h *Handler) Refresh(c echo.Context) error {
	// Failures are logged at the store; the cached values still render.
	_ = h.refresh.RefreshAll(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}
