package upload

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/followcare/dashboard/internal/platform/careapi"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/consultations", h.SubmitConsultation)
}

// SubmitConsultation accepts the upload form (patient_id, follow_up_date,
// file) and runs the upload transaction. The care platform's error payload is
// passed through verbatim; a network-level failure becomes a generic
// connectivity message.
func (h *Handler) SubmitConsultation(c echo.Context) error {
	draft := Draft{
		PatientID:    c.FormValue("patient_id"),
		FollowUpDate: c.FormValue("follow_up_date"),
	}

	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
		}
		defer f.Close()
		draft.Filename = fh.Filename
		draft.File = f
	}

	err := h.svc.Submit(c.Request().Context(), draft)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, map[string]string{"status": "uploaded"})
	case errors.Is(err, ErrIncompleteDraft), errors.Is(err, ErrInvalidDate):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrSubmitInFlight):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}

	var apiErr *careapi.APIError
	if errors.As(err, &apiErr) {
		if len(apiErr.Payload) > 0 {
			return c.JSONBlob(apiErr.StatusCode, apiErr.Payload)
		}
		return echo.NewHTTPError(apiErr.StatusCode, apiErr.Message())
	}
	return echo.NewHTTPError(http.StatusBadGateway, "could not reach the care platform")
}
