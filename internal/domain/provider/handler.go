package provider

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/provider", h.Dashboard)
	e.POST("/provider", h.Dashboard)
}

// Dashboard serves the provider page. provider_id comes in as a query param
// on both methods; the POST form adds patient_name for the history search.
func (h *Handler) Dashboard(c echo.Context) error {
	var providerID *int
	if raw := c.QueryParam("provider_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid provider_id")
		}
		providerID = &id
	}

	var patientName string
	if c.Request().Method == http.MethodPost {
		patientName = c.FormValue("patient_name")
	}

	view, err := h.svc.Dashboard(c.Request().Context(), providerID, patientName)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, view)
}
