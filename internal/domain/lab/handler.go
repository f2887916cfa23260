package lab

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
	e.GET("/lab", h.Dashboard)
}

func (h *Handler) Dashboard(c echo.Context) error {
	var techID *int
	if raw := c.QueryParam("lab_tech_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid lab_tech_id")
		}
		techID = &id
	}

	view, err := h.svc.Dashboard(c.Request().Context(), techID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, view)
}
