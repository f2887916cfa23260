package reception

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/internal/domain/scheduling"
	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

type Handler struct {
	svc     *Service
	booking *scheduling.Service
}

func NewHandler(svc *Service, booking *scheduling.Service) *Handler {
	return &Handler{svc: svc, booking: booking}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/reception", h.Dashboard)
	e.POST("/reception", h.Dashboard)
	e.GET("/reception/add-appointment", h.AddAppointmentForm)
	e.POST("/reception/add-appointment", h.AddAppointment)
}

// Dashboard serves the reception page. A POST carries the search form; a GET
// renders the page without running a search.
func (h *Handler) Dashboard(c echo.Context) error {
	var filter *SearchFilter
	if c.Request().Method == http.MethodPost {
		f := SearchFilter{
			ProviderName: c.FormValue("provider_name"),
			PatientName:  c.FormValue("patient_name"),
			Status:       c.FormValue("appointment_status"),
		}
		if raw := c.FormValue("appointment_date"); raw != "" {
			d, err := time.Parse("2006-01-02", raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment_date, expected YYYY-MM-DD")
			}
			f.Date = &d
		}
		filter = &f
	}

	view, err := h.svc.Dashboard(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if view.Searched {
		// optional limit/offset window; without them the full set renders
		pg := pagination.FromContext(c)
		start, end := pg.Window(len(view.Results))
		view.Results = view.Results[start:end]
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) AddAppointmentForm(c echo.Context) error {
	view, err := h.svc.BookingForm(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, view)
}

// AddAppointment books an appointment from the form. Success redirects back
// to the reception page; a failed validation re-renders the form with the
// message inline rather than erroring out.
func (h *Handler) AddAppointment(c echo.Context) error {
	patientID, err := strconv.Atoi(c.FormValue("patient_ID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_ID")
	}
	providerID, err := strconv.Atoi(c.FormValue("provider_ID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid provider_ID")
	}
	day, err := time.ParseInLocation("2006-01-02", c.FormValue("appointment_date"), time.Local)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment_date, expected YYYY-MM-DD")
	}
	clock, err := time.Parse("15:04", c.FormValue("appointment_time"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment_time, expected HH:MM")
	}

	req := scheduling.BookingRequest{
		PatientID:  patientID,
		ProviderID: providerID,
		Date:       day,
		Time:       clock,
	}
	if _, err := h.booking.Book(c.Request().Context(), req); err != nil {
		if isBookingError(err) {
			return h.rejectBooking(c, err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusSeeOther, "/reception")
}

func isBookingError(err error) bool {
	return errors.Is(err, scheduling.ErrPatientNotFound) ||
		errors.Is(err, scheduling.ErrProviderNotFound) ||
		errors.Is(err, scheduling.ErrPastAppointment) ||
		errors.Is(err, scheduling.ErrSlotTaken)
}

// rejectBooking re-renders the form payload with the validation message so
// the page can show it inline. Slot conflicts get 409, the rest 422.
func (h *Handler) rejectBooking(c echo.Context, bookErr error) error {
	view, err := h.svc.BookingForm(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	code := http.StatusUnprocessableEntity
	if errors.Is(bookErr, scheduling.ErrSlotTaken) {
		code = http.StatusConflict
	}
	return c.JSON(code, map[string]interface{}{
		"message":   bookErr.Error(),
		"patients":  view.Patients,
		"providers": view.Providers,
	})
}
