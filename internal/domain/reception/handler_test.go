package reception

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/internal/domain/scheduling"
)

type bookingRepoStub struct {
	patients  map[int]bool
	providers map[int]bool
	slots     map[string]bool
	created   int
}

func newBookingRepoStub() *bookingRepoStub {
	return &bookingRepoStub{
		patients:  map[int]bool{1: true},
		providers: map[int]bool{10: true},
		slots:     map[string]bool{},
	}
}

func (s *bookingRepoStub) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *bookingRepoStub) PatientExists(_ context.Context, id int) (bool, error) {
	return s.patients[id], nil
}

func (s *bookingRepoStub) ProviderExists(_ context.Context, id int) (bool, error) {
	return s.providers[id], nil
}

func (s *bookingRepoStub) slotKey(providerID int, day, clock time.Time) string {
	return fmt.Sprintf("%d/%s/%s", providerID, day.Format("2006-01-02"), clock.Format("15:04"))
}

func (s *bookingRepoStub) SlotTaken(_ context.Context, providerID int, day, clock time.Time) (bool, error) {
	return s.slots[s.slotKey(providerID, day, clock)], nil
}

func (s *bookingRepoStub) CreateAppointment(_ context.Context, providerID, _ int, day, clock time.Time) (int, error) {
	s.slots[s.slotKey(providerID, day, clock)] = true
	s.created++
	return s.created, nil
}

func newTestHandler() (*Handler, *bookingRepoStub, *echo.Echo) {
	stub := newBookingRepoStub()
	h := NewHandler(NewService(seededRepo()), scheduling.NewService(stub))
	return h, stub, echo.New()
}

func postForm(e *echo.Echo, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_Dashboard_Get(t *testing.T) {
	h, _, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/reception", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Dashboard(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var view DashboardView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("bad payload: %v", err)
	}
	if view.Searched {
		t.Error("GET must not search")
	}
	if len(view.Waitlist) != 1 {
		t.Errorf("expected waitlist in payload, got %v", view.Waitlist)
	}
}

func TestHandler_Dashboard_PostSearch(t *testing.T) {
	h, _, e := newTestHandler()
	c, rec := postForm(e, "/reception", url.Values{"appointment_status": {"Canceled"}})

	if err := h.Dashboard(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var view DashboardView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("bad payload: %v", err)
	}
	if !view.Searched {
		t.Error("POST must search")
	}
	if len(view.Results) != 1 || view.Results[0].Status != "Canceled" {
		t.Errorf("unexpected results: %v", view.Results)
	}
}

func TestHandler_Dashboard_SearchWindow(t *testing.T) {
	h, _, e := newTestHandler()
	c, rec := postForm(e, "/reception?limit=1", url.Values{})

	if err := h.Dashboard(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var view DashboardView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("bad payload: %v", err)
	}
	if len(view.Results) != 1 {
		t.Errorf("expected results windowed to 1 row, got %d", len(view.Results))
	}
}

func TestHandler_Dashboard_BadDate(t *testing.T) {
	h, _, e := newTestHandler()
	c, _ := postForm(e, "/reception", url.Values{"appointment_date": {"03/14/2024"}})

	err := h.Dashboard(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandler_AddAppointmentForm(t *testing.T) {
	h, _, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/reception/add-appointment", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.AddAppointmentForm(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var view BookingFormView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("bad payload: %v", err)
	}
	if len(view.Patients) != 1 || len(view.Providers) != 1 {
		t.Errorf("expected dropdown directories, got %+v", view)
	}
}

func bookingForm(patient, provider, date, clock string) url.Values {
	return url.Values{
		"patient_ID":       {patient},
		"provider_ID":      {provider},
		"appointment_date": {date},
		"appointment_time": {clock},
	}
}

func TestHandler_AddAppointment_Success(t *testing.T) {
	h, stub, e := newTestHandler()
	c, rec := postForm(e, "/reception/add-appointment", bookingForm("1", "10", "2990-01-02", "09:30"))

	if err := h.AddAppointment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected 303, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderLocation); got != "/reception" {
		t.Errorf("expected redirect to /reception, got %q", got)
	}
	if stub.created != 1 {
		t.Errorf("expected 1 stored appointment, got %d", stub.created)
	}
}

func TestHandler_AddAppointment_PastDate(t *testing.T) {
	h, stub, e := newTestHandler()
	c, rec := postForm(e, "/reception/add-appointment", bookingForm("1", "10", "2001-01-02", "09:30"))

	if err := h.AddAppointment(c); err != nil {
		t.Fatalf("expected inline rejection, got error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("bad payload: %v", err)
	}
	if payload.Message != scheduling.ErrPastAppointment.Error() {
		t.Errorf("unexpected message: %q", payload.Message)
	}
	if stub.created != 0 {
		t.Errorf("expected no stored appointment, got %d", stub.created)
	}
}

func TestHandler_AddAppointment_SlotConflict(t *testing.T) {
	h, _, e := newTestHandler()

	c, rec := postForm(e, "/reception/add-appointment", bookingForm("1", "10", "2990-01-02", "09:30"))
	if err := h.AddAppointment(c); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("first booking expected 303, got %d", rec.Code)
	}

	c, rec = postForm(e, "/reception/add-appointment", bookingForm("1", "10", "2990-01-02", "09:30"))
	if err := h.AddAppointment(c); err != nil {
		t.Fatalf("expected inline rejection, got error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestHandler_AddAppointment_BadInput(t *testing.T) {
	h, _, e := newTestHandler()
	c, _ := postForm(e, "/reception/add-appointment", bookingForm("x", "10", "2990-01-02", "09:30"))

	err := h.AddAppointment(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
