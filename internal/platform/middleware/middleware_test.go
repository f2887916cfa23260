package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/reception", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequestID_Generated(t *testing.T) {
	c, rec := newContext(t)

	h := RequestID()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rid, _ := c.Get("request_id").(string)
	if rid == "" {
		t.Fatal("expected a generated request id")
	}
	if got := rec.Header().Get("X-Request-ID"); got != rid {
		t.Errorf("response header %q does not match context id %q", got, rid)
	}
}

func TestRequestID_Propagated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/reception", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequestID()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rid, _ := c.Get("request_id").(string); rid != "upstream-id" {
		t.Errorf("expected upstream id to be kept, got %q", rid)
	}
}

func TestRecovery_PanicBecomes500(t *testing.T) {
	c, _ := newContext(t)
	logger := zerolog.New(os.Stderr)

	h := Recovery(logger)(func(c echo.Context) error {
		panic("boom")
	})

	err := h(c)
	if err == nil {
		t.Fatal("expected error from recovered panic")
	}
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", httpErr.Code)
	}
}

func TestRecovery_PassThrough(t *testing.T) {
	c, _ := newContext(t)
	logger := zerolog.New(os.Stderr)

	h := Recovery(logger)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLogger_PropagatesHandlerError(t *testing.T) {
	c, _ := newContext(t)
	logger := zerolog.New(os.Stderr)

	wantErr := errors.New("handler failed")
	h := Logger(logger)(func(c echo.Context) error {
		return wantErr
	})
	if err := h(c); !errors.Is(err, wantErr) {
		t.Errorf("expected handler error to propagate, got %v", err)
	}
}

func TestRequestTimeout_Expires(t *testing.T) {
	c, _ := newContext(t)

	h := RequestTimeout(10 * time.Millisecond)(func(c echo.Context) error {
		select {
		case <-c.Request().Context().Done():
			return c.Request().Context().Err()
		case <-time.After(time.Second):
			return c.NoContent(http.StatusOK)
		}
	})

	err := h(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusGatewayTimeout {
		t.Errorf("expected 504, got %d", httpErr.Code)
	}
}

func TestRequestTimeout_CompletesInTime(t *testing.T) {
	c, _ := newContext(t)

	h := RequestTimeout(time.Second)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
