package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func contextFor(t *testing.T, target string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestFromContext_Defaults(t *testing.T) {
	p := FromContext(contextFor(t, "/"))
	if p.Limit != 0 {
		t.Errorf("expected no limit by default, got %d", p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset)
	}
}

func TestFromContext_Explicit(t *testing.T) {
	p := FromContext(contextFor(t, "/?limit=25&offset=50"))
	if p.Limit != 25 {
		t.Errorf("expected limit 25, got %d", p.Limit)
	}
	if p.Offset != 50 {
		t.Errorf("expected offset 50, got %d", p.Offset)
	}
}

func TestFromContext_CapsLimit(t *testing.T) {
	p := FromContext(contextFor(t, "/?limit=10000"))
	if p.Limit != MaxLimit {
		t.Errorf("expected limit capped at %d, got %d", MaxLimit, p.Limit)
	}
}

func TestFromContext_NegativeValues(t *testing.T) {
	p := FromContext(contextFor(t, "/?limit=-5&offset=-3"))
	if p.Limit != 0 || p.Offset != 0 {
		t.Errorf("expected negatives clamped to 0, got limit=%d offset=%d", p.Limit, p.Offset)
	}
}

func TestWindow(t *testing.T) {
	cases := []struct {
		name       string
		p          Params
		n          int
		start, end int
	}{
		{"unlimited", Params{}, 7, 0, 7},
		{"limit within", Params{Limit: 3}, 7, 0, 3},
		{"offset and limit", Params{Limit: 3, Offset: 5}, 7, 5, 7},
		{"offset beyond end", Params{Offset: 10}, 7, 7, 7},
		{"empty set", Params{Limit: 3}, 0, 0, 0},
	}
	for _, tc := range cases {
		start, end := tc.p.Window(tc.n)
		if start != tc.start || end != tc.end {
			t.Errorf("%s: expected [%d,%d), got [%d,%d)", tc.name, tc.start, tc.end, start, end)
		}
	}
}

func TestNewResponse(t *testing.T) {
	r := NewResponse([]int{1, 2, 3}, 10, 3, 0)
	if r.Total != 10 {
		t.Errorf("expected total 10, got %d", r.Total)
	}
	if !r.HasMore {
		t.Error("expected HasMore with 3 of 10")
	}

	r = NewResponse([]int{1, 2, 3}, 3, 0, 0)
	if r.HasMore {
		t.Error("unlimited response can never have more")
	}
}
