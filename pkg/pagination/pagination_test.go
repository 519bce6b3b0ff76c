package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestFromContext_Defaults(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	p := FromContext(c)

	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected default offset 0, got %d", p.Offset)
	}
}

func TestFromContext_CustomValues(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?limit=50&offset=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	p := FromContext(c)

	if p.Limit != 50 {
		t.Errorf("expected limit 50, got %d", p.Limit)
	}
	if p.Offset != 10 {
		t.Errorf("expected offset 10, got %d", p.Offset)
	}
}

func TestFromContext_MaxLimit(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?limit=500", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	p := FromContext(c)

	if p.Limit != MaxLimit {
		t.Errorf("expected limit capped at %d, got %d", MaxLimit, p.Limit)
	}
}

func TestFromContext_NegativeOffset(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?offset=-5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	p := FromContext(c)

	if p.Offset != 0 {
		t.Errorf("expected offset clamped to 0, got %d", p.Offset)
	}
}

func TestParams_Navigation(t *testing.T) {
	p := Params{Limit: 20, Offset: 40}

	if !p.HasNext(100) {
		t.Error("expected HasNext for total 100")
	}
	if p.HasNext(50) {
		t.Error("expected no next page for total 50")
	}
	if !p.HasPrevious() {
		t.Error("expected HasPrevious for offset 40")
	}
	if got := p.NextOffset(); got != 60 {
		t.Errorf("expected next offset 60, got %d", got)
	}
	if got := p.PreviousOffset(); got != 20 {
		t.Errorf("expected previous offset 20, got %d", got)
	}

	first := Params{Limit: 20, Offset: 10}
	if got := first.PreviousOffset(); got != 0 {
		t.Errorf("expected previous offset 0, got %d", got)
	}
}

func TestNewResponse_HasMore(t *testing.T) {
	resp := NewResponse([]string{"a"}, 100, 20, 0)
	if !resp.HasMore {
		t.Error("expected has_more true")
	}

	resp = NewResponse([]string{"a"}, 10, 20, 0)
	if resp.HasMore {
		t.Error("expected has_more false")
	}
}
