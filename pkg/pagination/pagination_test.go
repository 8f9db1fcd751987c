package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paramsFor(t *testing.T, target string) Params {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return FromContext(e.NewContext(req, rec))
}

func TestFromContext_Defaults(t *testing.T) {
	p := paramsFor(t, "/")

	if p.Page != DefaultPage {
		t.Errorf("expected default page %d, got %d", DefaultPage, p.Page)
	}
	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
	if p.Offset() != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset())
	}
}

func TestFromContext_CustomValues(t *testing.T) {
	p := paramsFor(t, "/?page=3&limit=25")

	if p.Page != 3 {
		t.Errorf("expected page 3, got %d", p.Page)
	}
	if p.Limit != 25 {
		t.Errorf("expected limit 25, got %d", p.Limit)
	}
	if p.Offset() != 50 {
		t.Errorf("expected offset 50, got %d", p.Offset())
	}
}

func TestFromContext_NonNumeric(t *testing.T) {
	p := paramsFor(t, "/?page=abc&limit=xyz")

	if p.Page != DefaultPage {
		t.Errorf("expected default page on non-numeric input, got %d", p.Page)
	}
	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit on non-numeric input, got %d", p.Limit)
	}
}

func TestFromContext_MaxLimit(t *testing.T) {
	p := paramsFor(t, "/?limit=500")

	if p.Limit != MaxLimit {
		t.Errorf("expected limit capped at %d, got %d", MaxLimit, p.Limit)
	}
}

func TestFromContext_NegativePage(t *testing.T) {
	p := paramsFor(t, "/?page=-2")

	if p.Page != DefaultPage {
		t.Errorf("expected page reset to %d, got %d", DefaultPage, p.Page)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, limit, want int
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{36, 12, 3},
		{3, 1, 3},
		{100, 0, 0},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.limit); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestNewEnvelope_EchoesRequestedPage(t *testing.T) {
	env := NewEnvelope(Params{Page: 9, Limit: 12}, 3)

	if env.CurrentPage != 9 {
		t.Errorf("expected currentPage 9 (unclamped), got %d", env.CurrentPage)
	}
	if env.TotalPages != 1 {
		t.Errorf("expected totalPages 1, got %d", env.TotalPages)
	}
	if env.TotalCount != 3 {
		t.Errorf("expected totalCount 3, got %d", env.TotalCount)
	}
}

func TestParams_HasNextHasPrevious(t *testing.T) {
	p := Params{Page: 2, Limit: 10}

	if !p.HasNext(30) {
		t.Error("expected HasNext for total 30")
	}
	if p.HasNext(20) {
		t.Error("did not expect HasNext for total 20")
	}
	if !p.HasPrevious() {
		t.Error("expected HasPrevious on page 2")
	}
	if (Params{Page: 1, Limit: 10}).HasPrevious() {
		t.Error("did not expect HasPrevious on page 1")
	}
}
