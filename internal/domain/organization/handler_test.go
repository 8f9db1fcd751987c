package organization

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestServer(repo Repository) *echo.Echo {
	e := echo.New()
	NewHandler(NewService(repo), zerolog.Nop()).RegisterRoutes(e.Group("/api"))
	return e
}

func postJSON(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/organizations/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const validBody = `{
	"name": "Sunrise Home Health",
	"address": "100 Main St",
	"city": "Springfield",
	"state": "IL",
	"zipCode": "62704",
	"phone": "555-0100",
	"email": "admin@sunrise.example",
	"password": "long enough"
}`

func TestRegisterEndpoint_Created(t *testing.T) {
	e := newTestServer(newMockRepo())

	rec := postJSON(e, validBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Organization Summary `json:"organization"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Organization.Name != "Sunrise Home Health" || body.Organization.Email != "admin@sunrise.example" {
		t.Errorf("unexpected organization: %+v", body.Organization)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Error("response must not carry credential material")
	}
}

func TestRegisterEndpoint_MissingField(t *testing.T) {
	e := newTestServer(newMockRepo())

	rec := postJSON(e, `{"name":"Sunrise Home Health"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "address is required") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	e := newTestServer(newMockRepo())

	postJSON(e, validBody)
	rec := postJSON(e, validBody)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Organization with this email already exists") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
