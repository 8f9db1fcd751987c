package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestServer(repo Repository) *echo.Echo {
	e := echo.New()
	svc := NewService(repo, NewTokenIssuer("test-secret", time.Hour))
	NewHandler(svc, zerolog.Nop()).RegisterRoutes(e.Group("/api"))
	return e
}

func postJSON(e *echo.Echo, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint_Created(t *testing.T) {
	e := newTestServer(newMockRepo())

	rec := postJSON(e, "/api/auth/register",
		`{"username":"ghopper","password":"correct horse","firstName":"Grace","lastName":"Hopper","discipline":"RN"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		User Profile `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.User.Username != "ghopper" || body.User.FirstName != "Grace" {
		t.Errorf("unexpected user: %+v", body.User)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Error("response must not carry credential material")
	}
}

func TestLoginEndpoint_ReturnsUserAndToken(t *testing.T) {
	e := newTestServer(newMockRepo())

	postJSON(e, "/api/auth/register", `{"username":"ghopper","password":"correct horse"}`)

	rec := postJSON(e, "/api/auth/login", `{"username":"ghopper","password":"correct horse"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		User  Profile `json:"user"`
		Token string  `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Token == "" {
		t.Error("expected a token")
	}
	if body.User.Username != "ghopper" {
		t.Errorf("unexpected user: %+v", body.User)
	}
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	e := newTestServer(newMockRepo())

	postJSON(e, "/api/auth/register", `{"username":"ghopper","password":"correct horse"}`)

	for _, body := range []string{
		`{"username":"ghopper","password":"wrong"}`,
		`{"username":"nobody","password":"whatever"}`,
	} {
		rec := postJSON(e, "/api/auth/login", body)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Invalid username or password") {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	}
}

func TestRegisterEndpoint_MissingCredentials(t *testing.T) {
	e := newTestServer(newMockRepo())

	rec := postJSON(e, "/api/auth/register", `{"username":"ghopper"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
