package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/neobank/neobank/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json envelope: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrSessionRejected, http.StatusUnauthorized, "invalid session"},
	}

	for _, c := range cases {
		code, body := renderError(t, c.err)
		if code != c.wantCode {
			t.Errorf("%v: code = %d, want %d", c.err, code, c.wantCode)
		}
		if body["error"] != c.wantMsg {
			t.Errorf("%v: envelope = %v, want error=%q", c.err, body, c.wantMsg)
		}
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, body := renderError(t, errors.New("mongo exploded: creds=hunter2"))
	if code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal details leaked: %v", body)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "pass is required"))
	if code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", code)
	}
	if body["error"] != "pass is required" {
		t.Fatalf("unexpected envelope: %v", body)
	}
}
