package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/neobank/neobank/internal/api/middleware"
	"github.com/neobank/neobank/internal/core/domain"
)

type stubAccountService struct {
	registerFn func(ctx context.Context, username, pass string) (*domain.Account, string, error)
	loginFn    func(ctx context.Context, username, pass string) (*domain.Account, string, error)
	profileFn  func(ctx context.Context, tokenID, subjectID, requestedID string) (*domain.Account, error)
}

func (s *stubAccountService) Register(ctx context.Context, username, pass string) (*domain.Account, string, error) {
	return s.registerFn(ctx, username, pass)
}

func (s *stubAccountService) Login(ctx context.Context, username, pass string) (*domain.Account, string, error) {
	return s.loginFn(ctx, username, pass)
}

func (s *stubAccountService) Profile(ctx context.Context, tokenID, subjectID, requestedID string) (*domain.Account, error) {
	return s.profileFn(ctx, tokenID, subjectID, requestedID)
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAccountService{
		loginFn: func(ctx context.Context, username, pass string) (*domain.Account, string, error) {
			if username != "alice" || pass != "secret" {
				t.Fatalf("unexpected args: %q %q", username, pass)
			}
			return &domain.Account{ID: "1", Username: "alice", Balance: 500}, "signed-token", nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	c, rec := newJSONContext(t, http.MethodPost, "/login", `{"username":"alice","pass":"secret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "1" || resp["username"] != "alice" {
		t.Fatalf("unexpected payload: %v", resp)
	}
	if _, hasError := resp["error"]; hasError {
		t.Fatalf("success payload must not carry an error field")
	}

	cookies := rec.Result().Cookies()
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == middleware.CookieName && cookie.Value == "signed-token" {
			found = true
		}
	}
	if !found {
		t.Fatalf("session cookie not set, got %v", cookies)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAccountService{
		loginFn: func(ctx context.Context, username, pass string) (*domain.Account, string, error) {
			return nil, "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	c, _ := newJSONContext(t, http.MethodPost, "/login", `{"username":"alice","pass":"wrong"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAccountService{}, time.Hour)

	c, _ := newJSONContext(t, http.MethodPost, "/login", `{"username":"alice"}`)
	err := h.Login(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing pass, got %v", err)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(ctx context.Context, username, pass string) (*domain.Account, string, error) {
			return &domain.Account{ID: "abc", Username: username, Balance: 500}, "tok", nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	// The client sends id as an explicit null; it must bind cleanly.
	c, rec := newJSONContext(t, http.MethodPost, "/register", `{"username":"bob","pass":"pw","id":null}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "abc" || resp["username"] != "bob" {
		t.Fatalf("unexpected payload: %v", resp)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(ctx context.Context, username, pass string) (*domain.Account, string, error) {
			return nil, "", domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	c, _ := newJSONContext(t, http.MethodPost, "/register", `{"username":"bob","pass":"pw","id":null}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}
