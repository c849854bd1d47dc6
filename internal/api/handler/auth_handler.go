package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/neobank/neobank/internal/api/metrics"
	"github.com/neobank/neobank/internal/api/middleware"
	"github.com/neobank/neobank/internal/core/domain"
	"github.com/neobank/neobank/internal/core/ports"
)

type AuthHandler struct {
	accounts ports.AccountService
	tokenTTL time.Duration
}

func NewAuthHandler(accounts ports.AccountService, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{accounts: accounts, tokenTTL: tokenTTL}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Pass     string `json:"pass" validate:"required"`
}

// registerRequest matches the client's wire shape: id is sent as an explicit
// null to signal "create new" and is ignored here.
type registerRequest struct {
	Username string  `json:"username" validate:"required"`
	Pass     string  `json:"pass" validate:"required"`
	ID       *string `json:"id"`
}

// authResponse is the shared success shape of login and registration.
type authResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Register creates a new account, credits the signup bonus, and issues a
// session cookie.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, token, err := h.accounts.Register(c.Request().Context(), req.Username, req.Pass)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registerResult(err)).Inc()
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()

	h.setSessionCookie(c, token)
	return c.JSON(http.StatusOK, authResponse{ID: account.ID, Username: account.Username})
}

// Login verifies credentials and issues a session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, token, err := h.accounts.Login(c.Request().Context(), req.Username, req.Pass)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	h.setSessionCookie(c, token)
	return c.JSON(http.StatusOK, authResponse{ID: account.ID, Username: account.Username})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.tokenTTL),
		HttpOnly: true,
	})
}

func registerResult(err error) string {
	if err == domain.ErrUserExists {
		return "duplicate"
	}
	return "error"
}

func loginResult(err error) string {
	if err == domain.ErrInvalidCredentials || err == domain.ErrUserNotFound {
		return "invalid_credentials"
	}
	return "error"
}
