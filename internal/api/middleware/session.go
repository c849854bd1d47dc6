package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// CookieName is the session cookie issued on login and registration.
const CookieName = "neobank_session"

// Context keys set by Session for downstream handlers.
const (
	ContextTokenID = "token_id"
	ContextUserID  = "user_id"
)

// Session validates the session cookie's JWT and injects the token id and
// subject into context. Whether the token is still honoured server-side is
// the account service's call, made against the token store.
func Session(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session cookie")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			tokenID, _ := claims["jti"].(string)
			subject, _ := claims["sub"].(string)
			if tokenID == "" || subject == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			c.Set(ContextTokenID, tokenID)
			c.Set(ContextUserID, subject)

			return next(c)
		}
	}
}
