package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/neobank/neobank/internal/api/metrics"
	"github.com/neobank/neobank/internal/api/middleware"
	"github.com/neobank/neobank/internal/core/ports"
)

type UserHandler struct {
	accounts ports.AccountService
}

func NewUserHandler(accounts ports.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

type userInfoResponse struct {
	Username string  `json:"username"`
	Balance  float64 `json:"balance"`
}

// Info serves GET /user_info?user_id=<id>. The session middleware has already
// verified the cookie's signature; the service checks the token is still
// honoured and owns the requested account. A rejection here is what forces a
// client back to its login page.
func (h *UserHandler) Info(c echo.Context) error {
	requestedID := c.QueryParam("user_id")
	if requestedID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	tokenID, _ := c.Get(middleware.ContextTokenID).(string)
	subjectID, _ := c.Get(middleware.ContextUserID).(string)

	account, err := h.accounts.Profile(c.Request().Context(), tokenID, subjectID, requestedID)
	if err != nil {
		metrics.ProfileFetchesTotal.WithLabelValues("rejected").Inc()
		return err
	}
	metrics.ProfileFetchesTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, userInfoResponse{
		Username: account.Username,
		Balance:  account.Balance,
	})
}
