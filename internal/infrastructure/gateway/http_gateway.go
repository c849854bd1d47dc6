// Package gateway is the thin HTTP wrapper around the remote banking API.
// It carries the session cookie on every request via a shared cookie jar and
// decodes the backend's JSON envelope; it does not retry and does not cache.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/neobank/neobank/internal/core/domain"
	"github.com/neobank/neobank/internal/core/ports"
)

const transportFailureMessage = "banking service unavailable"

// HTTPGateway implements ports.BackendGateway against a JSON-over-HTTP
// backend that reports failures through an {"error": "..."} payload field
// rather than the transport status.
type HTTPGateway struct {
	base   string
	client *http.Client
	log    zerolog.Logger
}

func New(baseURL string, timeout time.Duration, log zerolog.Logger) (*HTTPGateway, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("gateway: parse base url: %w", err)
	}

	// The jar is what makes every call credential-bearing: the backend's
	// session cookie is captured on login and replayed automatically.
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("gateway: cookie jar: %w", err)
	}

	return &HTTPGateway{
		base:   strings.TrimRight(base.String(), "/"),
		client: &http.Client{Jar: jar, Timeout: timeout},
		log:    log,
	}, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Pass     string `json:"pass"`
}

// registerRequest carries an explicit null id to signal "create new".
type registerRequest struct {
	Username string  `json:"username"`
	Pass     string  `json:"pass"`
	ID       *string `json:"id"`
}

type authResponse struct {
	Error    string        `json:"error"`
	ID       domain.UserID `json:"id"`
	Username string        `json:"username"`
}

type profileResponse struct {
	Error    string   `json:"error"`
	Username string   `json:"username"`
	Balance  *float64 `json:"balance"`
}

func (g *HTTPGateway) Authenticate(ctx context.Context, kind ports.AuthKind, username, pass string) (*ports.AuthResult, error) {
	var path string
	var payload any
	switch kind {
	case ports.AuthRegister:
		path = "/register"
		payload = registerRequest{Username: username, Pass: pass}
	default:
		path = "/login"
		payload = loginRequest{Username: username, Pass: pass}
	}

	var resp authResponse
	if err := g.post(ctx, path, payload, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, &domain.BackendError{Message: resp.Error}
	}
	return &ports.AuthResult{ID: resp.ID, Username: resp.Username}, nil
}

func (g *HTTPGateway) FetchProfile(ctx context.Context, id domain.UserID) (*ports.Profile, error) {
	var resp profileResponse
	if err := g.get(ctx, "/user_info?user_id="+url.QueryEscape(string(id)), &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, &domain.BackendError{Message: resp.Error}
	}
	return &ports.Profile{Username: resp.Username, Balance: resp.Balance}, nil
}

func (g *HTTPGateway) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return g.transportFailure("encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.base+path, bytes.NewReader(body))
	if err != nil {
		return g.transportFailure("build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return g.do(req, out)
}

func (g *HTTPGateway) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.base+path, nil)
	if err != nil {
		return g.transportFailure("build request", err)
	}
	return g.do(req, out)
}

// do executes the request and decodes the body into out regardless of the
// HTTP status: success and failure are both told apart by the payload's
// error field, not the status line.
func (g *HTTPGateway) do(req *http.Request, out any) error {
	res, err := g.client.Do(req)
	if err != nil {
		return g.transportFailure("request failed", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return g.transportFailure("read response", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return g.transportFailure("decode response", err)
	}
	return nil
}

// transportFailure logs the real cause and returns the same failure shape a
// backend-reported error has, with a generic message. Callers are not meant
// to branch on the distinction; Transport is set for the ones that log it.
func (g *HTTPGateway) transportFailure(stage string, err error) error {
	g.log.Debug().Err(err).Str("stage", stage).Msg("gateway transport failure")
	return &domain.BackendError{Message: transportFailureMessage, Transport: true}
}
