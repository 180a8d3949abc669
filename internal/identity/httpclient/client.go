// Package httpclient implements the identity provider contract against a
// better-auth style HTTP API.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/classhive/classhive/internal/config"
	"github.com/classhive/classhive/internal/identity/domain"
	"go.uber.org/zap"
)

const (
	signInPath     = "/sign-in/email"
	signUpPath     = "/sign-up/email"
	getSessionPath = "/get-session"
)

// Headers forwarded verbatim to the provider's session lookup.
var sessionHeaders = []string{"Cookie", "Authorization"}

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func New(cfg config.Config, log *zap.Logger) domain.Provider {
	return &Client{
		baseURL: strings.TrimRight(cfg.IdentityBaseURL, "/"),
		http: &http.Client{
			Timeout: cfg.IdentityTimeout,
		},
		log: log.Named("identity.client"),
	}
}

func (c *Client) SignInEmail(ctx context.Context, req domain.SignInRequest) (*domain.Session, error) {
	var session domain.Session
	if err := c.postJSON(ctx, signInPath, req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) SignUpEmail(ctx context.Context, req domain.SignUpRequest) (*domain.SignUpResult, error) {
	body, err := c.post(ctx, signUpPath, req)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 || bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return nil, nil
	}

	var result domain.SignUpResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode sign-up response: %w", err)
	}
	return &result, nil
}

func (c *Client) GetSession(ctx context.Context, headers http.Header) (*domain.Session, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+getSessionPath, nil)
	if err != nil {
		return nil, err
	}
	for _, name := range sessionHeaders {
		for _, value := range headers.Values(name) {
			httpReq.Header.Add(name, value)
		}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, providerError(resp.StatusCode, body)
	}
	if len(bytes.TrimSpace(body)) == 0 || bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return nil, nil
	}

	var session domain.Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("decode session response: %w", err)
	}
	if session.User == nil {
		return nil, nil
	}
	return &session, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := c.post(ctx, path, payload)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Warn("identity provider rejected request",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return nil, providerError(resp.StatusCode, body)
	}

	return body, nil
}

func providerError(status int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		message = payload.Message
		if message == "" {
			message = payload.Error
		}
	}
	return &domain.ProviderError{Status: status, Message: message}
}
