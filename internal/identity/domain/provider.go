// Package domain defines the identity provider contract. Credentials and
// sessions are owned by the provider; this system only consumes its API.
package domain

import (
	"context"
	"errors"
	"net/http"
)

//go:generate mockgen -source=provider.go -destination=../mocks/mock_provider.go -package=mocks
type Provider interface {
	SignInEmail(ctx context.Context, req SignInRequest) (*Session, error)
	SignUpEmail(ctx context.Context, req SignUpRequest) (*SignUpResult, error)
	// GetSession resolves the session referenced by the request headers.
	// It returns (nil, nil) when no active session exists.
	GetSession(ctx context.Context, headers http.Header) (*Session, error)
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	SchoolID string `json:"schoolId,omitempty"`
	Role     string `json:"role,omitempty"`
}

// User is the provider's view of an account, including the school fields it
// stores as additional user attributes.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	SchoolID string `json:"schoolId,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Session is the provider session payload, passed through to callers unchanged.
type Session struct {
	User    *User          `json:"user"`
	Session map[string]any `json:"session,omitempty"`
	Token   string         `json:"token,omitempty"`
}

// SignUpResult wraps the provider sign-up response. User may be nil when the
// provider returns a malformed payload.
type SignUpResult struct {
	User *User `json:"user"`
}

var ErrProviderUnavailable = errors.New("identity provider unavailable")

// ProviderError carries the provider's own failure message and status.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return "identity provider request failed"
	}
	return e.Message
}
