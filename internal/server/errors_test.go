package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	authdomain "github.com/classhive/classhive/internal/auth/domain"
	schooldomain "github.com/classhive/classhive/internal/school/domain"
	"gorm.io/gorm"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantType    string
		wantMessage string
	}{
		{
			name:        "unauthorized keeps reason",
			err:         authdomain.Unauthorized("Invalid email or password"),
			wantStatus:  http.StatusUnauthorized,
			wantType:    "unauthorized",
			wantMessage: "Invalid email or password",
		},
		{
			name:        "no active session",
			err:         authdomain.ErrNoActiveSession,
			wantStatus:  http.StatusUnauthorized,
			wantType:    "unauthorized",
			wantMessage: "No active session",
		},
		{
			name:        "user creation failed",
			err:         authdomain.ErrUserCreationFailed,
			wantStatus:  http.StatusBadRequest,
			wantType:    "bad_request",
			wantMessage: "User creation failed",
		},
		{
			name:       "wrapped user creation failed",
			err:        fmt.Errorf("register school: %w", authdomain.ErrUserCreationFailed),
			wantStatus: http.StatusBadRequest,
			wantType:   "bad_request",
		},
		{
			name:       "slug taken",
			err:        schooldomain.ErrSlugTaken,
			wantStatus: http.StatusConflict,
			wantType:   "conflict",
		},
		{
			name:       "school not found",
			err:        schooldomain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantType:   "not_found",
		},
		{
			name:       "gorm record not found",
			err:        gorm.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
			wantType:   "not_found",
		},
		{
			name:       "invalid slug",
			err:        schooldomain.ErrInvalidSlug,
			wantStatus: http.StatusBadRequest,
			wantType:   "validation_error",
		},
		{
			name:       "rate limited",
			err:        ErrRateLimited,
			wantStatus: http.StatusTooManyRequests,
			wantType:   "rate_limited",
		},
		{
			name:        "unexpected error stays opaque",
			err:         errors.New("pq: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantType:    "internal_error",
			wantMessage: "internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, payload := mapError(tc.err)
			if status != tc.wantStatus {
				t.Fatalf("status = %d, want %d", status, tc.wantStatus)
			}
			if payload.Type != tc.wantType {
				t.Fatalf("type = %q, want %q", payload.Type, tc.wantType)
			}
			if tc.wantMessage != "" && payload.Message != tc.wantMessage {
				t.Fatalf("message = %q, want %q", payload.Message, tc.wantMessage)
			}
		})
	}
}

func TestMapErrorValidationDetails(t *testing.T) {
	err := newValidationError("slug", "invalid_slug", "slug must be lowercase letters, digits and hyphens")

	status, payload := mapError(err)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if len(payload.Errors) != 1 || payload.Errors[0].Field != "slug" {
		t.Fatalf("unexpected details: %+v", payload.Errors)
	}
}
