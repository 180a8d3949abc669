package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	authdomain "github.com/classhive/classhive/internal/auth/domain"
	identitydomain "github.com/classhive/classhive/internal/identity/domain"
	schooldomain "github.com/classhive/classhive/internal/school/domain"
	"github.com/classhive/classhive/pkg/schoolctx"
)

func TestAuthRequiredRejectsAnonymous(t *testing.T) {
	provider := &fakeProvider{
		getSessionFn: func(_ context.Context, _ http.Header) (*identitydomain.Session, error) {
			return nil, nil
		},
	}
	s := newTestServer(t, &fakeAuthService{}, &fakeSchoolService{}, provider)

	rec := doJSON(s, http.MethodPost, "/api/schools",
		`{"name":"Greenwood High","slug":"greenwood-high"}`, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if payload := decodeError(t, rec); payload.Message != "Login required" {
		t.Fatalf("message = %q, want Login required", payload.Message)
	}
}

func TestAuthRequiredRejectsSessionWithoutUser(t *testing.T) {
	provider := &fakeProvider{
		getSessionFn: func(_ context.Context, _ http.Header) (*identitydomain.Session, error) {
			return &identitydomain.Session{}, nil
		},
	}
	s := newTestServer(t, &fakeAuthService{}, &fakeSchoolService{}, provider)

	rec := doJSON(s, http.MethodGet, "/api/schools/1", "", nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthRequiredPropagatesProviderError(t *testing.T) {
	provider := &fakeProvider{
		getSessionFn: func(_ context.Context, _ http.Header) (*identitydomain.Session, error) {
			return nil, identitydomain.ErrProviderUnavailable
		},
	}
	s := newTestServer(t, &fakeAuthService{}, &fakeSchoolService{}, provider)

	rec := doJSON(s, http.MethodGet, "/api/schools/1", "", nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if payload := decodeError(t, rec); payload.Message != "internal server error" {
		t.Fatalf("message = %q, want opaque internal error", payload.Message)
	}
}

func TestAuthRequiredInjectsCallerContext(t *testing.T) {
	provider := &fakeProvider{
		getSessionFn: func(_ context.Context, _ http.Header) (*identitydomain.Session, error) {
			return &identitydomain.Session{
				User: &identitydomain.User{
					ID:       "user-1",
					SchoolID: "school-1",
					Role:     authdomain.RoleSchoolAdmin,
				},
			}, nil
		},
	}
	var seenUser, seenSchool, seenRole string
	schools := &fakeSchoolService{
		getFn: func(ctx context.Context, _ string) (*schooldomain.SchoolResponse, error) {
			seenUser, _ = schoolctx.UserID(ctx)
			seenSchool, _ = schoolctx.SchoolID(ctx)
			seenRole, _ = schoolctx.Role(ctx)
			return &schooldomain.SchoolResponse{ID: "1"}, nil
		},
	}
	s := newTestServer(t, &fakeAuthService{}, schools, provider)

	rec := doJSON(s, http.MethodGet, "/api/schools/1", "", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if seenUser != "user-1" || seenSchool != "school-1" || seenRole != authdomain.RoleSchoolAdmin {
		t.Fatalf("caller context = (%q, %q, %q)", seenUser, seenSchool, seenRole)
	}
}

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	auth := &fakeAuthService{
		loginFn: func(_ context.Context, _ authdomain.LoginRequest) (*identitydomain.Session, error) {
			return nil, errors.New("downstream reached")
		},
	}
	s := newTestServer(t, auth, &fakeSchoolService{}, &fakeProvider{})

	// limiter is nil in the test server; the login handler must still run.
	rec := doJSON(s, http.MethodPost, "/api/auth/login",
		`{"email":"admin@greenwood.edu","password":"secret-pass"}`, nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want handler to be reached", rec.Code)
	}
}
