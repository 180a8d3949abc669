package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/classhive/classhive/internal/config"
	"github.com/classhive/classhive/internal/identity/domain"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) domain.Provider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(config.Config{
		IdentityBaseURL: srv.URL,
		IdentityTimeout: 2 * time.Second,
	}, zap.NewNop())
}

func TestSignInEmailSuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/sign-in/email", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":"user-1","email":"alice@example.com"},"token":"tok"}`))
	}))

	session, err := client.SignInEmail(context.Background(), domain.SignInRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, session.User)
	require.Equal(t, "user-1", session.User.ID)
	require.Equal(t, "tok", session.Token)
}

func TestSignInEmailRejectedCarriesProviderMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid email or password"}`))
	}))

	_, err := client.SignInEmail(context.Background(), domain.SignInRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.Error(t, err)

	var provErr *domain.ProviderError
	require.True(t, errors.As(err, &provErr))
	require.Equal(t, http.StatusUnauthorized, provErr.Status)
	require.Equal(t, "Invalid email or password", provErr.Message)
}

func TestSignUpEmailSendsSchoolFields(t *testing.T) {
	var gotBody string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sign-up/email", r.URL.Path)
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":"user-1","name":"Admin User","email":"admin@test.com"}}`))
	}))

	result, err := client.SignUpEmail(context.Background(), domain.SignUpRequest{
		Email:    "admin@test.com",
		Password: "password123",
		Name:     "Admin User",
		SchoolID: "school-1",
		Role:     "schoolAdmin",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.User)
	require.Equal(t, "user-1", result.User.ID)
	require.Contains(t, gotBody, `"schoolId":"school-1"`)
	require.Contains(t, gotBody, `"role":"schoolAdmin"`)
}

func TestSignUpEmailNullResponse(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`null`))
	}))

	result, err := client.SignUpEmail(context.Background(), domain.SignUpRequest{
		Email:    "admin@test.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.Nil(t, result)
}

func TestSignUpEmailMissingUserField(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))

	result, err := client.SignUpEmail(context.Background(), domain.SignUpRequest{
		Email:    "admin@test.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Nil(t, result.User)
}

func TestGetSessionForwardsCredentialHeaders(t *testing.T) {
	var gotCookie, gotAuthorization string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/get-session", r.URL.Path)
		gotCookie = r.Header.Get("Cookie")
		gotAuthorization = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":"user-1","schoolId":"school-1","role":"schoolAdmin"}}`))
	}))

	headers := http.Header{}
	headers.Set("Cookie", "session=abc")
	headers.Set("Authorization", "Bearer token")
	headers.Set("X-Unrelated", "dropped")

	session, err := client.GetSession(context.Background(), headers)
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Equal(t, "session=abc", gotCookie)
	require.Equal(t, "Bearer token", gotAuthorization)
	require.Equal(t, "school-1", session.User.SchoolID)
}

func TestGetSessionNoActiveSession(t *testing.T) {
	for name, body := range map[string]string{
		"null body":  `null`,
		"empty body": ``,
		"no user":    `{"session":{"id":"s1"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))

			session, err := client.GetSession(context.Background(), http.Header{})
			require.NoError(t, err)
			require.Nil(t, session)
		})
	}
}

func TestGetSessionUnauthorizedStatusMeansNoSession(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	session, err := client.GetSession(context.Background(), http.Header{})
	require.NoError(t, err)
	require.Nil(t, session)
}

func TestProviderUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := New(config.Config{
		IdentityBaseURL: srv.URL,
		IdentityTimeout: time.Second,
	}, zap.NewNop())

	_, err := client.SignInEmail(context.Background(), domain.SignInRequest{Email: "a@b.c", Password: "x"})
	require.ErrorIs(t, err, domain.ErrProviderUnavailable)
}
