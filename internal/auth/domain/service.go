package domain

import (
	"context"
	"net/http"

	identitydomain "github.com/classhive/classhive/internal/identity/domain"
)

//go:generate mockgen -source=service.go -destination=../mocks/mock_service.go -package=mocks
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*identitydomain.Session, error)
	RegisterSchool(ctx context.Context, req RegisterSchoolRequest) (*RegisterSchoolResult, error)
	Me(ctx context.Context, headers http.Header) (*identitydomain.Session, error)
}
