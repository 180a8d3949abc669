package domain

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source=service.go -destination=../mocks/mock_service.go -package=mocks
type Service interface {
	Create(ctx context.Context, req CreateSchoolRequest) (*SchoolResponse, error)
	GetByID(ctx context.Context, id string) (*SchoolResponse, error)
}

type CreateSchoolRequest struct {
	Name string
	Slug string
}

type SchoolResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidSlug = errors.New("invalid_slug")
	ErrSlugTaken   = errors.New("slug already in use")
	ErrNotFound    = errors.New("school not found")
)
