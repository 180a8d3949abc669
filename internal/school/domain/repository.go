package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

//go:generate mockgen -source=repository.go -destination=../mocks/mock_repository.go -package=mocks
type Repository interface {
	Create(ctx context.Context, school *School) error
	FindByID(ctx context.Context, id snowflake.ID) (*School, error)
	FindBySlug(ctx context.Context, slug string) (*School, error)
}
