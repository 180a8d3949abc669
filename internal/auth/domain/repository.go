package domain

import "context"

//go:generate mockgen -source=repository.go -destination=../mocks/mock_repository.go -package=mocks
type Repository interface {
	// LinkUserToSchool attaches a user to a school with the given role in a
	// single update keyed by user id.
	LinkUserToSchool(ctx context.Context, userID, schoolID, role string) error
}
