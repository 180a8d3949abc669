package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/classhive/classhive/internal/school/domain"
	"github.com/classhive/classhive/pkg/db"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

const minNameLength = 3

type service struct {
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func NewService(log *zap.Logger, repo domain.Repository, genID *snowflake.Node) domain.Service {
	return &service{
		log:   log.Named("school.service"),
		repo:  repo,
		genID: genID,
	}
}

func (s *service) Create(ctx context.Context, req domain.CreateSchoolRequest) (*domain.SchoolResponse, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) < minNameLength {
		return nil, domain.ErrInvalidName
	}

	candidate := strings.TrimSpace(req.Slug)
	if !validSlug(candidate) {
		return nil, domain.ErrInvalidSlug
	}

	now := time.Now().UTC()
	school := &domain.School{
		ID:        s.genID.Generate(),
		Name:      name,
		Slug:      candidate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Uniqueness is enforced by the ux_schools_slug index; there is no
	// pre-check read, so concurrent creates cannot race past it.
	if err := s.repo.Create(ctx, school); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}

	s.log.Info("school created",
		zap.String("school_id", school.ID.String()),
		zap.String("slug", school.Slug),
	)

	return toResponse(school), nil
}

func (s *service) GetByID(ctx context.Context, id string) (*domain.SchoolResponse, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrNotFound
	}

	school, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		return nil, err
	}
	return toResponse(school), nil
}

// validSlug accepts lowercase alphanumerics and hyphens, at least three
// characters. Underscores pass slug.IsSlug but are not allowed here.
func validSlug(candidate string) bool {
	if len(candidate) < minNameLength {
		return false
	}
	if strings.ContainsRune(candidate, '_') {
		return false
	}
	return slug.IsSlug(candidate)
}

func toResponse(school *domain.School) *domain.SchoolResponse {
	return &domain.SchoolResponse{
		ID:        school.ID.String(),
		Name:      school.Name,
		Slug:      school.Slug,
		CreatedAt: school.CreatedAt,
	}
}
