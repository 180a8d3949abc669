package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/classhive/classhive/internal/school/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, school *domain.School) error {
	return r.db.WithContext(ctx).Create(school).Error
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*domain.School, error) {
	var school domain.School
	if err := r.db.WithContext(ctx).First(&school, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &school, nil
}

func (r *repository) FindBySlug(ctx context.Context, slug string) (*domain.School, error) {
	var school domain.School
	if err := r.db.WithContext(ctx).First(&school, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &school, nil
}
