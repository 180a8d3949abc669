package service

import (
	"context"
	"net/http"

	"github.com/classhive/classhive/internal/auth/domain"
	identitydomain "github.com/classhive/classhive/internal/identity/domain"
	schooldomain "github.com/classhive/classhive/internal/school/domain"
	"go.uber.org/zap"
)

type service struct {
	log      *zap.Logger
	repo     domain.Repository
	schools  schooldomain.Service
	provider identitydomain.Provider
}

func NewService(log *zap.Logger, repo domain.Repository, schools schooldomain.Service, provider identitydomain.Provider) domain.Service {
	return &service{
		log:      log.Named("auth.service"),
		repo:     repo,
		schools:  schools,
		provider: provider,
	}
}

// Login delegates credential verification to the identity provider. Every
// provider failure is normalized to an unauthorized error carrying the
// provider's message.
func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*identitydomain.Session, error) {
	session, err := s.provider.SignInEmail(ctx, identitydomain.SignInRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, domain.Unauthorized(err.Error())
	}
	return session, nil
}

// RegisterSchool runs the onboarding workflow: create the school, create
// the admin account at the identity provider, then link the two. Steps are
// strictly sequential and nothing is compensated on partial failure.
func (s *service) RegisterSchool(ctx context.Context, req domain.RegisterSchoolRequest) (*domain.RegisterSchoolResult, error) {
	school, err := s.schools.Create(ctx, schooldomain.CreateSchoolRequest{
		Name: req.SchoolName,
		Slug: req.Slug,
	})
	if err != nil {
		return nil, err
	}

	signup, err := s.provider.SignUpEmail(ctx, identitydomain.SignUpRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.AdminName,
		SchoolID: school.ID,
		Role:     domain.RoleSchoolAdmin,
	})
	if err != nil || signup == nil || signup.User == nil {
		// The school already exists and now has no admin. Accepted
		// outcome; the slug stays consumed until operators intervene.
		s.log.Warn("admin account creation failed after school create",
			zap.String("school_id", school.ID),
			zap.String("slug", school.Slug),
			zap.Error(err),
		)
		return nil, domain.ErrUserCreationFailed
	}

	if err := s.repo.LinkUserToSchool(ctx, signup.User.ID, school.ID, domain.RoleSchoolAdmin); err != nil {
		return nil, err
	}

	s.log.Info("school registered",
		zap.String("school_id", school.ID),
		zap.String("admin_user_id", signup.User.ID),
	)

	return &domain.RegisterSchoolResult{
		Success: true,
		School:  school,
		User:    signup.User,
	}, nil
}

// Me resolves the caller's session from the request headers.
func (s *service) Me(ctx context.Context, headers http.Header) (*identitydomain.Session, error) {
	session, err := s.provider.GetSession(ctx, headers)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNoActiveSession
	}
	return session, nil
}
