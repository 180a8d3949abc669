package auth

import (
	"github.com/classhive/classhive/internal/auth/repository"
	"github.com/classhive/classhive/internal/auth/service"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
