package school

import (
	"github.com/classhive/classhive/internal/school/repository"
	"github.com/classhive/classhive/internal/school/service"
	"go.uber.org/fx"
)

var Module = fx.Module("school.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
