package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/classhive/classhive/internal/auth"
	"github.com/classhive/classhive/internal/config"
	"github.com/classhive/classhive/internal/identity"
	"github.com/classhive/classhive/internal/migration"
	"github.com/classhive/classhive/internal/observability"
	"github.com/classhive/classhive/internal/ratelimit"
	"github.com/classhive/classhive/internal/school"
	"github.com/classhive/classhive/internal/server"
	"github.com/classhive/classhive/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(newIDNode),
		db.Module,
		migration.Module,
		identity.Module,
		school.Module,
		auth.Module,
		ratelimit.Module,
		server.Module,
	)

	app.Run()
}

func newIDNode(cfg config.Config) (*snowflake.Node, error) {
	return snowflake.NewNode(cfg.NodeID)
}
