package identity

import (
	"github.com/classhive/classhive/internal/identity/httpclient"
	"go.uber.org/fx"
)

var Module = fx.Module("identity.client",
	fx.Provide(httpclient.New),
)
