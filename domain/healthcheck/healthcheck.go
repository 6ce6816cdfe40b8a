package healthcheck

import (
	"github.com/mintfolio/settleapi/base/ctx"
)

type HealthCheckRepo interface {
	PingDB(ctx.Ctx) error
}

type HealthCheckUsecase interface {
	Check(ctx.Ctx) error
}
