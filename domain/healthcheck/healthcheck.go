package healthcheck

import (
	"github.com/walletsandbox/walletapi/base/ctx"
)

// HealthCheckRepo represent the repository of the healcheck
type HealthCheckRepo interface {
	PingChain(ctx.Ctx) error
}

// HealthCheckUsecase represent the usecase of the healthcheck
type HealthCheckUsecase interface {
	Check(ctx.Ctx) error
}
