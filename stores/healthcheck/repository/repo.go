package repository

import (
	"time"

	"github.com/walletsandbox/walletapi/base/ctx"
	hcdomain "github.com/walletsandbox/walletapi/domain/healthcheck"
	"github.com/walletsandbox/walletapi/service/chain"
)

type impl struct {
	client chain.Client
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(client chain.Client) hcdomain.HealthCheckRepo {
	return &impl{
		client: client,
	}
}

func (im *impl) PingChain(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	// a live balance read proves the rpc endpoint still answers
	if _, err := im.client.BalanceAt(ctx, im.client.Account()); err != nil {
		context.WithField("err", err).Error("ping rpc error")
		return err
	}
	return nil
}
