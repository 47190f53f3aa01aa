package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/walletsandbox/walletapi/base/ctx"
	"github.com/walletsandbox/walletapi/base/delivery"
	"github.com/walletsandbox/walletapi/domain"
	"github.com/walletsandbox/walletapi/domain/wallet"
)

type handler struct {
	wallet wallet.UseCase
}

func New(e *echo.Echo, walletUseCase wallet.UseCase) {
	h := &handler{
		wallet: walletUseCase,
	}

	g := e.Group("/wallet")
	g.GET("/balance/:address", h.getBalance)
	g.POST("/transfer", h.transfer)
}

func (h *handler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Address string `param:"address" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	balance, err := h.wallet.Balance(ctx, domain.Address(p.Address))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, balance)
}

func (h *handler) transfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		To     string `json:"to" validate:"required"`
		Amount string `json:"amount" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	receipt, err := h.wallet.Transfer(ctx, domain.Address(p.To), p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, receipt)
}
