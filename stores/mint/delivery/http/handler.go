package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/walletsandbox/walletapi/base/ctx"
	"github.com/walletsandbox/walletapi/base/delivery"
	"github.com/walletsandbox/walletapi/domain/mint"
)

type handler struct {
	mint   mint.UseCase
	events *EventRecorder
}

func New(e *echo.Echo, mintUseCase mint.UseCase, events *EventRecorder) {
	h := &handler{
		mint:   mintUseCase,
		events: events,
	}

	g := e.Group("/mint")
	g.POST("", h.submitMint)
	g.GET("/state", h.getBatchState)
	g.GET("/events", h.getEvents)
	g.POST("/seen/:index", h.markSeen)
}

func (h *handler) submitMint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Quantity int `json:"quantity" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	snap, err := h.mint.SubmitMint(ctx, p.Quantity)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, snap)
}

func (h *handler) getBatchState(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	return delivery.MakeJsonResp(c, http.StatusOK, h.mint.GetBatchState(ctx))
}

func (h *handler) getEvents(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, h.events.Events())
}

func (h *handler) markSeen(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Index int `param:"index"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.mint.MarkSeen(ctx, p.Index); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, h.mint.GetBatchState(ctx))
}
