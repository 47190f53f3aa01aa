package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/walletsandbox/walletapi/base/ctx"
	"github.com/walletsandbox/walletapi/base/goroutine"
	"github.com/walletsandbox/walletapi/base/log"
	bValidator "github.com/walletsandbox/walletapi/base/validator"
	"github.com/walletsandbox/walletapi/domain"
	"github.com/walletsandbox/walletapi/domain/asset"
	mmiddleware "github.com/walletsandbox/walletapi/middleware"
	"github.com/walletsandbox/walletapi/service/chain"
	"github.com/walletsandbox/walletapi/service/chain/contract"
	asset_repository "github.com/walletsandbox/walletapi/stores/asset/repository"
	asset_usecase "github.com/walletsandbox/walletapi/stores/asset/usecase"
	hc_delivery "github.com/walletsandbox/walletapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/walletsandbox/walletapi/stores/healthcheck/repository"
	hc_usecase "github.com/walletsandbox/walletapi/stores/healthcheck/usecase"
	mint_delivery "github.com/walletsandbox/walletapi/stores/mint/delivery/http"
	mint_usecase "github.com/walletsandbox/walletapi/stores/mint/usecase"
	wallet_delivery "github.com/walletsandbox/walletapi/stores/wallet/delivery/http"
	wallet_usecase "github.com/walletsandbox/walletapi/stores/wallet/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init chain client
	context.Info("init chain client")
	chainClient, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrl:     viper.GetString("network.rpcUrl"),
		PrivateKey: viper.GetString("network.privateKey"),
	})
	if err != nil {
		log.Log().WithField("err", err).Panic("failed to init chain client")
	}
	erc721Service := contract.NewErc721(chainClient, domain.Address(viper.GetString("mint.contract")).ToLower())
	nativeService := chain.NewNative(chainClient)

	// init asset reader, gateway fetches by default, a local ipfs node api
	// when configured
	assetTimeout := viper.GetDuration("asset.timeout")
	var reader asset.Reader
	if viper.GetString("asset.mode") == "node" {
		shell := ipfsapi.NewShell(viper.GetString("asset.nodeUrl"))
		reader = asset_repository.NewIpfsNodeApiReaderRepo(shell, assetTimeout)
	} else {
		reader = asset_repository.NewGatewayReaderRepo(http.Client{}, assetTimeout, viper.GetInt("asset.retries"))
	}
	reader = asset_repository.NewCacheReaderRepo(
		viper.GetInt("asset.cacheSize"),
		viper.GetDuration("asset.cacheTtl"),
		reader,
	)
	source := asset_usecase.NewSource(&asset_usecase.SourceCfg{
		Gateways: viper.GetStringSlice("asset.gateways"),
		Reader:   reader,
	})

	// construct repository, usecase and delivery
	events := mint_delivery.NewEventRecorder()
	mintUseCase := mint_usecase.New(&mint_usecase.MintUseCaseCfg{
		Chain:         erc721Service,
		Source:        source,
		Events:        events,
		Account:       chainClient.Account(),
		Confirmations: viper.GetUint64("mint.confirmations"),
		Workers:       viper.GetInt("mint.workers"),
	})
	walletUseCase := wallet_usecase.New(&wallet_usecase.WalletUseCaseCfg{
		Chain:         nativeService,
		Account:       chainClient.Account(),
		Confirmations: viper.GetUint64("mint.confirmations"),
	})
	hc := hc_usecase.New(hc_repo.New(chainClient))

	hc_delivery.New(e, hc)
	mint_delivery.New(e, mintUseCase, events)
	wallet_delivery.New(e, walletUseCase)

	goroutine.RecoverableGo(func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	})

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
