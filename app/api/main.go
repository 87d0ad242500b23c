package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/arrematec/goapi/base/ctx"
	"github.com/arrematec/goapi/base/database/mongoclient"
	"github.com/arrematec/goapi/base/log"
	bValidator "github.com/arrematec/goapi/base/validator"
	"github.com/arrematec/goapi/domain/keys"
	mmiddleware "github.com/arrematec/goapi/middleware"
	"github.com/arrematec/goapi/service/cache"
	"github.com/arrematec/goapi/service/cache/provider/primitive"
	"github.com/arrematec/goapi/service/query"
	auction_delivery "github.com/arrematec/goapi/stores/auction/delivery/http"
	auction_repository "github.com/arrematec/goapi/stores/auction/repository"
	auction_usecase "github.com/arrematec/goapi/stores/auction/usecase"
	auth_delivery "github.com/arrematec/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/arrematec/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/arrematec/goapi/stores/auth/usecase"
	hc_delivery "github.com/arrematec/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/arrematec/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/arrematec/goapi/stores/healthcheck/usecase"
	user_repository "github.com/arrematec/goapi/stores/user/repository"
	user_usecase "github.com/arrematec/goapi/stores/user/usecase"
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

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init in-process cache
	context.Info("init cache")
	cacheSizeMB := viper.GetInt("cache.sizeMB")
	summaryTtl := viper.GetDuration("cache.summaryTtl")
	summaryCache := cache.New(cache.ServiceConfig{
		Ttl:   summaryTtl,
		Pfx:   keys.PfxAuctionSummary,
		Cache: primitive.NewPrimitive("summary", cacheSizeMB),
	})
	healthCache := cache.New(cache.ServiceConfig{
		Ttl:   30 * time.Second,
		Pfx:   keys.PfxHealthCheck,
		Cache: primitive.NewPrimitive("healthcheck", 1),
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, healthCache)
	auctionRepo := auction_repository.New(q)
	userRepo := user_repository.New(q)

	hc := hc_usecase.New(hcRepo)
	auction := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		AuctionRepo:  auctionRepo,
		SummaryCache: summaryCache,
	})
	user := user_usecase.New(userRepo)
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), user)

	authMiddleware := auth_middleware.New(auth)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, authMiddleware.Auth(), auth, user)
	auction_delivery.New(e, authMiddleware.Auth(), auction)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
