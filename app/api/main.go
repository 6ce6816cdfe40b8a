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
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/go-playground/validator/v10"
	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/base/database/mongoclient"
	"github.com/mintfolio/settleapi/base/log"
	bValidator "github.com/mintfolio/settleapi/base/validator"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/mint"
	mmiddleware "github.com/mintfolio/settleapi/middleware"
	"github.com/mintfolio/settleapi/service/query"
	asset_delivery "github.com/mintfolio/settleapi/stores/asset/delivery/http"
	asset_repository "github.com/mintfolio/settleapi/stores/asset/repository"
	asset_usecase "github.com/mintfolio/settleapi/stores/asset/usecase"
	auth_delivery "github.com/mintfolio/settleapi/stores/auth/delivery/http"
	auth_middleware "github.com/mintfolio/settleapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/mintfolio/settleapi/stores/auth/usecase"
	event_delivery "github.com/mintfolio/settleapi/stores/event/delivery/http"
	event_repository "github.com/mintfolio/settleapi/stores/event/repository"
	hc_delivery "github.com/mintfolio/settleapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/mintfolio/settleapi/stores/healthcheck/repository"
	hc_usecase "github.com/mintfolio/settleapi/stores/healthcheck/usecase"
	ledger_delivery "github.com/mintfolio/settleapi/stores/ledger/delivery/http"
	ledger_repository "github.com/mintfolio/settleapi/stores/ledger/repository"
	ledger_usecase "github.com/mintfolio/settleapi/stores/ledger/usecase"
	mint_delivery "github.com/mintfolio/settleapi/stores/mint/delivery/http"
	mint_usecase "github.com/mintfolio/settleapi/stores/mint/usecase"
	royalty_delivery "github.com/mintfolio/settleapi/stores/royalty/delivery/http"
	royalty_repository "github.com/mintfolio/settleapi/stores/royalty/repository"
	royalty_usecase "github.com/mintfolio/settleapi/stores/royalty/usecase"
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

// mustEnsureIndexes creates the unique indexes the insert-once contracts
// rely on: one ledger account per address, one royalty schedule and one
// asset record per asset id. CreateOne is a no-op when the index exists.
func mustEnsureIndexes(context ctx.Ctx, client *mongoclient.Client) {
	db := client.Database(client.DbName)
	uniques := []struct {
		table domain.Table
		key   string
	}{
		{domain.TableLedgerAccounts, "address"},
		{domain.TableRoyaltySchedules, "assetId"},
		{domain.TableAssets, "assetId"},
	}
	for _, u := range uniques {
		_, err := db.Collection(string(u.table)).Indexes().CreateOne(context, mongo.IndexModel{
			Keys:    bson.M{u.key: 1},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			context.WithField("err", err).Error("index bootstrap failed")
			panic(err)
		}
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.CORS)
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	mustEnsureIndexes(context, mongoClient)
	q := query.New(mongoClient)

	// repos
	ledgerRepo := ledger_repository.New(q)
	royaltyRepo := royalty_repository.New(q)
	assetRepo := asset_repository.New(q)
	eventRepo := event_repository.New(q)
	hcRepo := hc_repo.New(mongoClient)

	// usecases
	ledgerUC := ledger_usecase.New(ledgerRepo)
	royaltyUC := royalty_usecase.New(royaltyRepo)
	assetUC := asset_usecase.New(assetRepo)
	hcUC := hc_usecase.New(hcRepo)
	authUC := auth_usecase.New(viper.GetString("auth.jwtSecret"), ledgerUC)

	platform := mint.PlatformConfig{
		WalletAddress: domain.Address(viper.GetString("platform.walletAddress")),
		FeeRateBps:    viper.GetInt32("platform.feeRateBps"),
		Decimals:      viper.GetInt32("platform.decimals"),
	}
	mintUC := mint_usecase.New(&mint_usecase.MintUseCaseCfg{
		Query:     q,
		Ledger:    ledgerUC,
		Royalty:   royaltyUC,
		AssetRepo: assetRepo,
		EventRepo: eventRepo,
		Platform:  platform,
	})

	authMiddleware := auth_middleware.New(authUC)

	// delivery
	hc_delivery.New(e, hcUC)
	auth_delivery.New(e, authUC)
	ledger_delivery.New(e, ledgerUC, authMiddleware)
	mint_delivery.New(e, mintUC, authMiddleware)
	royalty_delivery.New(e, royaltyUC)
	asset_delivery.New(e, assetUC)
	event_delivery.New(e, eventRepo)

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
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
