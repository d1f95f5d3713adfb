package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/Elly-L/main-shilingi-x-sub001/docs"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/app"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/backing"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/config"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/handler"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/idempotency"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/ledger"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/middleware"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/mpesa"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/postgres"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/repo"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/service"
	"github.com/Elly-L/main-shilingi-x-sub001/pkg/cache"
	"github.com/Elly-L/main-shilingi-x-sub001/pkg/trm"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/joho/godotenv"
)

// @title           Shilingi X API
// @version         1.0
// @description     Wallet deposits over M-Pesa, investment products and ledger tools
// @BasePath        /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	redisClient, err := idempotency.Connect(ctx, conf.Redis)
	panicIfErr("failed to connect to redis", err)
	defer redisClient.Close()
	logger.Info("redis connected")

	contractABI, err := ledger.ParseABI(conf.Ledger.ContractABI)
	panicIfErr("invalid contract abi", err)
	rpc, err := ethclient.DialContext(ctx, conf.Ledger.RPCURL)
	panicIfErr("failed to dial ledger rpc", err)
	defer rpc.Close()

	store := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	productCache := cache.NewLRU[entities.Product](conf.Cache.Capacity, conf.Cache.TTL)

	publisher := handler.NewResultPublisher(conf.Kafka)
	defer publisher.Close()

	paymentService := service.NewPaymentService(
		logger,
		txManager,
		mpesa.NewClient(logger, conf.Mpesa),
		store,
		idempotency.NewStore(redisClient, conf.Redis.IdempotencyTTL),
		publisher,
	)
	walletService := service.NewWalletService(logger, txManager, store)
	productService := service.NewProductService(logger, store, productCache)
	profileService := service.NewProfileService(logger, store, backing.NewStorage(conf.Supabase), conf.Supabase.AvatarsBucket)
	settingsService := service.NewSettingsService(logger, store, contractOpener{contracts: ledger.NewContracts(rpc, contractABI)})

	handler.RegisterMetrics()
	service.RegisterMetrics()

	auth := middleware.NewAuthenticator(logger, conf.Supabase.JWTSecret)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(
		handler.NewPaymentHandler(logger, auth, paymentService, conf.Mpesa.CallbackToken),
		handler.NewWalletHandler(logger, auth, walletService),
		handler.NewProductHandler(logger, productService),
		handler.NewProfileHandler(logger, auth, profileService),
		handler.NewLedgerHandler(logger, auth, settingsService),
	)
	app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, walletService))
	app.SetStarters(
		productCache,
		cacheWarmUpAdapter{svc: productService},
		service.NewPaymentRelay(logger, store, publisher, conf.Kafka.RelayInterval),
	)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context) error
}

type cacheWarmUpAdapter struct {
	svc warmUpper
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx)
}

// contractOpener adapts ledger.Contracts to the handle type the settings service expects.
type contractOpener struct {
	contracts *ledger.Contracts
}

func (o contractOpener) Open(contractID string) (service.ContractHandle, error) {
	c, err := o.contracts.At(contractID)
	if err != nil {
		return nil, err
	}
	return c, nil
}
