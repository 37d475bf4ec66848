package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/handler"
	"storefront/internal/infra/api"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	repo "storefront/internal/repository"
	"storefront/internal/server"
	"storefront/internal/usecase"
	"storefront/internal/validator"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsDev() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// SLOT_DRIVER ごとの保存先（none は nil = 保存しない）
func openSlots(ctx context.Context, cfg config.Config, logger *zap.Logger) (repo.SlotRepository, func(), error) {
	noop := func() {}

	switch cfg.SlotDriver {
	case "file":
		s, err := infraRepo.NewFileSlotRepository(cfg.SlotDir)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil

	case "redis":
		rdb, err := db.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, noop, err
		}
		return infraRepo.NewRedisSlotRepository(rdb), func() { _ = rdb.Close() }, nil

	case "postgres":
		gormDB, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if err := db.Migrate(gormDB); err != nil {
			return nil, noop, err
		}
		closeDB := func() {
			if sqlDB, err := gormDB.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return infraRepo.NewGormSlotRepository(gormDB), closeDB, nil

	case "memory":
		return infraRepo.NewMemorySlotRepository(), noop, nil

	default:
		logger.Warn("no durable storage, cart and session live in memory only")
		return nil, noop, nil
	}
}

func run() error {
	//.env は任意
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slots, closeSlots, err := openSlots(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open %s slots: %w", cfg.SlotDriver, err)
	}
	defer closeSlots()

	//Repository生成
	cartRepo := infraRepo.NewCartSlotRepository(slots)
	sessionRepo := infraRepo.NewSessionSlotRepository(slots)

	client := api.NewClient(cfg.BackendURL, cfg.APIVersion, cfg.HTTPTimeout, logger)
	productClient := api.NewProductClient(client)
	orderClient := api.NewOrderClient(client)
	userClient := api.NewUserClient(client)

	//Usecase生成
	store := usecase.NewCartStore(ctx, cartRepo, logger)
	checkoutUC := usecase.NewCheckoutUsecase(store, orderClient, sessionRepo, usecase.CheckoutDefaults{
		Contact: cfg.DefaultContact,
		Address: cfg.DefaultAddress,
	}, logger)
	productUC := usecase.NewProductUsecase(productClient, cfg.ProductCacheSize, cfg.ProductCacheTTL, logger)
	authUC := usecase.NewAuthUsecase(userClient, sessionRepo, validator.NewAuthValidator(), logger)
	orderUC := usecase.NewOrderUsecase(orderClient)

	//Handler生成
	e := server.New(logger, server.Handlers{
		Cart:         handler.NewCartHandler(store),
		Checkout:     handler.NewCheckoutHandler(checkoutUC),
		Product:      handler.NewProductHandler(productUC),
		AdminProduct: handler.NewAdminProductHandler(productUC),
		Auth:         handler.NewAuthHandler(authUC),
		Order:        handler.NewOrderHandler(orderUC),
	}, authUC)

	unsubscribe := store.Subscribe(func(s model.CartState) {
		logger.Debug("cart changed", zap.Int("items", len(s.Entries)), zap.Int("count", s.Count()))
	})
	defer unsubscribe()

	//Server起動
	addr := cfg.Port
	if addr != "" && addr[0] != ':' {
		addr = ":" + addr
	}
	return server.Start(ctx, e, addr, logger)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
