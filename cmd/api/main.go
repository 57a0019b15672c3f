package main

import (
	"os"

	"vendora/internal/config"
	"vendora/internal/domain/model"
	"vendora/internal/handler"
	"vendora/internal/infra/db"
	"vendora/internal/infra/distance"
	infraRepo "vendora/internal/infra/repository"
	"vendora/internal/quote"
	repo "vendora/internal/repository"
	"vendora/internal/server"
	"vendora/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無くてもよい（prodは環境変数直）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//ストア：DB設定が無ければインメモリで起動
	var store repo.CartStore
	if cfg.DatabaseURL != "" || os.Getenv("POSTGRES_HOST") != "" {
		gormDB, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			panic(err)
		}
		if err := gormDB.AutoMigrate(&model.CartRecord{}); err != nil {
			panic(err)
		}
		store = infraRepo.NewCartStoreGorm(gormDB)
	} else {
		store = infraRepo.NewCartStoreMemory()
	}

	//距離サービス：URL未設定なら常にフォールバック
	var svc quote.DistanceService
	if cfg.DistanceAPIURL != "" {
		svc = distance.NewClient(cfg.DistanceAPIURL, cfg.DistanceAPIKey, nil)
	}
	calc := quote.NewCalculator(svc, cfg.DistanceTimeout)

	//Usecase生成
	cartUC := usecase.NewCartUsecase(store)
	quoteUC := usecase.NewQuoteUsecase(calc)
	checkoutUC := usecase.NewCheckoutUsecase(cartUC, calc, cfg.DefaultVendorPhone)
	sessionUC := usecase.NewSessionUsecase(cfg.JWTSecret, cfg.SessionTTL)

	//Handler生成
	sessionH := handler.NewSessionHandler(sessionUC)
	localeH := handler.NewLocaleHandler()
	cartH := handler.NewCartHandler(cartUC)
	quoteH := handler.NewQuoteHandler(quoteUC)
	checkoutH := handler.NewCheckoutHandler(checkoutUC)

	//Server起動
	e := server.New()
	server.RegisterRoutes(e, cfg, sessionH, localeH, cartH, quoteH, checkoutH)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(e, addr); err != nil {
		panic(err)
	}
}
