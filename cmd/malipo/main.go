package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "malipo/internal"
)

func main() {
	//decimals at json as string
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()

	repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	gateway := NewPesapalClient(cfg.APIURL, cfg.ConsumerKey, cfg.ConsumerSecret, sugaredLogger)
	service := NewService(repository, gateway, cfg.BaseURL, sugaredLogger)
	handlers := NewHandlers(service, sugaredLogger)

	app := NewRouter(handlers)

	go func() {
		if err := app.Listen(cfg.RunAddress); err != nil {
			sugaredLogger.Fatalf("listen error: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")

	if err := app.Shutdown(); err != nil {
		sugaredLogger.Errorf("shutdown error: %s", err)
	}
	if err := repository.Close(); err != nil {
		sugaredLogger.Errorf("closing storage error: %s", err)
	}
}
