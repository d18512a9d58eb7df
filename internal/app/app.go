package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/denmor86/tg-ledger/internal/config"
	"github.com/denmor86/tg-ledger/internal/logger"
	"github.com/denmor86/tg-ledger/internal/network/router"
	"github.com/denmor86/tg-ledger/internal/storage"
)

func Run(config config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Initialize(ctx); err != nil {
		return err
	}

	if config.Admin.AdminID == 0 {
		logger.Warn("Administrator id is not configured, admin operations are disabled")
	}

	router := router.NewRouter(config, storage.NewStorage(db))

	server := &http.Server{
		Addr:         config.Server.ListenAddr,
		Handler:      router.HandleRouter(),
		ReadTimeout:  config.Server.ReadTimeout,
		WriteTimeout: config.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server on", config.Server.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error listen server", err.Error())
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
		return err
	}
	logger.Info("Server stopped")
	return nil
}
