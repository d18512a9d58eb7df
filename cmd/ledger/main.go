package main

import (
	"fmt"

	"github.com/denmor86/tg-ledger/internal/app"
	"github.com/denmor86/tg-ledger/internal/config"
	"github.com/denmor86/tg-ledger/internal/logger"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// запуск сервиса
	if err := app.Run(config); err != nil {
		logger.Error("service stopped with error:", err)
	}
}
