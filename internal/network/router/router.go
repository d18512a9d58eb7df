package router

import (
	"net/http"

	"github.com/denmor86/tg-ledger/internal/config"
	"github.com/denmor86/tg-ledger/internal/models"
	"github.com/denmor86/tg-ledger/internal/network/handlers"
	"github.com/denmor86/tg-ledger/internal/network/middleware"
	"github.com/denmor86/tg-ledger/internal/services"
	"github.com/denmor86/tg-ledger/internal/storage"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Router struct {
	Config   config.Config
	Health   handlers.Pinger
	Ledger   services.LedgerService
	Requests services.RequestsService
	History  services.HistoryService
	Admin    services.AdminService
}

func NewRouter(config config.Config, storage storage.IStorage) *Router {
	ledger := services.NewLedger(storage)
	requests := services.NewRequests(storage, storage)
	history := services.NewHistory(storage)
	return &Router{
		Config:   config,
		Health:   storage,
		Ledger:   ledger,
		Requests: requests,
		History:  history,
		Admin:    services.NewAdmin(services.NewAdminGate(config.Admin.AdminID), ledger, requests, history),
	}
}

func (router *Router) HandleRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	// веб-интерфейс Mini App обслуживается с другого источника
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: router.Config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Get("/health", handlers.HealthHandler(router.Health))
		r.Post("/user/upsert", handlers.UpsertUserHandler(router.Ledger))
		r.Get("/balance/{userId}", handlers.GetBalanceHandler(router.Ledger))
		r.Get("/history/{userId}", handlers.GetHistoryHandler(router.History))
		r.Post("/deposit/request", handlers.CreateRequestHandler(router.Requests, models.KindDeposit))
		r.Post("/withdraw/request", handlers.CreateRequestHandler(router.Requests, models.KindWithdraw))
		r.Route("/admin", func(r chi.Router) {
			// при заданном токене бота администратор подтверждается подписью Telegram
			if router.Config.Admin.BotToken != "" {
				r.Use(middleware.InitData(router.Config.Admin.BotToken, router.Config.Admin.InitDataTTL))
			}
			r.Post("/add_balance", handlers.AddBalanceHandler(router.Admin))
			r.Get("/pending", handlers.GetPendingHandler(router.Admin))
			r.Post("/decision", handlers.DecisionHandler(router.Admin))
		})
	})
	return r
}
