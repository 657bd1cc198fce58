package handlers

import (
	"net/http"

	_ "github.com/ayodelehq/lockmine/docs"
	"github.com/ayodelehq/lockmine/internal/config"
	depositshandlers "github.com/ayodelehq/lockmine/internal/handlers/deposits"
	wallethandlers "github.com/ayodelehq/lockmine/internal/handlers/wallet"
	webhookhandlers "github.com/ayodelehq/lockmine/internal/handlers/webhook"
	"github.com/ayodelehq/lockmine/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DepositHandler interface {
	InitDeposit(w http.ResponseWriter, r *http.Request)
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	HandleWebhook(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	DepositHandler DepositHandler
	WalletHandler  WalletHandler
	WebhookHandler WebhookHandler
}

func New(cfg *config.Config, s *service.Services) *Handlers {
	return &Handlers{
		DepositHandler: depositshandlers.New(s.DepositService),
		WalletHandler:  wallethandlers.New(s.WalletService),
		WebhookHandler: webhookhandlers.New(s.PaymentService, cfg.PaystackSecret),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/deposit/init", h.DepositHandler.InitDeposit)
		r.Post("/paystack/webhook", h.WebhookHandler.HandleWebhook)
		r.Get("/dashboard/{userID}", h.DepositHandler.GetDashboard)
		r.Get("/transactions/{userID}", h.WalletHandler.GetTransactions)
		r.Post("/wallet/withdraw", h.WalletHandler.Withdraw)
	})

	return r
}
