package service

import (
	"github.com/ayodelehq/lockmine/internal/handlers/deposits"
	"github.com/ayodelehq/lockmine/internal/handlers/wallet"
	"github.com/ayodelehq/lockmine/internal/handlers/webhook"

	"github.com/ayodelehq/lockmine/internal/config"
	"github.com/ayodelehq/lockmine/internal/pg"
	"github.com/ayodelehq/lockmine/internal/repo"
	depositservice "github.com/ayodelehq/lockmine/internal/service/depositservice"
	paymentservice "github.com/ayodelehq/lockmine/internal/service/paymentservice"
	walletservice "github.com/ayodelehq/lockmine/internal/service/walletservice"
)

type Services struct {
	DepositService deposits.Service
	PaymentService webhook.Service
	WalletService  wallet.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, payments depositservice.PaymentClient) *Services {
	depositService := depositservice.New(repo.DepositRepo, repo.UserRepo, repo.WalletRepo, repo.AccrualRepo, payments, cfg.CallbackURL)
	paymentService := paymentservice.New(repo.DepositRepo, repo.WalletRepo, repo.LedgerRepo, txManager)
	walletService := walletservice.New(repo.WalletRepo, repo.LedgerRepo, txManager)

	return &Services{
		DepositService: depositService,
		PaymentService: paymentService,
		WalletService:  walletService,
	}
}
