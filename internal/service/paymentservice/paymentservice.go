package paymentservice

import (
	"context"
	"encoding/json"

	"github.com/ayodelehq/lockmine/internal/domain"
	"github.com/ayodelehq/lockmine/internal/pg"
	"github.com/ayodelehq/lockmine/pkg/paystack"
	"go.uber.org/zap"
)

type DepositRepo interface {
	FindByProviderRef(ctx context.Context, providerRef string) (*domain.Deposit, error)
	Confirm(ctx context.Context, providerRef string, amountKobo int64) (bool, error)
}

type WalletRepo interface {
	GetOrCreate(ctx context.Context, userID int) (*domain.Wallet, error)
	AddLocked(ctx context.Context, walletID int, amountKobo int64) error
}

type LedgerRepo interface {
	Record(ctx context.Context, entry *domain.LedgerEntry) error
}

type Service struct {
	depositRepo DepositRepo
	walletRepo  WalletRepo
	ledgerRepo  LedgerRepo
	txManager   pg.TXManager
}

func New(depositRepo DepositRepo, walletRepo WalletRepo, ledgerRepo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		depositRepo: depositRepo,
		walletRepo:  walletRepo,
		ledgerRepo:  ledgerRepo,
		txManager:   txManager,
	}
}

// ProcessEvent applies a verified provider notification to the ledger.
// Everything but a successful charge is acknowledged and ignored. A nil
// return means the provider should receive a 2xx and stop retrying; an
// error means the whole transition rolled back and a retry is safe.
func (s *Service) ProcessEvent(ctx context.Context, event paystack.Event) error {
	if event.Event != paystack.EventChargeSuccess {
		zap.L().Info("ignoring provider event", zap.String("event", event.Event))
		return nil
	}

	providerRef := event.Data.Reference

	deposit, err := s.depositRepo.FindByProviderRef(ctx, providerRef)
	if err != nil {
		return err
	}
	if deposit == nil {
		zap.L().Warn("no deposit found for provider ref", zap.String("providerRef", providerRef))
		return nil
	}

	// Confirm and credit commit together: a crash after the status flip
	// but before the wallet credit would otherwise swallow the retry.
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		confirmed, err := s.depositRepo.Confirm(ctx, providerRef, event.Data.Amount)
		if err != nil {
			return err
		}
		if !confirmed {
			zap.L().Info("deposit already confirmed", zap.String("providerRef", providerRef))
			return nil
		}

		wallet, err := s.walletRepo.GetOrCreate(ctx, deposit.UserID)
		if err != nil {
			return err
		}
		if err := s.walletRepo.AddLocked(ctx, wallet.ID, event.Data.Amount); err != nil {
			return err
		}

		metadata, _ := json.Marshal(map[string]any{"provider": "paystack", "deposit_id": deposit.ID})
		if err := s.ledgerRepo.Record(ctx, &domain.LedgerEntry{
			UserID:     deposit.UserID,
			Type:       domain.EntryTypeDeposit,
			AmountKobo: event.Data.Amount,
			Reference:  providerRef,
			Metadata:   metadata,
		}); err != nil {
			return err
		}

		zap.L().Info("deposit confirmed",
			zap.String("providerRef", providerRef),
			zap.Int("userID", deposit.UserID),
			zap.Int64("amountKobo", event.Data.Amount),
		)
		return nil
	})
}
