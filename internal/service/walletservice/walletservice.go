package walletservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ayodelehq/lockmine/internal/domain"
	"github.com/ayodelehq/lockmine/internal/pg"
	"go.uber.org/zap"
)

type WalletRepo interface {
	GetOrCreate(ctx context.Context, userID int) (*domain.Wallet, error)
	DebitAvailable(ctx context.Context, walletID int, amountKobo int64) (bool, error)
}

type LedgerRepo interface {
	Record(ctx context.Context, entry *domain.LedgerEntry) error
	FindByUserID(ctx context.Context, userID int) ([]domain.LedgerEntry, error)
}

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

type Service struct {
	walletRepo WalletRepo
	ledgerRepo LedgerRepo
	txManager  pg.TXManager
}

func New(walletRepo WalletRepo, ledgerRepo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
	}
}

// Withdraw debits the available balance. The guard lives in the conditional
// UPDATE, not here, so concurrent withdrawals cannot overdraw.
func (s *Service) Withdraw(ctx context.Context, userID int, amountKobo int64) error {
	if amountKobo <= 0 {
		return ErrInvalidAmount
	}

	wallet, err := s.walletRepo.GetOrCreate(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return err
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		debited, err := s.walletRepo.DebitAvailable(ctx, wallet.ID, amountKobo)
		if err != nil {
			zap.L().Error("failed to debit available balance", zap.Error(err))
			return err
		}
		if !debited {
			return ErrInsufficientBalance
		}

		metadata, _ := json.Marshal(map[string]any{"wallet_id": wallet.ID})
		if err := s.ledgerRepo.Record(ctx, &domain.LedgerEntry{
			UserID:     userID,
			Type:       domain.EntryTypeWithdrawal,
			AmountKobo: amountKobo,
			Reference:  fmt.Sprintf("withdrawal:%d:%d", userID, time.Now().UnixNano()),
			Metadata:   metadata,
		}); err != nil {
			zap.L().Error("failed to record withdrawal", zap.Error(err))
			return err
		}
		return nil
	})
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
