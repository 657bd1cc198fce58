package walletrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/ayodelehq/lockmine/internal/domain"
	"github.com/ayodelehq/lockmine/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, currency, available_balance_kobo, locked_balance_kobo, created_at
        FROM wallets
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Currency, &wallet.AvailableBalance, &wallet.LockedBalance, &wallet.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// GetOrCreate upserts the wallet row in a single statement so concurrent
// first-access calls cannot create duplicates.
func (r *Repository) GetOrCreate(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, currency, available_balance_kobo, locked_balance_kobo)
        VALUES ($1, 'NGN', 0, 0)
        ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING id, user_id, currency, available_balance_kobo, locked_balance_kobo, created_at
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Currency, &wallet.AvailableBalance, &wallet.LockedBalance, &wallet.CreatedAt)
	if err != nil {
		zap.L().Error("failed to get or create wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// AddLocked credits the locked balance in place.
func (r *Repository) AddLocked(ctx context.Context, walletID int, amountKobo int64) error {
	query := `
        UPDATE wallets
        SET locked_balance_kobo = locked_balance_kobo + $1
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, amountKobo, walletID)
		if err != nil {
			zap.L().Error("failed to add locked balance", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// Release moves principal from locked to available and pays out the reward
// on top, guarded so the locked balance cannot go negative. Returns false
// when the guard rejects the update.
func (r *Repository) Release(ctx context.Context, walletID int, principalKobo, rewardKobo int64) (bool, error) {
	query := `
        UPDATE wallets
        SET locked_balance_kobo = locked_balance_kobo - $1,
            available_balance_kobo = available_balance_kobo + $1 + $2
        WHERE id = $3 AND locked_balance_kobo >= $1
    `
	var released bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, principalKobo, rewardKobo, walletID)
		if err != nil {
			zap.L().Error("failed to release locked balance", zap.Error(err))
			return err
		}
		released = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return released, nil
}

// DebitAvailable withdraws from the available balance, guarded against
// overdraft. Returns false when the balance is insufficient.
func (r *Repository) DebitAvailable(ctx context.Context, walletID int, amountKobo int64) (bool, error) {
	query := `
        UPDATE wallets
        SET available_balance_kobo = available_balance_kobo - $1
        WHERE id = $2 AND available_balance_kobo >= $1
    `
	var debited bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, amountKobo, walletID)
		if err != nil {
			zap.L().Error("failed to debit available balance", zap.Error(err))
			return err
		}
		debited = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return debited, nil
}
