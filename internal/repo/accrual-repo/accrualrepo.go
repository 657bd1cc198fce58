package accrualrepo

import (
	"context"

	"github.com/ayodelehq/lockmine/internal/domain"
	"github.com/ayodelehq/lockmine/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Insert records one day's accrued reward. The (deposit_id, day_number)
// uniqueness makes re-inserting the same day a no-op; the return value
// reports whether a row was actually written.
func (r *Repository) Insert(ctx context.Context, accrual *domain.RewardAccrual) (bool, error) {
	query := `
        INSERT INTO reward_accruals (deposit_id, user_id, day_number, amount_kobo)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (deposit_id, day_number) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, accrual.DepositID, accrual.UserID, accrual.DayNumber, accrual.AmountKobo)
	if err != nil {
		zap.L().Error("can't insert reward accrual", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) SumByDeposit(ctx context.Context, depositID int) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount_kobo), 0)
        FROM reward_accruals
        WHERE deposit_id = $1
    `
	var total int64
	if err := r.db.QueryRow(ctx, query, depositID).Scan(&total); err != nil {
		zap.L().Error("can't sum reward accruals for deposit", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) TotalByUser(ctx context.Context, userID int) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount_kobo), 0)
        FROM reward_accruals
        WHERE user_id = $1
    `
	var total int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		zap.L().Error("can't sum reward accruals for user", zap.Error(err))
		return 0, err
	}
	return total, nil
}
