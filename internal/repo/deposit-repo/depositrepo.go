package depositrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/ayodelehq/lockmine/internal/domain"
	"github.com/ayodelehq/lockmine/internal/pg"
	"go.uber.org/zap"
)

const depositColumns = `id, user_id, amount_kobo, payment_provider, provider_ref, status,
        lock_days, lock_until, rate_per_30days, day_count, started_at, created_at`

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

func scanDeposit(row pgx.Row) (*domain.Deposit, error) {
	var d domain.Deposit
	err := row.Scan(&d.ID, &d.UserID, &d.AmountKobo, &d.PaymentProvider, &d.ProviderRef, &d.Status,
		&d.LockDays, &d.LockUntil, &d.RatePer30Days, &d.DayCount, &d.StartedAt, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Save(ctx context.Context, deposit *domain.Deposit) error {
	query := `
        INSERT INTO deposits (user_id, amount_kobo, payment_provider, provider_ref, status, lock_days, lock_until, rate_per_30days)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			deposit.UserID, deposit.AmountKobo, deposit.PaymentProvider, deposit.ProviderRef,
			deposit.Status, deposit.LockDays, deposit.LockUntil, deposit.RatePer30Days)
		if err != nil {
			zap.L().Error("can't save deposit", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByProviderRef(ctx context.Context, providerRef string) (*domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE provider_ref = $1
    `
	deposit, err := scanDeposit(r.db.QueryRow(ctx, query, providerRef))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find deposit by provider ref", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		deposit, err := scanDeposit(rows)
		if err != nil {
			zap.L().Error("can't scan deposit row", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, *deposit)
	}
	return deposits, nil
}

// Confirm transitions a deposit from initialized to confirmed in one
// conditional statement. The status predicate makes webhook retries
// idempotent: only the first delivery reports true. The processor-reported
// amount is authoritative and overwrites the intake amount.
func (r *Repository) Confirm(ctx context.Context, providerRef string, amountKobo int64) (bool, error) {
	query := `
        UPDATE deposits
        SET status = 'confirmed', started_at = now(), amount_kobo = $2
        WHERE provider_ref = $1 AND status = 'initialized'
    `
	tag, err := r.db.Exec(ctx, query, providerRef, amountKobo)
	if err != nil {
		zap.L().Error("failed to confirm deposit", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// FindAccruable returns confirmed deposits that have not yet accrued a full
// term of daily rewards.
func (r *Repository) FindAccruable(ctx context.Context) ([]domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE status = 'confirmed' AND day_count < lock_days
        ORDER BY id ASC
    `
	return r.findBatch(ctx, query)
}

// FindMatured returns confirmed deposits whose lock term has fully elapsed.
func (r *Repository) FindMatured(ctx context.Context) ([]domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE status = 'confirmed' AND day_count >= lock_days AND lock_until <= now()
        ORDER BY id ASC
    `
	return r.findBatch(ctx, query)
}

func (r *Repository) findBatch(ctx context.Context, query string) ([]domain.Deposit, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get deposits for processing", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		deposit, err := scanDeposit(rows)
		if err != nil {
			zap.L().Error("can't scan deposit row for processing", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, *deposit)
	}
	return deposits, nil
}

// IncrementDayCount advances the elapsed-day counter by exactly one, as a
// compare-and-swap on the expected current value. Returns false when another
// run already advanced it.
func (r *Repository) IncrementDayCount(ctx context.Context, depositID, fromDay int) (bool, error) {
	query := `
        UPDATE deposits
        SET day_count = day_count + 1
        WHERE id = $1 AND day_count = $2 AND day_count < lock_days
    `
	tag, err := r.db.Exec(ctx, query, depositID, fromDay)
	if err != nil {
		zap.L().Error("failed to increment day count", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Complete finalizes a released deposit, confirmed -> completed only.
func (r *Repository) Complete(ctx context.Context, depositID int) (bool, error) {
	query := `
        UPDATE deposits
        SET status = 'completed'
        WHERE id = $1 AND status = 'confirmed'
    `
	tag, err := r.db.Exec(ctx, query, depositID)
	if err != nil {
		zap.L().Error("failed to complete deposit", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
