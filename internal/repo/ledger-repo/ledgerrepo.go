package ledgerrepo

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

// Record appends an entry to the ledger. Entries are immutable; there is no
// update or delete path.
func (r *Repository) Record(ctx context.Context, entry *domain.LedgerEntry) error {
	query := `
        INSERT INTO ledger_entries (user_id, type, amount_kobo, reference, metadata)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, entry.UserID, entry.Type, entry.AmountKobo, entry.Reference, entry.Metadata)
	if err != nil {
		zap.L().Error("can't record ledger entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, user_id, type, amount_kobo, reference, metadata, created_at
        FROM ledger_entries
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var entry domain.LedgerEntry
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.Type, &entry.AmountKobo, &entry.Reference, &entry.Metadata, &entry.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan ledger entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
