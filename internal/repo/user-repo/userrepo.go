package userrepo

import (
	"context"

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

// EnsureUser upserts the user row referenced by a deposit so the foreign
// keys hold even when the caller registered out of band.
func (r *Repository) EnsureUser(ctx context.Context, userID int, email string) error {
	query := `
        INSERT INTO users (id, email)
        VALUES ($1, $2)
        ON CONFLICT (id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, userID, email)
	if err != nil {
		zap.L().Error("can't ensure user", zap.Error(err))
		return err
	}
	return nil
}
