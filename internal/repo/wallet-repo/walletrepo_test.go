package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ayodelehq/lockmine/internal/domain"
	"github.com/ayodelehq/lockmine/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name:   "Valid userID returns wallet",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "currency", "available_balance_kobo", "locked_balance_kobo", "created_at"}).
					AddRow(1, 1, "NGN", int64(1500), int64(10000), now)
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, user_id, currency, available_balance_kobo, locked_balance_kobo, created_at
					FROM wallets
					WHERE user_id = $1`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Wallet{
				ID:               1,
				UserID:           1,
				Currency:         "NGN",
				AvailableBalance: 1500,
				LockedBalance:    10000,
				CreatedAt:        now,
			},
		},
		{
			name:   "Non-existing userID returns nil",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, user_id, currency, available_balance_kobo, locked_balance_kobo, created_at
					FROM wallets
					WHERE user_id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, user_id, currency, available_balance_kobo, locked_balance_kobo, created_at
					FROM wallets
					WHERE user_id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByUserID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_GetOrCreate(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name:   "Successfully upserts wallet",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO wallets (user_id, currency, available_balance_kobo, locked_balance_kobo)
					VALUES ($1, 'NGN', 0, 0)
					ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
					RETURNING id, user_id, currency, available_balance_kobo, locked_balance_kobo, created_at`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "currency", "available_balance_kobo", "locked_balance_kobo", "created_at"}).
						AddRow(1, 1, "NGN", int64(0), int64(0), now),
					)
			},
			expectErr: false,
			result: &domain.Wallet{
				ID:        1,
				UserID:    1,
				Currency:  "NGN",
				CreatedAt: now,
			},
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO wallets (user_id, currency, available_balance_kobo, locked_balance_kobo)
					VALUES ($1, 'NGN', 0, 0)
					ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
					RETURNING id, user_id, currency, available_balance_kobo, locked_balance_kobo, created_at`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.GetOrCreate(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_AddLocked(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name       string
		walletID   int
		amountKobo int64
		mockSetup  func()
		expectErr  bool
	}{
		{
			name:       "Successfully credits locked balance",
			walletID:   1,
			amountKobo: 10000,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`
						UPDATE wallets
						SET locked_balance_kobo = locked_balance_kobo + $1
						WHERE id = $2`)).
						WithArgs(int64(10000), 1).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name:       "Missing wallet returns error",
			walletID:   99,
			amountKobo: 10000,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`
						UPDATE wallets
						SET locked_balance_kobo = locked_balance_kobo + $1
						WHERE id = $2`)).
						WithArgs(int64(10000), 99).
						WillReturnResult(pgxmock.NewResult("UPDATE", 0))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
		{
			name:       "Database error",
			walletID:   1,
			amountKobo: 10000,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`
						UPDATE wallets
						SET locked_balance_kobo = locked_balance_kobo + $1
						WHERE id = $2`)).
						WithArgs(int64(10000), 1).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.AddLocked(context.Background(), tt.walletID, tt.amountKobo)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_Release(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name          string
		walletID      int
		principalKobo int64
		rewardKobo    int64
		mockSetup     func()
		expectErr     bool
		released      bool
	}{
		{
			name:          "Releases principal and reward",
			walletID:      1,
			principalKobo: 10000,
			rewardKobo:    480,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`
						UPDATE wallets
						SET locked_balance_kobo = locked_balance_kobo - $1,
							available_balance_kobo = available_balance_kobo + $1 + $2
						WHERE id = $3 AND locked_balance_kobo >= $1`)).
						WithArgs(int64(10000), int64(480), 1).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
			expectErr: false,
			released:  true,
		},
		{
			name:          "Insufficient locked balance rejects release",
			walletID:      1,
			principalKobo: 10000,
			rewardKobo:    480,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`
						UPDATE wallets
						SET locked_balance_kobo = locked_balance_kobo - $1,
							available_balance_kobo = available_balance_kobo + $1 + $2
						WHERE id = $3 AND locked_balance_kobo >= $1`)).
						WithArgs(int64(10000), int64(480), 1).
						WillReturnResult(pgxmock.NewResult("UPDATE", 0))
					return fn(ctx)
				})
			},
			expectErr: false,
			released:  false,
		},
		{
			name:          "Database error",
			walletID:      1,
			principalKobo: 10000,
			rewardKobo:    480,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`
						UPDATE wallets
						SET locked_balance_kobo = locked_balance_kobo - $1,
							available_balance_kobo = available_balance_kobo + $1 + $2
						WHERE id = $3 AND locked_balance_kobo >= $1`)).
						WithArgs(int64(10000), int64(480), 1).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
			released:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			released, err := repo.Release(context.Background(), tt.walletID, tt.principalKobo, tt.rewardKobo)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.released, released)
		})
	}
}

func TestRepository_DebitAvailable(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name       string
		walletID   int
		amountKobo int64
		mockSetup  func()
		expectErr  bool
		debited    bool
	}{
		{
			name:       "Successfully debits available balance",
			walletID:   1,
			amountKobo: 500,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`
						UPDATE wallets
						SET available_balance_kobo = available_balance_kobo - $1
						WHERE id = $2 AND available_balance_kobo >= $1`)).
						WithArgs(int64(500), 1).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
			expectErr: false,
			debited:   true,
		},
		{
			name:       "Insufficient balance rejects debit",
			walletID:   1,
			amountKobo: 500,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`
						UPDATE wallets
						SET available_balance_kobo = available_balance_kobo - $1
						WHERE id = $2 AND available_balance_kobo >= $1`)).
						WithArgs(int64(500), 1).
						WillReturnResult(pgxmock.NewResult("UPDATE", 0))
					return fn(ctx)
				})
			},
			expectErr: false,
			debited:   false,
		},
		{
			name:       "Database error",
			walletID:   1,
			amountKobo: 500,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`
						UPDATE wallets
						SET available_balance_kobo = available_balance_kobo - $1
						WHERE id = $2 AND available_balance_kobo >= $1`)).
						WithArgs(int64(500), 1).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
			debited:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			debited, err := repo.DebitAvailable(context.Background(), tt.walletID, tt.amountKobo)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.debited, debited)
		})
	}
}
