package domain

import "time"

// Money amounts are stored in kobo (minor currency unit) as integers.

type User struct {
	ID        int       `db:"id"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

type Wallet struct {
	ID               int       `db:"id"`
	UserID           int       `db:"user_id"`
	Currency         string    `db:"currency"`
	AvailableBalance int64     `db:"available_balance_kobo"`
	LockedBalance    int64     `db:"locked_balance_kobo"`
	CreatedAt        time.Time `db:"created_at"`
}

type Deposit struct {
	ID              int        `db:"id"`
	UserID          int        `db:"user_id"`
	AmountKobo      int64      `db:"amount_kobo"`
	PaymentProvider string     `db:"payment_provider"`
	ProviderRef     string     `db:"provider_ref"`
	Status          string     `db:"status"`
	LockDays        int        `db:"lock_days"`
	LockUntil       time.Time  `db:"lock_until"`
	RatePer30Days   float64    `db:"rate_per_30days"`
	DayCount        int        `db:"day_count"`
	StartedAt       *time.Time `db:"started_at"`
	CreatedAt       time.Time  `db:"created_at"`
}

type LedgerEntry struct {
	ID         int64     `db:"id"`
	UserID     int       `db:"user_id"`
	Type       string    `db:"type"`
	AmountKobo int64     `db:"amount_kobo"`
	Reference  string    `db:"reference"`
	Metadata   []byte    `db:"metadata"`
	CreatedAt  time.Time `db:"created_at"`
}

type RewardAccrual struct {
	ID         int64     `db:"id"`
	DepositID  int       `db:"deposit_id"`
	UserID     int       `db:"user_id"`
	DayNumber  int       `db:"day_number"`
	AmountKobo int64     `db:"amount_kobo"`
	CreatedAt  time.Time `db:"created_at"`
}
