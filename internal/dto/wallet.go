package dto

import "time"

type WalletDTO struct {
	Available float64 `json:"available" example:"1500.5"`
	Locked    float64 `json:"locked" example:"5000"`
}

type DashboardResponseDTO struct {
	Wallet       WalletDTO    `json:"wallet"`
	TotalRewards float64      `json:"totalRewards" example:"4.8"`
	Deposits     []DepositDTO `json:"deposits"`
}

type WithdrawRequestDTO struct {
	UserID int     `json:"userId" example:"42"`
	Amount float64 `json:"amount" example:"500"`
}

type TransactionDTO struct {
	Type      string    `json:"type" example:"deposit"`
	Amount    float64   `json:"amount" example:"5000"`
	Reference string    `json:"reference" example:"REF123"`
	CreatedAt time.Time `json:"created_at" example:"2026-08-29T00:05:00+01:00"`
}
