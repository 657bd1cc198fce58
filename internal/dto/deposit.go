package dto

import "time"

type DepositInitRequestDTO struct {
	UserID        int     `json:"userId" example:"42"`
	Amount        float64 `json:"amount" example:"5000"`
	LockDays      int     `json:"lockDays" example:"30"`
	RatePer30Days float64 `json:"ratePer30Days" example:"0.05"`
}

type DepositInitResponseDTO struct {
	AuthorizationURL string `json:"authorization_url" example:"https://checkout.paystack.com/abc123"`
	Reference        string `json:"reference" example:"REF123"`
}

type DepositDTO struct {
	Reference string    `json:"reference" example:"REF123"`
	Status    string    `json:"status" example:"confirmed"`
	Amount    float64   `json:"amount" example:"5000"`
	LockDays  int       `json:"lockDays" example:"30"`
	DayCount  int       `json:"dayCount" example:"12"`
	LockUntil time.Time `json:"lockUntil" example:"2026-09-28T00:05:00+01:00"`
}
