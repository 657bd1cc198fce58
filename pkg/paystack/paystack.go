package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ayodelehq/lockmine/pkg/clients"
	"go.uber.org/zap"
)

// SignatureHeader carries the HMAC-SHA512 of the raw webhook body.
const SignatureHeader = "X-Paystack-Signature"

// EventChargeSuccess is the only event type that mutates ledger state.
const EventChargeSuccess = "charge.success"

var ErrInitFailed = errors.New("payment provider rejected transaction initialization")

// Metadata rides along with the hosted payment so the webhook can
// reconstruct the lock terms without a second lookup.
type Metadata struct {
	UserID        int     `json:"userId"`
	LockDays      int     `json:"lockDays"`
	RatePer30Days float64 `json:"ratePer30Days"`
}

type Customer struct {
	Email string `json:"email"`
}

type EventData struct {
	Reference string   `json:"reference"`
	Amount    int64    `json:"amount"`
	Metadata  Metadata `json:"metadata"`
	Customer  Customer `json:"customer"`
}

// Event is an inbound webhook notification.
type Event struct {
	Event string    `json:"event"`
	Data  EventData `json:"data"`
}

type InitRequest struct {
	Email       string   `json:"email"`
	Amount      int64    `json:"amount"`
	Metadata    Metadata `json:"metadata"`
	CallbackURL string   `json:"callback_url"`
}

type InitResult struct {
	AuthorizationURL string
	Reference        string
}

type initResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type Client struct {
	initURL string
	secret  string
	client  clients.HTTPClientI
}

func New(initURL, secret string, client clients.HTTPClientI) *Client {
	return &Client{
		initURL: initURL,
		secret:  secret,
		client:  client,
	}
}

// InitializeTransaction requests a hosted-payment handle. No retries: the
// caller initiates and surfaces failure directly.
func (c *Client) InitializeTransaction(ctx context.Context, req InitRequest) (*InitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("can't marshal initialize request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.secret)
	headers.Set("Content-Type", "application/json")

	statusCode, respBody, err := c.client.Post(c.initURL, headers, body)
	if err != nil {
		return nil, fmt.Errorf("failed to call payment provider: %w", err)
	}

	var resp initResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("can't parse provider response: %w", err)
	}

	if statusCode != http.StatusOK || !resp.Status {
		zap.L().Error("payment provider init error",
			zap.Int("status", statusCode),
			zap.String("message", resp.Message),
		)
		return nil, ErrInitFailed
	}

	return &InitResult{
		AuthorizationURL: resp.Data.AuthorizationURL,
		Reference:        resp.Data.Reference,
	}, nil
}
