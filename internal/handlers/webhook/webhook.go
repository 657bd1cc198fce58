package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/ayodelehq/lockmine/pkg/paystack"
	"github.com/ayodelehq/lockmine/pkg/signature"
	"go.uber.org/zap"
)

type Service interface {
	ProcessEvent(ctx context.Context, event paystack.Event) error
}

type WebhookHandler struct {
	paymentService Service
	secret         string
}

func New(paymentService Service, secret string) *WebhookHandler {
	return &WebhookHandler{
		paymentService: paymentService,
		secret:         secret,
	}
}

// HandleWebhook godoc
//
//	@Summary		Payment provider webhook
//	@Description	Verify the HMAC-SHA512 signature over the raw body and apply the notification to the ledger. Responds 200 on accepted or ignored events so the provider stops retrying; non-2xx triggers a retry.
//	@Tags			Webhook
//	@Accept			json
//	@Produce		plain
//	@Param			X-Paystack-Signature	header		string	true	"HMAC-SHA512 of the raw body"
//	@Success		200						{string}	string	"ok"
//	@Failure		401						{string}	string	"Invalid signature"
//	@Failure		500						{string}	string	"error"
//	@Router			/api/paystack/webhook [post]
func (h *WebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	// Verification must run over the exact bytes the provider signed,
	// never a re-serialized form of the parsed JSON.
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "error", http.StatusInternalServerError)
		return
	}

	sig := r.Header.Get(paystack.SignatureHeader)
	if !signature.Verify(h.secret, body, sig) {
		zap.L().Warn("invalid webhook signature")
		http.Error(w, "Invalid signature", http.StatusUnauthorized)
		return
	}

	var event paystack.Event
	if err := json.Unmarshal(body, &event); err != nil {
		zap.L().Warn("can't parse webhook payload", zap.Error(err))
		http.Error(w, "error", http.StatusBadRequest)
		return
	}

	if err := h.paymentService.ProcessEvent(r.Context(), event); err != nil {
		zap.L().Error("webhook processing failed", zap.Error(err))
		http.Error(w, "error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
