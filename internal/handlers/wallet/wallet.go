package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ayodelehq/lockmine/internal/domain"
	"github.com/ayodelehq/lockmine/internal/dto"
	walletservice "github.com/ayodelehq/lockmine/internal/service/walletservice"
	"github.com/ayodelehq/lockmine/pkg/utils"
)

type Service interface {
	Withdraw(ctx context.Context, userID int, amountKobo int64) error
	GetTransactions(ctx context.Context, userID int) ([]domain.LedgerEntry, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// Withdraw godoc
//
//	@Summary		Withdraw available funds
//	@Description	Debit the available balance and append a withdrawal ledger entry.
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal payload"
//	@Success		200		{string}	string					"withdrawal successful"
//	@Failure		400		{object}	utils.Response			"Invalid payload"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "userId is required")
		return
	}

	err := h.walletService.Withdraw(r.Context(), req.UserID, utils.ToKobo(req.Amount))
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "withdrawal successful")
}

// GetTransactions godoc
//
//	@Summary		Get ledger history
//	@Description	List the user's balance-affecting events, newest first.
//	@Tags			Wallet
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{array}		dto.TransactionDTO
//	@Success		204		{object}	utils.Response	"No transactions"
//	@Failure		400		{object}	utils.Response	"Invalid user id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/{userID} [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	entries, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionDTO, len(entries))
	for i, entry := range entries {
		response[i] = dto.TransactionDTO{
			Type:      entry.Type,
			Amount:    utils.FromKobo(entry.AmountKobo),
			Reference: entry.Reference,
			CreatedAt: entry.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
