package deposits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ayodelehq/lockmine/internal/dto"
	depositservice "github.com/ayodelehq/lockmine/internal/service/depositservice"
	"github.com/ayodelehq/lockmine/pkg/paystack"
	"github.com/ayodelehq/lockmine/pkg/utils"
)

type Service interface {
	InitDeposit(ctx context.Context, userID int, amountNaira float64, lockDays int, ratePer30Days float64) (*depositservice.InitResult, error)
	GetDashboard(ctx context.Context, userID int) (*depositservice.Dashboard, error)
}

type DepositHandler struct {
	depositService Service
}

func New(depositService Service) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
	}
}

// InitDeposit godoc
//
//	@Summary		Initialize a locked deposit
//	@Description	Validate the lock terms, obtain a hosted payment handle from the payment provider and persist the pending deposit.
//	@Tags			Deposits
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositInitRequestDTO	true	"Deposit initialization payload"
//	@Success		200		{object}	dto.DepositInitResponseDTO	"Authorization URL and provider reference"
//	@Failure		400		{object}	utils.Response				"Invalid payload"
//	@Failure		502		{object}	utils.Response				"Payment provider error"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/deposit/init [post]
func (h *DepositHandler) InitDeposit(w http.ResponseWriter, r *http.Request) {
	var req dto.DepositInitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "userId is required")
		return
	}

	result, err := h.depositService.InitDeposit(r.Context(), req.UserID, req.Amount, req.LockDays, req.RatePer30Days)
	if err != nil {
		switch {
		case errors.Is(err, depositservice.ErrInvalidAmount), errors.Is(err, depositservice.ErrInvalidLockDays):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, paystack.ErrInitFailed):
			utils.RespondWithError(w, http.StatusBadGateway, "Payment provider error")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DepositInitResponseDTO{
		AuthorizationURL: result.AuthorizationURL,
		Reference:        result.Reference,
	})
}

// GetDashboard godoc
//
//	@Summary		Get user dashboard
//	@Description	Read-only projection of the wallet balances, total accrued rewards and deposit list.
//	@Tags			Deposits
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	dto.DashboardResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid user id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard/{userID} [get]
func (h *DepositHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	dashboard, err := h.depositService.GetDashboard(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	depositDTOs := make([]dto.DepositDTO, len(dashboard.Deposits))
	for i, d := range dashboard.Deposits {
		depositDTOs[i] = dto.DepositDTO{
			Reference: d.ProviderRef,
			Status:    d.Status,
			Amount:    utils.FromKobo(d.AmountKobo),
			LockDays:  d.LockDays,
			DayCount:  d.DayCount,
			LockUntil: d.LockUntil,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DashboardResponseDTO{
		Wallet: dto.WalletDTO{
			Available: utils.FromKobo(dashboard.Wallet.AvailableBalance),
			Locked:    utils.FromKobo(dashboard.Wallet.LockedBalance),
		},
		TotalRewards: utils.FromKobo(dashboard.TotalRewards),
		Deposits:     depositDTOs,
	})
}
