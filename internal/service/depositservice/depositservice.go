package depositservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ayodelehq/lockmine/internal/domain"
	"github.com/ayodelehq/lockmine/pkg/paystack"
	"github.com/ayodelehq/lockmine/pkg/utils"
	"go.uber.org/zap"
)

type DepositRepo interface {
	Save(ctx context.Context, deposit *domain.Deposit) error
	FindByUserID(ctx context.Context, userID int) ([]domain.Deposit, error)
}

type UserRepo interface {
	EnsureUser(ctx context.Context, userID int, email string) error
}

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
}

type AccrualRepo interface {
	TotalByUser(ctx context.Context, userID int) (int64, error)
}

type PaymentClient interface {
	InitializeTransaction(ctx context.Context, req paystack.InitRequest) (*paystack.InitResult, error)
}

const (
	DefaultLockDays      = 30
	DefaultRatePer30Days = 0.05
)

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidLockDays = errors.New("unsupported lock duration")
)

// Lock terms offered by the product.
var allowedLockDays = map[int]struct{}{30: {}, 60: {}, 90: {}}

type InitResult struct {
	AuthorizationURL string
	Reference        string
}

type Dashboard struct {
	Wallet       *domain.Wallet
	TotalRewards int64
	Deposits     []domain.Deposit
}

type Service struct {
	depositRepo DepositRepo
	userRepo    UserRepo
	walletRepo  WalletRepo
	accrualRepo AccrualRepo
	payments    PaymentClient
	callbackURL string
}

func New(depositRepo DepositRepo, userRepo UserRepo, walletRepo WalletRepo, accrualRepo AccrualRepo, payments PaymentClient, callbackURL string) *Service {
	return &Service{
		depositRepo: depositRepo,
		userRepo:    userRepo,
		walletRepo:  walletRepo,
		accrualRepo: accrualRepo,
		payments:    payments,
		callbackURL: callbackURL,
	}
}

// InitDeposit registers the intent to lock funds and obtains a hosted
// payment handle. The deposit row is persisted as initialized before the
// handle is returned; if the provider call fails, nothing is written.
func (s *Service) InitDeposit(ctx context.Context, userID int, amountNaira float64, lockDays int, ratePer30Days float64) (*InitResult, error) {
	if amountNaira <= 0 {
		return nil, ErrInvalidAmount
	}
	if lockDays == 0 {
		lockDays = DefaultLockDays
	}
	if _, ok := allowedLockDays[lockDays]; !ok {
		return nil, ErrInvalidLockDays
	}
	if ratePer30Days <= 0 {
		ratePer30Days = DefaultRatePer30Days
	}

	email := fmt.Sprintf("%d@example.com", userID)
	if err := s.userRepo.EnsureUser(ctx, userID, email); err != nil {
		return nil, err
	}

	amountKobo := utils.ToKobo(amountNaira)

	result, err := s.payments.InitializeTransaction(ctx, paystack.InitRequest{
		Email:  email,
		Amount: amountKobo,
		Metadata: paystack.Metadata{
			UserID:        userID,
			LockDays:      lockDays,
			RatePer30Days: ratePer30Days,
		},
		CallbackURL: s.callbackURL + "/api/paystack/callback",
	})
	if err != nil {
		zap.L().Error("payment provider initialization failed", zap.Error(err))
		return nil, err
	}

	deposit := &domain.Deposit{
		UserID:          userID,
		AmountKobo:      amountKobo,
		PaymentProvider: "paystack",
		ProviderRef:     result.Reference,
		Status:          domain.DepositStatusInitialized,
		LockDays:        lockDays,
		LockUntil:       time.Now().AddDate(0, 0, lockDays),
		RatePer30Days:   ratePer30Days,
	}
	if err := s.depositRepo.Save(ctx, deposit); err != nil {
		zap.L().Error("can't save deposit: ", zap.Error(err))
		return nil, err
	}

	return &InitResult{
		AuthorizationURL: result.AuthorizationURL,
		Reference:        result.Reference,
	}, nil
}

// GetDashboard projects the committed wallet state, total accrued rewards
// and the deposit list for one user.
func (s *Service) GetDashboard(ctx context.Context, userID int) (*Dashboard, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet for dashboard", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		wallet = &domain.Wallet{UserID: userID}
	}

	totalRewards, err := s.accrualRepo.TotalByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to sum rewards for dashboard", zap.Error(err))
		return nil, err
	}

	deposits, err := s.depositRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get deposits for dashboard", zap.Error(err))
		return nil, err
	}

	return &Dashboard{
		Wallet:       wallet,
		TotalRewards: totalRewards,
		Deposits:     deposits,
	}, nil
}
