package depositservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ayodelehq/lockmine/internal/domain"
	"github.com/ayodelehq/lockmine/pkg/paystack"
)

func NewMock(t *testing.T) (*Service, *MockDepositRepo, *MockUserRepo, *MockWalletRepo, *MockAccrualRepo, *MockPaymentClient) {
	ctrl := gomock.NewController(t)
	depositRepo := NewMockDepositRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	walletRepo := NewMockWalletRepo(ctrl)
	accrualRepo := NewMockAccrualRepo(ctrl)
	payments := NewMockPaymentClient(ctrl)
	service := New(depositRepo, userRepo, walletRepo, accrualRepo, payments, "http://localhost:8080")
	defer ctrl.Finish()
	return service, depositRepo, userRepo, walletRepo, accrualRepo, payments
}

func TestInitDeposit(t *testing.T) {
	service, depositRepo, userRepo, _, _, payments := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		amountNaira   float64
		lockDays      int
		ratePer30Days float64
		prepareMock   func()
		expectedError error
		expected      *InitResult
	}{
		{
			name:          "Successful initialization",
			userID:        1,
			amountNaira:   100.0,
			lockDays:      30,
			ratePer30Days: 0.05,
			prepareMock: func() {
				userRepo.EXPECT().EnsureUser(gomock.Any(), 1, "1@example.com").Return(nil)
				payments.EXPECT().InitializeTransaction(gomock.Any(), paystack.InitRequest{
					Email:  "1@example.com",
					Amount: 10000,
					Metadata: paystack.Metadata{
						UserID:        1,
						LockDays:      30,
						RatePer30Days: 0.05,
					},
					CallbackURL: "http://localhost:8080/api/paystack/callback",
				}).Return(&paystack.InitResult{
					AuthorizationURL: "https://checkout.paystack.com/abc",
					Reference:        "ref-123",
				}, nil)
				depositRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d *domain.Deposit) error {
					assert.Equal(t, 1, d.UserID)
					assert.Equal(t, int64(10000), d.AmountKobo)
					assert.Equal(t, "paystack", d.PaymentProvider)
					assert.Equal(t, "ref-123", d.ProviderRef)
					assert.Equal(t, domain.DepositStatusInitialized, d.Status)
					assert.Equal(t, 30, d.LockDays)
					assert.Equal(t, 0.05, d.RatePer30Days)
					assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), d.LockUntil, time.Minute)
					return nil
				})
			},
			expectedError: nil,
			expected: &InitResult{
				AuthorizationURL: "https://checkout.paystack.com/abc",
				Reference:        "ref-123",
			},
		},
		{
			name:          "Zero lock days and rate fall back to defaults",
			userID:        2,
			amountNaira:   50.0,
			lockDays:      0,
			ratePer30Days: 0,
			prepareMock: func() {
				userRepo.EXPECT().EnsureUser(gomock.Any(), 2, "2@example.com").Return(nil)
				payments.EXPECT().InitializeTransaction(gomock.Any(), paystack.InitRequest{
					Email:  "2@example.com",
					Amount: 5000,
					Metadata: paystack.Metadata{
						UserID:        2,
						LockDays:      DefaultLockDays,
						RatePer30Days: DefaultRatePer30Days,
					},
					CallbackURL: "http://localhost:8080/api/paystack/callback",
				}).Return(&paystack.InitResult{
					AuthorizationURL: "https://checkout.paystack.com/def",
					Reference:        "ref-456",
				}, nil)
				depositRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: nil,
			expected: &InitResult{
				AuthorizationURL: "https://checkout.paystack.com/def",
				Reference:        "ref-456",
			},
		},
		{
			name:          "Non-positive amount is rejected",
			userID:        1,
			amountNaira:   0,
			lockDays:      30,
			ratePer30Days: 0.05,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
			expected:      nil,
		},
		{
			name:          "Unsupported lock duration is rejected",
			userID:        1,
			amountNaira:   100.0,
			lockDays:      45,
			ratePer30Days: 0.05,
			prepareMock:   func() {},
			expectedError: ErrInvalidLockDays,
			expected:      nil,
		},
		{
			name:          "Provider failure writes nothing",
			userID:        1,
			amountNaira:   100.0,
			lockDays:      30,
			ratePer30Days: 0.05,
			prepareMock: func() {
				userRepo.EXPECT().EnsureUser(gomock.Any(), 1, "1@example.com").Return(nil)
				payments.EXPECT().InitializeTransaction(gomock.Any(), gomock.Any()).Return(nil, paystack.ErrInitFailed)
			},
			expectedError: paystack.ErrInitFailed,
			expected:      nil,
		},
		{
			name:          "Save failure",
			userID:        1,
			amountNaira:   100.0,
			lockDays:      30,
			ratePer30Days: 0.05,
			prepareMock: func() {
				userRepo.EXPECT().EnsureUser(gomock.Any(), 1, "1@example.com").Return(nil)
				payments.EXPECT().InitializeTransaction(gomock.Any(), gomock.Any()).Return(&paystack.InitResult{
					AuthorizationURL: "https://checkout.paystack.com/abc",
					Reference:        "ref-123",
				}, nil)
				depositRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
			expected:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.InitDeposit(context.Background(), tt.userID, tt.amountNaira, tt.lockDays, tt.ratePer30Days)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestGetDashboard(t *testing.T) {
	service, depositRepo, _, walletRepo, accrualRepo, _ := NewMock(t)

	wallet := &domain.Wallet{ID: 1, UserID: 1, Currency: "NGN", AvailableBalance: 480, LockedBalance: 10000}
	deposits := []domain.Deposit{{ID: 1, UserID: 1, AmountKobo: 10000, Status: domain.DepositStatusConfirmed}}

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedError error
		expected      *Dashboard
	}{
		{
			name:   "Returns wallet, rewards and deposits",
			userID: 1,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(wallet, nil)
				accrualRepo.EXPECT().TotalByUser(gomock.Any(), 1).Return(int64(480), nil)
				depositRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(deposits, nil)
			},
			expectedError: nil,
			expected: &Dashboard{
				Wallet:       wallet,
				TotalRewards: 480,
				Deposits:     deposits,
			},
		},
		{
			name:   "Missing wallet projects zero balances",
			userID: 2,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 2).Return(nil, nil)
				accrualRepo.EXPECT().TotalByUser(gomock.Any(), 2).Return(int64(0), nil)
				depositRepo.EXPECT().FindByUserID(gomock.Any(), 2).Return(nil, nil)
			},
			expectedError: nil,
			expected: &Dashboard{
				Wallet:       &domain.Wallet{UserID: 2},
				TotalRewards: 0,
				Deposits:     nil,
			},
		},
		{
			name:   "Wallet lookup error",
			userID: 1,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
			expected:      nil,
		},
		{
			name:   "Reward sum error",
			userID: 1,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(wallet, nil)
				accrualRepo.EXPECT().TotalByUser(gomock.Any(), 1).Return(int64(0), errors.New("db error"))
			},
			expectedError: errors.New("db error"),
			expected:      nil,
		},
		{
			name:   "Deposit list error",
			userID: 1,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(wallet, nil)
				accrualRepo.EXPECT().TotalByUser(gomock.Any(), 1).Return(int64(480), nil)
				depositRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
			expected:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.GetDashboard(context.Background(), tt.userID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
