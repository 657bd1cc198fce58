package paymentservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ayodelehq/lockmine/internal/domain"
	"github.com/ayodelehq/lockmine/internal/pg"
	"github.com/ayodelehq/lockmine/pkg/paystack"
)

func NewMock(t *testing.T) (*Service, *MockDepositRepo, *MockWalletRepo, *MockLedgerRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	depositRepo := NewMockDepositRepo(ctrl)
	walletRepo := NewMockWalletRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(depositRepo, walletRepo, ledgerRepo, txManager)
	defer ctrl.Finish()
	return service, depositRepo, walletRepo, ledgerRepo, txManager
}

func chargeSuccess(reference string, amountKobo int64) paystack.Event {
	return paystack.Event{
		Event: paystack.EventChargeSuccess,
		Data: paystack.EventData{
			Reference: reference,
			Amount:    amountKobo,
		},
	}
}

func TestProcessEvent(t *testing.T) {
	service, depositRepo, walletRepo, ledgerRepo, txManager := NewMock(t)

	deposit := &domain.Deposit{
		ID:          1,
		UserID:      1,
		AmountKobo:  5000,
		ProviderRef: "ref-123",
		Status:      domain.DepositStatusInitialized,
	}
	wallet := &domain.Wallet{ID: 10, UserID: 1, Currency: "NGN"}

	passthrough := func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}

	tests := []struct {
		name          string
		event         paystack.Event
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Successful charge confirms and credits once",
			event: chargeSuccess("ref-123", 5000),
			prepareMock: func() {
				depositRepo.EXPECT().FindByProviderRef(gomock.Any(), "ref-123").Return(deposit, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passthrough)
				depositRepo.EXPECT().Confirm(gomock.Any(), "ref-123", int64(5000)).Return(true, nil)
				walletRepo.EXPECT().GetOrCreate(gomock.Any(), 1).Return(wallet, nil)
				walletRepo.EXPECT().AddLocked(gomock.Any(), 10, int64(5000)).Return(nil)
				ledgerRepo.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entry *domain.LedgerEntry) error {
					assert.Equal(t, 1, entry.UserID)
					assert.Equal(t, domain.EntryTypeDeposit, entry.Type)
					assert.Equal(t, int64(5000), entry.AmountKobo)
					assert.Equal(t, "ref-123", entry.Reference)
					return nil
				})
			},
			expectedError: nil,
		},
		{
			name:  "Duplicate delivery acknowledges without crediting",
			event: chargeSuccess("ref-123", 5000),
			prepareMock: func() {
				depositRepo.EXPECT().FindByProviderRef(gomock.Any(), "ref-123").Return(deposit, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passthrough)
				depositRepo.EXPECT().Confirm(gomock.Any(), "ref-123", int64(5000)).Return(false, nil)
			},
			expectedError: nil,
		},
		{
			name: "Non-success event is ignored",
			event: paystack.Event{
				Event: "charge.failed",
				Data:  paystack.EventData{Reference: "ref-123", Amount: 5000},
			},
			prepareMock:   func() {},
			expectedError: nil,
		},
		{
			name:  "Unknown reference acknowledges without mutation",
			event: chargeSuccess("ref-404", 5000),
			prepareMock: func() {
				depositRepo.EXPECT().FindByProviderRef(gomock.Any(), "ref-404").Return(nil, nil)
			},
			expectedError: nil,
		},
		{
			name:  "Lookup error propagates for retry",
			event: chargeSuccess("ref-123", 5000),
			prepareMock: func() {
				depositRepo.EXPECT().FindByProviderRef(gomock.Any(), "ref-123").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:  "Confirm error rolls back",
			event: chargeSuccess("ref-123", 5000),
			prepareMock: func() {
				depositRepo.EXPECT().FindByProviderRef(gomock.Any(), "ref-123").Return(deposit, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passthrough)
				depositRepo.EXPECT().Confirm(gomock.Any(), "ref-123", int64(5000)).Return(false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:  "Wallet credit error rolls back",
			event: chargeSuccess("ref-123", 5000),
			prepareMock: func() {
				depositRepo.EXPECT().FindByProviderRef(gomock.Any(), "ref-123").Return(deposit, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passthrough)
				depositRepo.EXPECT().Confirm(gomock.Any(), "ref-123", int64(5000)).Return(true, nil)
				walletRepo.EXPECT().GetOrCreate(gomock.Any(), 1).Return(wallet, nil)
				walletRepo.EXPECT().AddLocked(gomock.Any(), 10, int64(5000)).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:  "Ledger write error rolls back",
			event: chargeSuccess("ref-123", 5000),
			prepareMock: func() {
				depositRepo.EXPECT().FindByProviderRef(gomock.Any(), "ref-123").Return(deposit, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passthrough)
				depositRepo.EXPECT().Confirm(gomock.Any(), "ref-123", int64(5000)).Return(true, nil)
				walletRepo.EXPECT().GetOrCreate(gomock.Any(), 1).Return(wallet, nil)
				walletRepo.EXPECT().AddLocked(gomock.Any(), 10, int64(5000)).Return(nil)
				ledgerRepo.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.ProcessEvent(context.Background(), tt.event)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
