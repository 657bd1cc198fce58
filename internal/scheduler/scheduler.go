package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ayodelehq/lockmine/internal/config"
	"github.com/ayodelehq/lockmine/internal/domain"
	"github.com/ayodelehq/lockmine/internal/pg"
)

type DepositRepo interface {
	FindAccruable(ctx context.Context) ([]domain.Deposit, error)
	FindMatured(ctx context.Context) ([]domain.Deposit, error)
	IncrementDayCount(ctx context.Context, depositID, fromDay int) (bool, error)
	Complete(ctx context.Context, depositID int) (bool, error)
}

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	Release(ctx context.Context, walletID int, principalKobo, rewardKobo int64) (bool, error)
}

type AccrualRepo interface {
	Insert(ctx context.Context, accrual *domain.RewardAccrual) (bool, error)
	SumByDeposit(ctx context.Context, depositID int) (int64, error)
}

type LedgerRepo interface {
	Record(ctx context.Context, entry *domain.LedgerEntry) error
}

var ErrDayAdvanced = errors.New("day count advanced by another run")

// Service runs the daily accrual and release passes. A single instance per
// database is assumed: the overlap guard is in-process, so running two
// scheduler processes against one database is unsafe.
type Service struct {
	schedule    string
	depositRepo DepositRepo
	walletRepo  WalletRepo
	accrualRepo AccrualRepo
	ledgerRepo  LedgerRepo
	txManager   pg.TXManager
	workerPool  WorkerPoolI
	cron        *cron.Cron
	running     atomic.Bool
}

func New(cfg *config.Config, depositRepo DepositRepo, walletRepo WalletRepo, accrualRepo AccrualRepo, ledgerRepo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		schedule:    cfg.CronSchedule,
		depositRepo: depositRepo,
		walletRepo:  walletRepo,
		accrualRepo: accrualRepo,
		ledgerRepo:  ledgerRepo,
		txManager:   txManager,
		workerPool:  NewWorkerPool(10),
	}
}

func (s *Service) Start(ctx context.Context) error {
	s.cron = cron.New()
	_, err := s.cron.AddFunc(s.schedule, func() {
		s.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.schedule, err)
	}

	zap.L().Info("Accrual scheduler started", zap.String("schedule", s.schedule))
	s.cron.Start()

	go func() {
		<-ctx.Done()
		zap.L().Info("Context canceled, stopping scheduler")
		<-s.cron.Stop().Done()
		s.workerPool.Close()
	}()

	return nil
}

// RunOnce executes one accrual pass and one release pass. A fire that
// overlaps a still-running job is skipped.
func (s *Service) RunOnce(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		zap.L().Warn("previous accrual run still in progress, skipping")
		return
	}
	defer s.running.Store(false)

	zap.L().Info("Accrual job start")
	s.accruePass(ctx)
	s.releasePass(ctx)
	zap.L().Info("Accrual job completed")
}

func (s *Service) accruePass(ctx context.Context) {
	deposits, err := s.depositRepo.FindAccruable(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch deposits for accrual", zap.Error(err))
		return
	}

	s.dispatch(ctx, deposits, s.accrueDeposit)
}

func (s *Service) releasePass(ctx context.Context) {
	deposits, err := s.depositRepo.FindMatured(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch matured deposits", zap.Error(err))
		return
	}

	s.dispatch(ctx, deposits, s.releaseDeposit)
}

// dispatch fans deposits out to the worker pool and waits for the batch.
// A failure on one deposit is logged by the pool and never aborts the rest.
func (s *Service) dispatch(ctx context.Context, deposits []domain.Deposit, handle func(ctx context.Context, d domain.Deposit) error) {
	var wg sync.WaitGroup
	var g errgroup.Group
	for _, deposit := range deposits {
		deposit := deposit

		wg.Add(1)
		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer wg.Done()
				if err := handle(ctx, deposit); err != nil {
					return fmt.Errorf("deposit %d: %w", deposit.ID, err)
				}
				return nil
			})
			if err != nil {
				wg.Done()
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching deposits", zap.Error(err))
	}
	wg.Wait()
}

// dailyReward is one period's interest: floor(principal * rate / 30).
// The truncation residue is forfeited; the release pays exactly the sum of
// recorded accruals.
func dailyReward(d domain.Deposit) int64 {
	return int64(float64(d.AmountKobo) * d.RatePer30Days / 30)
}

// accrueDeposit records one day's reward and advances the day counter in a
// single transaction. The accrual insert dedups on (deposit, day), so a
// duplicate run commits nothing.
func (s *Service) accrueDeposit(ctx context.Context, d domain.Deposit) error {
	rewardKobo := dailyReward(d)
	dayNumber := d.DayCount + 1

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		inserted, err := s.accrualRepo.Insert(ctx, &domain.RewardAccrual{
			DepositID:  d.ID,
			UserID:     d.UserID,
			DayNumber:  dayNumber,
			AmountKobo: rewardKobo,
		})
		if err != nil {
			return err
		}
		if !inserted {
			zap.L().Info("Reward already accrued for day",
				zap.Int("depositID", d.ID), zap.Int("dayNumber", dayNumber))
			return nil
		}

		metadata, _ := json.Marshal(map[string]any{"deposit_id": d.ID, "day_number": dayNumber})
		if err := s.ledgerRepo.Record(ctx, &domain.LedgerEntry{
			UserID:     d.UserID,
			Type:       domain.EntryTypeRewardAccrual,
			AmountKobo: rewardKobo,
			Reference:  fmt.Sprintf("reward:%d", d.ID),
			Metadata:   metadata,
		}); err != nil {
			return err
		}

		advanced, err := s.depositRepo.IncrementDayCount(ctx, d.ID, d.DayCount)
		if err != nil {
			return err
		}
		if !advanced {
			// Rolls back the accrual row written above.
			return ErrDayAdvanced
		}

		zap.L().Info("Rewarded deposit",
			zap.Int("depositID", d.ID),
			zap.Int("userID", d.UserID),
			zap.Int("dayNumber", dayNumber),
			zap.Int64("rewardKobo", rewardKobo),
		)
		return nil
	})
}

// releaseDeposit moves principal plus accumulated rewards back to the
// available balance and finalizes the deposit, all in one transaction.
func (s *Service) releaseDeposit(ctx context.Context, d domain.Deposit) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		totalRewards, err := s.accrualRepo.SumByDeposit(ctx, d.ID)
		if err != nil {
			return err
		}

		wallet, err := s.walletRepo.GetByUserID(ctx, d.UserID)
		if err != nil {
			return err
		}
		if wallet == nil {
			zap.L().Warn("No wallet for user when releasing deposit", zap.Int("userID", d.UserID))
			return nil
		}

		released, err := s.walletRepo.Release(ctx, wallet.ID, d.AmountKobo, totalRewards)
		if err != nil {
			return err
		}
		if !released {
			return fmt.Errorf("locked balance below principal for wallet %d", wallet.ID)
		}

		metadata, _ := json.Marshal(map[string]any{"deposit_id": d.ID})
		if err := s.ledgerRepo.Record(ctx, &domain.LedgerEntry{
			UserID:     d.UserID,
			Type:       domain.EntryTypeReleaseLocked,
			AmountKobo: d.AmountKobo,
			Reference:  fmt.Sprintf("release:%d", d.ID),
			Metadata:   metadata,
		}); err != nil {
			return err
		}
		if totalRewards > 0 {
			if err := s.ledgerRepo.Record(ctx, &domain.LedgerEntry{
				UserID:     d.UserID,
				Type:       domain.EntryTypeRewardRelease,
				AmountKobo: totalRewards,
				Reference:  fmt.Sprintf("reward_release:%d", d.ID),
				Metadata:   metadata,
			}); err != nil {
				return err
			}
		}

		completed, err := s.depositRepo.Complete(ctx, d.ID)
		if err != nil {
			return err
		}
		if !completed {
			return fmt.Errorf("deposit %d no longer confirmed", d.ID)
		}

		zap.L().Info("Released deposit",
			zap.Int("depositID", d.ID),
			zap.Int("userID", d.UserID),
			zap.Int64("principalKobo", d.AmountKobo),
			zap.Int64("rewardsKobo", totalRewards),
		)
		return nil
	})
}
