package repo

import (
	"github.com/ayodelehq/lockmine/internal/pg"
	accrualrepo "github.com/ayodelehq/lockmine/internal/repo/accrual-repo"
	depositrepo "github.com/ayodelehq/lockmine/internal/repo/deposit-repo"
	ledgerrepo "github.com/ayodelehq/lockmine/internal/repo/ledger-repo"
	userrepo "github.com/ayodelehq/lockmine/internal/repo/user-repo"
	walletrepo "github.com/ayodelehq/lockmine/internal/repo/wallet-repo"
)

type Repositories struct {
	UserRepo    *userrepo.Repository
	DepositRepo *depositrepo.Repository
	WalletRepo  *walletrepo.Repository
	LedgerRepo  *ledgerrepo.Repository
	AccrualRepo *accrualrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		DepositRepo: depositrepo.New(conn, txManager),
		WalletRepo:  walletrepo.New(conn, txManager),
		LedgerRepo:  ledgerrepo.New(conn),
		AccrualRepo: accrualrepo.New(conn),
	}
}
