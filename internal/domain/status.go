package domain

// Deposit lifecycle. Transitions are strictly forward:
// initialized -> confirmed -> completed.
const (
	DepositStatusInitialized string = "initialized"
	DepositStatusConfirmed   string = "confirmed"
	DepositStatusCompleted   string = "completed"
)

// Ledger entry types.
const (
	EntryTypeDeposit       string = "deposit"
	EntryTypeRewardAccrual string = "reward_accrual"
	EntryTypeReleaseLocked string = "release_locked"
	EntryTypeRewardRelease string = "reward_release"
	EntryTypeWithdrawal    string = "withdrawal"
	EntryTypeFee           string = "fee"
)
