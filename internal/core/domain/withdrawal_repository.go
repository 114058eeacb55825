package domain

import "context"

// WithdrawalRepository is the abstraction for any kind of database intended to
// persist the history of pool withdrawals.
type WithdrawalRepository interface {
	// AddWithdrawal adds the given withdrawal to the repository. A withdrawal
	// with the same id is never overwritten.
	AddWithdrawal(ctx context.Context, withdrawal Withdrawal) error
	// GetWithdrawalsForPool returns the withdrawals of the given pool, most
	// recent first.
	GetWithdrawalsForPool(
		ctx context.Context, poolID string, page *Page,
	) ([]Withdrawal, error)
	// GetWithdrawalsForAccount returns the withdrawals made by the given
	// account from the given pool, most recent first.
	GetWithdrawalsForAccount(
		ctx context.Context, poolID, account string, page *Page,
	) ([]Withdrawal, error)
}
