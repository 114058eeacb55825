package ports

import (
	"github.com/tdex-network/tdex-pooling/internal/core/domain"
)

// RepoManager interface defines the methods for pools, ledgers, withdrawals
// and webhook subscriptions.
type RepoManager interface {
	PoolRepository() domain.PoolRepository
	LedgerRepository() domain.LedgerRepository
	WithdrawalRepository() domain.WithdrawalRepository
	SubscriptionStore() SubscriptionStore
	Close()
}
