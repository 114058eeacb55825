package inmemory

import (
	"github.com/tdex-network/tdex-pooling/internal/core/domain"
	"github.com/tdex-network/tdex-pooling/internal/core/ports"
)

type repoManager struct {
	poolRepository       domain.PoolRepository
	ledgerRepository     domain.LedgerRepository
	withdrawalRepository domain.WithdrawalRepository
	subscriptionStore    ports.SubscriptionStore
}

// NewRepoManager returns a RepoManager keeping everything in memory. Nothing
// survives a restart, useful for tests and development.
func NewRepoManager() ports.RepoManager {
	return &repoManager{
		poolRepository:       NewPoolRepositoryImpl(),
		ledgerRepository:     NewLedgerRepositoryImpl(),
		withdrawalRepository: NewWithdrawalRepositoryImpl(),
		subscriptionStore:    NewSubscriptionStoreImpl(),
	}
}

func (r *repoManager) PoolRepository() domain.PoolRepository {
	return r.poolRepository
}

func (r *repoManager) LedgerRepository() domain.LedgerRepository {
	return r.ledgerRepository
}

func (r *repoManager) WithdrawalRepository() domain.WithdrawalRepository {
	return r.withdrawalRepository
}

func (r *repoManager) SubscriptionStore() ports.SubscriptionStore {
	return r.subscriptionStore
}

func (r *repoManager) Close() {}
