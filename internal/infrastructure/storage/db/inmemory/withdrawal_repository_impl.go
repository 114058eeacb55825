package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/tdex-network/tdex-pooling/internal/core/domain"
)

type withdrawalRepositoryImpl struct {
	withdrawals map[string]domain.Withdrawal
	lock        *sync.RWMutex
}

// NewWithdrawalRepositoryImpl returns a new empty in memory
// WithdrawalRepository.
func NewWithdrawalRepositoryImpl() domain.WithdrawalRepository {
	return &withdrawalRepositoryImpl{
		withdrawals: map[string]domain.Withdrawal{},
		lock:        &sync.RWMutex{},
	}
}

func (r *withdrawalRepositoryImpl) AddWithdrawal(
	_ context.Context, withdrawal domain.Withdrawal,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.withdrawals[withdrawal.ID]; !ok {
		r.withdrawals[withdrawal.ID] = withdrawal
	}
	return nil
}

func (r *withdrawalRepositoryImpl) GetWithdrawalsForPool(
	_ context.Context, poolID string, page *domain.Page,
) ([]domain.Withdrawal, error) {
	return r.findWithdrawals(func(w domain.Withdrawal) bool {
		return w.PoolID == poolID
	}, page), nil
}

func (r *withdrawalRepositoryImpl) GetWithdrawalsForAccount(
	_ context.Context, poolID, account string, page *domain.Page,
) ([]domain.Withdrawal, error) {
	return r.findWithdrawals(func(w domain.Withdrawal) bool {
		return w.PoolID == poolID && w.Account == account
	}, page), nil
}

func (r *withdrawalRepositoryImpl) findWithdrawals(
	filter func(domain.Withdrawal) bool, page *domain.Page,
) []domain.Withdrawal {
	r.lock.RLock()
	defer r.lock.RUnlock()

	list := make([]domain.Withdrawal, 0)
	for _, w := range r.withdrawals {
		if filter(w) {
			list = append(list, w)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Timestamp == list[j].Timestamp {
			return list[i].ID > list[j].ID
		}
		return list[i].Timestamp > list[j].Timestamp
	})

	from, to := page.Bounds(len(list))
	return list[from:to]
}
