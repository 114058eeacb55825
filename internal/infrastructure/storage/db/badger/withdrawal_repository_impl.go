package dbbadger

import (
	"context"

	"github.com/tdex-network/tdex-pooling/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type withdrawalRepositoryImpl struct {
	store *badgerhold.Store
}

// NewWithdrawalRepositoryImpl initialize a badger implementation of the
// domain.WithdrawalRepository
func NewWithdrawalRepositoryImpl(store *badgerhold.Store) domain.WithdrawalRepository {
	return &withdrawalRepositoryImpl{store}
}

func (r *withdrawalRepositoryImpl) AddWithdrawal(
	_ context.Context, withdrawal domain.Withdrawal,
) error {
	if err := r.store.Insert(withdrawal.ID, withdrawal); err != nil {
		if err == badgerhold.ErrKeyExists {
			return nil
		}
		return err
	}
	return nil
}

func (r *withdrawalRepositoryImpl) GetWithdrawalsForPool(
	_ context.Context, poolID string, page *domain.Page,
) ([]domain.Withdrawal, error) {
	query := badgerhold.Where("PoolID").Eq(poolID)
	return r.findWithdrawals(query, page)
}

func (r *withdrawalRepositoryImpl) GetWithdrawalsForAccount(
	_ context.Context, poolID, account string, page *domain.Page,
) ([]domain.Withdrawal, error) {
	query := badgerhold.Where("PoolID").Eq(poolID).And("Account").Eq(account)
	return r.findWithdrawals(query, page)
}

func (r *withdrawalRepositoryImpl) findWithdrawals(
	query *badgerhold.Query, page *domain.Page,
) ([]domain.Withdrawal, error) {
	query.SortBy("Timestamp", "ID").Reverse()
	if page != nil {
		from := page.Number*page.Size - page.Size
		if from < 0 {
			from = 0
		}
		query.Skip(from).Limit(page.Size)
	}

	var withdrawals []domain.Withdrawal
	if err := r.store.Find(&withdrawals, query); err != nil {
		return nil, err
	}
	return withdrawals, nil
}
