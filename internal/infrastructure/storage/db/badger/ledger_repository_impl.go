package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/tdex-network/tdex-pooling/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type ledgerRepositoryImpl struct {
	store *badgerhold.Store
}

// NewLedgerRepositoryImpl initialize a badger implementation of the
// domain.LedgerRepository
func NewLedgerRepositoryImpl(store *badgerhold.Store) domain.LedgerRepository {
	return &ledgerRepositoryImpl{store}
}

func (r *ledgerRepositoryImpl) GetLedger(
	_ context.Context, poolID, asset string,
) (*domain.AssetLedger, error) {
	var ledger *domain.AssetLedger
	err := r.store.Badger().View(func(tx *badger.Txn) error {
		l, err := r.getLedger(tx, poolID, asset)
		if err != nil {
			return err
		}
		ledger = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

func (r *ledgerRepositoryImpl) GetLedgersForPool(
	_ context.Context, poolID string,
) ([]domain.AssetLedger, error) {
	var ledgers []domain.AssetLedger
	query := badgerhold.Where("PoolID").Eq(poolID).SortBy("Asset")
	if err := r.store.Find(&ledgers, query); err != nil {
		return nil, err
	}
	return ledgers, nil
}

func (r *ledgerRepositoryImpl) UpdateLedger(
	_ context.Context, poolID, asset string,
	updateFn func(l *domain.AssetLedger) (*domain.AssetLedger, error),
) error {
	return r.store.Badger().Update(func(tx *badger.Txn) error {
		ledger, err := r.getLedger(tx, poolID, asset)
		if err != nil {
			return err
		}

		updatedLedger, err := updateFn(ledger)
		if err != nil {
			return err
		}
		if updatedLedger == nil {
			return ErrLedgerInvalidRequest
		}

		return r.store.TxUpsert(tx, updatedLedger.Key(), *updatedLedger)
	})
}

func (r *ledgerRepositoryImpl) getLedger(
	tx *badger.Txn, poolID, asset string,
) (*domain.AssetLedger, error) {
	var ledger domain.AssetLedger
	if err := r.store.TxGet(tx, domain.LedgerKey(poolID, asset), &ledger); err != nil {
		if err == badgerhold.ErrNotFound {
			return domain.NewAssetLedger(poolID, asset), nil
		}
		return nil, err
	}
	if ledger.Withdrawn == nil {
		ledger.Withdrawn = make(map[string]uint64)
	}
	return &ledger, nil
}
