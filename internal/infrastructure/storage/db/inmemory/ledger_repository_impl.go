package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/tdex-network/tdex-pooling/internal/core/domain"
)

type ledgerRepositoryImpl struct {
	ledgers map[string]*domain.AssetLedger
	lock    *sync.RWMutex
}

// NewLedgerRepositoryImpl returns a new empty in memory LedgerRepository.
func NewLedgerRepositoryImpl() domain.LedgerRepository {
	return &ledgerRepositoryImpl{
		ledgers: map[string]*domain.AssetLedger{},
		lock:    &sync.RWMutex{},
	}
}

func (r *ledgerRepositoryImpl) GetLedger(
	_ context.Context, poolID, asset string,
) (*domain.AssetLedger, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.getLedger(poolID, asset), nil
}

func (r *ledgerRepositoryImpl) GetLedgersForPool(
	_ context.Context, poolID string,
) ([]domain.AssetLedger, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	ledgers := make([]domain.AssetLedger, 0)
	for _, l := range r.ledgers {
		if l.PoolID == poolID {
			ledgers = append(ledgers, *l.Copy())
		}
	}
	sort.SliceStable(ledgers, func(i, j int) bool {
		return ledgers[i].Asset < ledgers[j].Asset
	})
	return ledgers, nil
}

func (r *ledgerRepositoryImpl) UpdateLedger(
	_ context.Context, poolID, asset string,
	updateFn func(l *domain.AssetLedger) (*domain.AssetLedger, error),
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	ledger := r.getLedger(poolID, asset)
	updatedLedger, err := updateFn(ledger)
	if err != nil {
		return err
	}
	if updatedLedger == nil {
		return ErrLedgerInvalidRequest
	}

	r.ledgers[domain.LedgerKey(poolID, asset)] = updatedLedger.Copy()
	return nil
}

func (r *ledgerRepositoryImpl) getLedger(poolID, asset string) *domain.AssetLedger {
	ledger, ok := r.ledgers[domain.LedgerKey(poolID, asset)]
	if !ok {
		return domain.NewAssetLedger(poolID, asset)
	}
	return ledger.Copy()
}
