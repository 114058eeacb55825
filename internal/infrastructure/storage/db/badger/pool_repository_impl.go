package dbbadger

import (
	"context"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/tdex-network/tdex-pooling/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type poolRepositoryImpl struct {
	store *badgerhold.Store
	// serializes inserts so that two pools can't claim the same custody
	// account concurrently.
	lock *sync.Mutex
}

// NewPoolRepositoryImpl initialize a badger implementation of the
// domain.PoolRepository
func NewPoolRepositoryImpl(store *badgerhold.Store) domain.PoolRepository {
	return &poolRepositoryImpl{store, &sync.Mutex{}}
}

func (r *poolRepositoryImpl) AddPool(_ context.Context, pool *domain.Pool) error {
	if pool == nil {
		return ErrPoolInvalidRequest
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	return r.store.Badger().Update(func(tx *badger.Txn) error {
		var pools []domain.Pool
		query := badgerhold.Where("CustodyAccount").Eq(pool.CustodyAccount)
		if err := r.store.TxFind(tx, &pools, query); err != nil {
			return err
		}
		for _, p := range pools {
			if p.ID == pool.ID {
				return domain.ErrPoolAlreadyExists
			}
		}
		if len(pools) > 0 {
			return domain.ErrCustodyAccountInUse
		}

		if err := r.store.TxInsert(tx, pool.ID, *pool); err != nil {
			if err == badgerhold.ErrKeyExists {
				return domain.ErrPoolAlreadyExists
			}
			return err
		}
		return nil
	})
}

func (r *poolRepositoryImpl) GetPool(_ context.Context, id string) (*domain.Pool, error) {
	var pool domain.Pool
	if err := r.store.Get(id, &pool); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrPoolNotFound
		}
		return nil, err
	}
	return &pool, nil
}

func (r *poolRepositoryImpl) GetAllPools(_ context.Context) ([]domain.Pool, error) {
	var pools []domain.Pool
	query := (&badgerhold.Query{}).SortBy("CreatedAt", "ID")
	if err := r.store.Find(&pools, query); err != nil {
		return nil, err
	}
	return pools, nil
}
