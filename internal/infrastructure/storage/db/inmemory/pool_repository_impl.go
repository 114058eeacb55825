package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/tdex-network/tdex-pooling/internal/core/domain"
)

type poolRepositoryImpl struct {
	pools map[string]domain.Pool
	lock  *sync.RWMutex
}

// NewPoolRepositoryImpl returns a new empty in memory PoolRepository.
func NewPoolRepositoryImpl() domain.PoolRepository {
	return &poolRepositoryImpl{
		pools: map[string]domain.Pool{},
		lock:  &sync.RWMutex{},
	}
}

func (r *poolRepositoryImpl) AddPool(_ context.Context, pool *domain.Pool) error {
	if pool == nil {
		return ErrPoolInvalidRequest
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.pools[pool.ID]; ok {
		return domain.ErrPoolAlreadyExists
	}
	for _, p := range r.pools {
		if p.CustodyAccount == pool.CustodyAccount {
			return domain.ErrCustodyAccountInUse
		}
	}
	r.pools[pool.ID] = copyPool(*pool)
	return nil
}

func (r *poolRepositoryImpl) GetPool(_ context.Context, id string) (*domain.Pool, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	pool, ok := r.pools[id]
	if !ok {
		return nil, domain.ErrPoolNotFound
	}
	cp := copyPool(pool)
	return &cp, nil
}

func (r *poolRepositoryImpl) GetAllPools(_ context.Context) ([]domain.Pool, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	pools := make([]domain.Pool, 0, len(r.pools))
	for _, pool := range r.pools {
		pools = append(pools, copyPool(pool))
	}
	sort.SliceStable(pools, func(i, j int) bool {
		if pools[i].CreatedAt == pools[j].CreatedAt {
			return pools[i].ID < pools[j].ID
		}
		return pools[i].CreatedAt < pools[j].CreatedAt
	})
	return pools, nil
}

func copyPool(pool domain.Pool) domain.Pool {
	participants := make([]domain.Participant, len(pool.Participants))
	copy(participants, pool.Participants)
	pool.Participants = participants
	return pool
}
