package pooling

import (
	"sync"

	"github.com/tdex-network/tdex-pooling/internal/core/domain"
)

// locker hands out one RWMutex per (pool, asset) pair. Withdrawals hold it
// exclusively, reads in shared mode. Entries are never removed.
type locker struct {
	lock  *sync.Mutex
	locks map[string]*sync.RWMutex
}

func newLocker() *locker {
	return &locker{
		lock:  &sync.Mutex{},
		locks: make(map[string]*sync.RWMutex),
	}
}

func (l *locker) get(poolID, asset string) *sync.RWMutex {
	key := domain.LedgerKey(poolID, asset)

	l.lock.Lock()
	defer l.lock.Unlock()

	mtx, ok := l.locks[key]
	if !ok {
		mtx = &sync.RWMutex{}
		l.locks[key] = mtx
	}
	return mtx
}
