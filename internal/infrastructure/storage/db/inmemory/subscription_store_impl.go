package inmemory

import (
	"sort"
	"sync"

	"github.com/tdex-network/tdex-pooling/internal/core/ports"
)

type subscriptionStoreImpl struct {
	subs map[string]ports.SubscriptionRecord
	lock *sync.RWMutex
}

// NewSubscriptionStoreImpl returns a new empty in memory SubscriptionStore.
func NewSubscriptionStoreImpl() ports.SubscriptionStore {
	return &subscriptionStoreImpl{
		subs: map[string]ports.SubscriptionRecord{},
		lock: &sync.RWMutex{},
	}
}

func (s *subscriptionStoreImpl) Add(sub ports.SubscriptionRecord) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.subs[sub.ID]; !ok {
		s.subs[sub.ID] = sub
	}
	return nil
}

func (s *subscriptionStoreImpl) Get(id string) (*ports.SubscriptionRecord, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	sub, ok := s.subs[id]
	if !ok {
		return nil, nil
	}
	return &sub, nil
}

func (s *subscriptionStoreImpl) Remove(id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	delete(s.subs, id)
	return nil
}

func (s *subscriptionStoreImpl) ListForTopic(
	topic string,
) ([]ports.SubscriptionRecord, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	subs := make([]ports.SubscriptionRecord, 0)
	for _, sub := range s.subs {
		if topic == ports.UnspecifiedTopic || sub.Topic == topic {
			subs = append(subs, sub)
		}
	}
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].ID < subs[j].ID
	})
	return subs, nil
}
