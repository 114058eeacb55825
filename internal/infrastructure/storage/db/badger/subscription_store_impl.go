package dbbadger

import (
	"github.com/tdex-network/tdex-pooling/internal/core/ports"
	"github.com/timshannon/badgerhold/v4"
)

type subscriptionStoreImpl struct {
	store *badgerhold.Store
}

// NewSubscriptionStoreImpl initialize a badger implementation of the
// ports.SubscriptionStore
func NewSubscriptionStoreImpl(store *badgerhold.Store) ports.SubscriptionStore {
	return &subscriptionStoreImpl{store}
}

func (s *subscriptionStoreImpl) Add(sub ports.SubscriptionRecord) error {
	if err := s.store.Insert(sub.ID, sub); err != nil {
		if err == badgerhold.ErrKeyExists {
			return nil
		}
		return err
	}
	return nil
}

func (s *subscriptionStoreImpl) Get(id string) (*ports.SubscriptionRecord, error) {
	var sub ports.SubscriptionRecord
	if err := s.store.Get(id, &sub); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (s *subscriptionStoreImpl) Remove(id string) error {
	if err := s.store.Delete(id, ports.SubscriptionRecord{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return err
	}
	return nil
}

func (s *subscriptionStoreImpl) ListForTopic(
	topic string,
) ([]ports.SubscriptionRecord, error) {
	query := &badgerhold.Query{}
	if topic != ports.UnspecifiedTopic {
		query = badgerhold.Where("Topic").Eq(topic)
	}
	query.SortBy("ID")

	var subs []ports.SubscriptionRecord
	if err := s.store.Find(&subs, query); err != nil {
		return nil, err
	}
	return subs, nil
}
