package db_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-pooling/internal/core/ports"
)

func TestSubscriptionStoreImplementations(t *testing.T) {
	for _, repo := range createRepoManagers(t) {
		repo := repo

		t.Run(repo.Name, func(t *testing.T) {
			store := repo.SubscriptionStore()

			withdrawalSub := ports.SubscriptionRecord{
				ID:       uuid.New().String(),
				Topic:    "WITHDRAWAL",
				Endpoint: "http://127.0.0.1:8080/hook",
				Secret:   "secret",
			}
			anySub := ports.SubscriptionRecord{
				ID:       uuid.New().String(),
				Topic:    ports.AnyTopic,
				Endpoint: "http://127.0.0.1:8081/hook",
			}

			require.NoError(t, store.Add(withdrawalSub))
			require.NoError(t, store.Add(anySub))

			sub, err := store.Get(withdrawalSub.ID)
			require.NoError(t, err)
			require.NotNil(t, sub)
			require.Equal(t, withdrawalSub, *sub)

			subs, err := store.ListForTopic("WITHDRAWAL")
			require.NoError(t, err)
			require.Len(t, subs, 1)

			subs, err = store.ListForTopic(ports.UnspecifiedTopic)
			require.NoError(t, err)
			require.Len(t, subs, 2)

			require.NoError(t, store.Remove(withdrawalSub.ID))
			sub, err = store.Get(withdrawalSub.ID)
			require.NoError(t, err)
			require.Nil(t, sub)

			// removing twice is a no-op
			require.NoError(t, store.Remove(withdrawalSub.ID))
		})
	}
}
