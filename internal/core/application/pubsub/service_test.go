package pubsub_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-pooling/internal/core/application/pubsub"
	"github.com/tdex-network/tdex-pooling/internal/core/domain"
	"github.com/tdex-network/tdex-pooling/internal/core/ports"
	infrapubsub "github.com/tdex-network/tdex-pooling/internal/infrastructure/pubsub"
	"github.com/tdex-network/tdex-pooling/internal/infrastructure/storage/db/inmemory"
)

type mockSecurePubSub struct {
	ports.SecurePubSub
	published map[string][]string
}

func (m *mockSecurePubSub) Publish(topic, message string) error {
	m.published[topic] = append(m.published[topic], message)
	return nil
}

func newTestService(t *testing.T) *pubsub.Service {
	securePubSub, err := infrapubsub.NewService(
		inmemory.NewSubscriptionStoreImpl(), 0,
	)
	require.NoError(t, err)
	return pubsub.NewService(securePubSub)
}

func TestWebhooks(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	id, err := svc.AddWebhook(
		ctx, pubsub.EventWithdrawal, "http://127.0.0.1:8000/hook", "secret",
	)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = svc.AddWebhook(ctx, ports.AnyTopic, "http://127.0.0.1:8000/any", "")
	require.NoError(t, err)

	_, err = svc.AddWebhook(ctx, "TRADE_SETTLED", "http://127.0.0.1:8000", "")
	require.ErrorIs(t, err, pubsub.ErrInvalidEvent)

	_, err = svc.AddWebhook(ctx, pubsub.EventWithdrawal, "localhost", "")
	require.ErrorIs(t, err, pubsub.ErrInvalidEndpoint)

	hooks, err := svc.ListWebhooks(ctx, ports.UnspecifiedTopic)
	require.NoError(t, err)
	require.Len(t, hooks, 2)

	hooks, err = svc.ListWebhooks(ctx, ports.AnyTopic)
	require.NoError(t, err)
	require.Len(t, hooks, 1)
	require.False(t, hooks[0].IsSecured)

	err = svc.RemoveWebhook(ctx, id)
	require.NoError(t, err)

	hooks, err = svc.ListWebhooks(ctx, pubsub.EventWithdrawal)
	require.NoError(t, err)
	require.Len(t, hooks, 1)
	require.Equal(t, ports.AnyTopic, hooks[0].Event)
}

func TestPublishWithdrawalEvent(t *testing.T) {
	mock := &mockSecurePubSub{published: map[string][]string{}}
	svc := pubsub.NewService(mock)

	withdrawal := domain.NewWithdrawal(
		"pool", "asset", "account", 200000000, 1000000000, "ref", 1700000000,
	)
	err := svc.PublishWithdrawalEvent(withdrawal)
	require.NoError(t, err)

	messages := mock.published[pubsub.EventWithdrawal]
	require.Len(t, messages, 1)

	payload := map[string]interface{}{}
	err = json.Unmarshal([]byte(messages[0]), &payload)
	require.NoError(t, err)
	require.Equal(t, pubsub.EventWithdrawal, payload["event"])
	require.Equal(t, "200000000", payload["amount"])
	require.Equal(t, "1000000000", payload["total_deposited"])
	require.Equal(t, "2023-11-14T22:13:20Z", payload["date"])
}
