package application

import (
	"context"

	"github.com/tdex-network/tdex-pooling/internal/core/application/pubsub"
	"github.com/tdex-network/tdex-pooling/internal/core/domain"
	"github.com/tdex-network/tdex-pooling/internal/core/ports"
)

type WebhookInfo = pubsub.WebhookInfo

type PubSubService interface {
	SecurePubSub() ports.SecurePubSub
	AddWebhook(ctx context.Context, event, endpoint, secret string) (string, error)
	RemoveWebhook(ctx context.Context, id string) error
	ListWebhooks(ctx context.Context, event string) ([]WebhookInfo, error)
	PublishWithdrawalEvent(withdrawal domain.Withdrawal) error
}

func NewPubSubService(securePubSub ports.SecurePubSub) PubSubService {
	return pubsub.NewService(securePubSub)
}
