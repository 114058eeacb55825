package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/tdex-network/tdex-pooling/internal/core/domain"
	"github.com/tdex-network/tdex-pooling/internal/core/ports"
)

const (
	EventWithdrawal = "WITHDRAWAL"
)

var (
	ErrInvalidEvent    = errors.New("invalid webhook event type")
	ErrInvalidEndpoint = errors.New("invalid webhook endpoint, must be a valid URI")
)

var supportedEvents = map[string]struct{}{
	EventWithdrawal: {},
	ports.AnyTopic:  {},
}

// WebhookInfo holds the public info of a webhook, secret excluded.
type WebhookInfo struct {
	ID        string
	Event     string
	Endpoint  string
	IsSecured bool
}

type Service struct {
	pubsub ports.SecurePubSub
}

func NewService(pubsub ports.SecurePubSub) *Service {
	return &Service{pubsub}
}

func (s *Service) SecurePubSub() ports.SecurePubSub {
	return s.pubsub
}

func (s *Service) AddWebhook(
	_ context.Context, event, endpoint, secret string,
) (string, error) {
	if _, ok := supportedEvents[event]; !ok {
		return "", fmt.Errorf("%w %q", ErrInvalidEvent, event)
	}
	if u, err := url.ParseRequestURI(endpoint); err != nil || u.Host == "" {
		return "", ErrInvalidEndpoint
	}
	return s.pubsub.Subscribe(event, endpoint, secret)
}

func (s *Service) RemoveWebhook(_ context.Context, id string) error {
	return s.pubsub.Unsubscribe(ports.UnspecifiedTopic, id)
}

// ListWebhooks returns the webhooks notified for the given event, or all of
// them if event is empty.
func (s *Service) ListWebhooks(
	_ context.Context, event string,
) ([]WebhookInfo, error) {
	if _, ok := supportedEvents[event]; !ok && event != ports.UnspecifiedTopic {
		return nil, fmt.Errorf("%w %q", ErrInvalidEvent, event)
	}

	subs := s.pubsub.ListSubscriptionsForTopic(event)
	webhooks := make([]WebhookInfo, 0, len(subs))
	for _, sub := range subs {
		webhooks = append(webhooks, WebhookInfo{
			ID:        sub.Id(),
			Event:     sub.Topic(),
			Endpoint:  sub.NotifyAt(),
			IsSecured: sub.IsSecured(),
		})
	}
	return webhooks, nil
}

func (s *Service) PublishWithdrawalEvent(withdrawal domain.Withdrawal) error {
	event := EventWithdrawal
	payload := map[string]interface{}{
		"event":           event,
		"id":              withdrawal.ID,
		"pool_id":         withdrawal.PoolID,
		"asset":           withdrawal.Asset,
		"account":         withdrawal.Account,
		"amount":          fmt.Sprint(withdrawal.Amount),
		"total_deposited": fmt.Sprint(withdrawal.TotalDeposited),
		"transfer_ref":    withdrawal.TransferRef,
		"timestamp":       withdrawal.Timestamp,
		"date":            time.Unix(withdrawal.Timestamp, 0).UTC().Format(time.RFC3339),
	}
	message, _ := json.Marshal(payload)
	return s.pubsub.Publish(event, string(message))
}
