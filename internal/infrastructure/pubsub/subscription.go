package pubsub

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/tdex-network/tdex-pooling/internal/core/ports"
)

type Subscription struct {
	ID       string `json:"id"`
	Event    string `json:"event"`
	Endpoint string `json:"endpoint"`
	Secret   string `json:"secret"`
}

type subscriptions []Subscription

func (s subscriptions) toPortable() []ports.Subscription {
	subs := make([]ports.Subscription, 0, len(s))
	for i := range s {
		sub := s[i]
		subs = append(subs, &sub)
	}
	return subs
}

func NewSubscription(event, endpoint, secret string) (*Subscription, error) {
	if len(event) <= 0 {
		return nil, fmt.Errorf("missing event")
	}
	u, err := url.ParseRequestURI(endpoint)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid webhook endpoint, must be a valid URI")
	}
	id := uuid.New().String()
	return &Subscription{id, event, endpoint, secret}, nil
}

func newSubscriptionFromRecord(r ports.SubscriptionRecord) Subscription {
	return Subscription{
		ID:       r.ID,
		Event:    r.Topic,
		Endpoint: r.Endpoint,
		Secret:   r.Secret,
	}
}

func (h *Subscription) Topic() string {
	return h.Event
}

func (h *Subscription) Id() string {
	return h.ID
}

func (h *Subscription) NotifyAt() string {
	return h.Endpoint
}

func (h *Subscription) IsSecured() bool {
	return len(h.Secret) > 0
}

func (h *Subscription) record() ports.SubscriptionRecord {
	return ports.SubscriptionRecord{
		ID:       h.ID,
		Topic:    h.Event,
		Endpoint: h.Endpoint,
		Secret:   h.Secret,
	}
}
