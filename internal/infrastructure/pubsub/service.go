package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/tdex-network/tdex-pooling/internal/core/ports"
	"github.com/tdex-network/tdex-pooling/pkg/circuitbreaker"
	"github.com/tdex-network/tdex-pooling/pkg/util"
	"golang.org/x/sync/errgroup"
)

const defaultRequestTimeout = 15 * time.Second

var (
	// ErrMissingStore ...
	ErrMissingStore = errors.New("missing subscription store")
)

type service struct {
	store      ports.SubscriptionStore
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker
}

// NewService returns a webhook based ports.SecurePubSub persisting its
// subscriptions in the given store.
func NewService(
	store ports.SubscriptionStore, requestTimeout time.Duration,
) (ports.SecurePubSub, error) {
	if store == nil {
		return nil, ErrMissingStore
	}
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return &service{
		store:      store,
		httpClient: &http.Client{Timeout: requestTimeout},
		cb:         circuitbreaker.NewCircuitBreaker("webhooks"),
	}, nil
}

func (ws *service) Subscribe(topic, endpoint, secret string) (string, error) {
	sub, err := NewSubscription(topic, endpoint, secret)
	if err != nil {
		return "", err
	}

	if err := ws.store.Add(sub.record()); err != nil {
		return "", err
	}
	return sub.ID, nil
}

func (ws *service) Unsubscribe(_, id string) error {
	sub, err := ws.store.Get(id)
	if err != nil {
		return err
	}
	if sub == nil {
		return ports.ErrSubscriptionNotFound
	}
	return ws.store.Remove(id)
}

func (ws *service) ListSubscriptionsForTopic(topic string) []ports.Subscription {
	return ws.listSubscriptionsForTopic(topic).toPortable()
}

func (ws *service) Publish(topic string, message string) error {
	return ws.publishForTopic(topic, message)
}

func (ws *service) listSubscriptionsForTopic(topic string) subscriptions {
	subs := ws.getSubscriptionsForTopic(topic)
	if topic != ports.AnyTopic && topic != ports.UnspecifiedTopic {
		subsForAnyTopic := ws.getSubscriptionsForTopic(ports.AnyTopic)
		subs = append(subs, subsForAnyTopic...)
	}
	return subs
}

func (ws *service) getSubscriptionsForTopic(topic string) subscriptions {
	records, err := ws.store.ListForTopic(topic)
	if err != nil {
		log.WithError(err).Warnf("failed to list webhooks for topic %s", topic)
		return nil
	}

	subs := make(subscriptions, 0, len(records))
	for _, r := range records {
		subs = append(subs, newSubscriptionFromRecord(r))
	}
	return subs
}

func (ws *service) publishForTopic(topic, message string) error {
	subs := ws.listSubscriptionsForTopic(topic)

	eg := &errgroup.Group{}
	for i := range subs {
		sub := subs[i]
		eg.Go(func() error { return ws.doRequest(sub, message) })
	}
	return eg.Wait()
}

func (ws *service) doRequest(sub Subscription, payload string) error {
	_, err := ws.cb.Execute(func() (interface{}, error) {
		headers := map[string]string{}
		if sub.IsSecured() {
			token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
				Subject:  sub.ID,
				IssuedAt: time.Now().Unix(),
			})
			tokenString, err := token.SignedString([]byte(sub.Secret))
			if err != nil {
				return nil, err
			}
			headers["Authorization"] = fmt.Sprintf("Bearer %s", tokenString)
		}

		if err := util.DoJSON(
			context.Background(), ws.httpClient, http.MethodPost, sub.Endpoint,
			headers, json.RawMessage(payload), nil,
		); err != nil {
			return nil, fmt.Errorf("webhook %s: %w", sub.ID, err)
		}
		return nil, nil
	})

	return err
}
