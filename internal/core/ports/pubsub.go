package ports

import "errors"

const AnyTopic = "*"
const UnspecifiedTopic = ""

// ErrSubscriptionNotFound is returned when unsubscribing an unknown id.
var ErrSubscriptionNotFound = errors.New("webhook not found")

type Subscription interface {
	Topic() string
	Id() string
	IsSecured() bool
	NotifyAt() string
}

// SubscriptionRecord is the storable form of a subscription.
type SubscriptionRecord struct {
	ID       string
	Topic    string
	Endpoint string
	Secret   string
}

// SubscriptionStore persists the subscriptions of a SecurePubSub service.
type SubscriptionStore interface {
	// Add stores the subscription, nothing is done if one with the same id
	// exists already.
	Add(sub SubscriptionRecord) error
	// Get returns nil if the subscription does not exist.
	Get(id string) (*SubscriptionRecord, error)
	Remove(id string) error
	// ListForTopic returns the subscriptions for the given topic, or all of
	// them for UnspecifiedTopic.
	ListForTopic(topic string) ([]SubscriptionRecord, error)
}

// SecurePubSub defines the methods of a pubsub service notifying external
// endpoints. Messages for secured subscriptions are authenticated with the
// subscription secret.
type SecurePubSub interface {
	// Subscribe adds a new subscription for the requested topic.
	Subscribe(topic, endpoint, secret string) (string, error)
	// Unsubscribe removes some client defined by its id for a topic.
	Unsubscribe(topic, id string) error
	// ListSubscriptionsForTopic returns the info of all clients subscribed for
	// a certain topic.
	ListSubscriptionsForTopic(topic string) []Subscription
	// Publish publishes a message for a certain topic. All clients subscribed
	// for such topic will receive the message.
	Publish(topic string, message string) error
}
