package pubsub_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-pooling/internal/core/ports"
	"github.com/tdex-network/tdex-pooling/internal/infrastructure/pubsub"
	"github.com/tdex-network/tdex-pooling/internal/infrastructure/storage/db/inmemory"
)

const (
	withdrawalTopic = "WITHDRAWAL"
	secret          = "supersecret"
	testMessage     = `{"pool_id":"pool","asset":"0x5FbDB2315678afecb367f032d93F642f64180aa3","account":"0x70997970C51812dc3A010C7d01b50e0d17dc79C8","amount":"200"}`
)

type receivedRequest struct {
	path  string
	body  string
	token string
}

type testWebServer struct {
	*httptest.Server
	lock     sync.Mutex
	requests []receivedRequest
}

func newTestWebServer() *testWebServer {
	s := &testWebServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

			s.lock.Lock()
			s.requests = append(s.requests, receivedRequest{
				r.URL.Path, string(body), token,
			})
			s.lock.Unlock()

			if r.URL.Path == "/failing" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
		},
	))
	return s
}

func (s *testWebServer) received() []receivedRequest {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]receivedRequest{}, s.requests...)
}

func newTestService(t *testing.T) ports.SecurePubSub {
	svc, err := pubsub.NewService(
		inmemory.NewSubscriptionStoreImpl(), 5*time.Second,
	)
	require.NoError(t, err)
	return svc
}

func TestPubSubService(t *testing.T) {
	server := newTestWebServer()
	defer server.Close()

	svc := newTestService(t)

	withdrawalSubID, err := svc.Subscribe(
		withdrawalTopic, server.URL+"/withdrawal", secret,
	)
	require.NoError(t, err)
	require.NotEmpty(t, withdrawalSubID)

	anySubID, err := svc.Subscribe(ports.AnyTopic, server.URL+"/allevents", "")
	require.NoError(t, err)
	require.NotEmpty(t, anySubID)

	subs := svc.ListSubscriptionsForTopic(withdrawalTopic)
	require.Len(t, subs, 2)
	subs = svc.ListSubscriptionsForTopic(ports.AnyTopic)
	require.Len(t, subs, 1)
	require.False(t, subs[0].IsSecured())
	subs = svc.ListSubscriptionsForTopic(ports.UnspecifiedTopic)
	require.Len(t, subs, 2)

	err = svc.Publish(withdrawalTopic, testMessage)
	require.NoError(t, err)

	requests := server.received()
	require.Len(t, requests, 2)

	for _, req := range requests {
		require.Equal(t, testMessage, req.body)

		if req.path == "/allevents" {
			require.Empty(t, req.token)
			continue
		}

		require.Equal(t, "/withdrawal", req.path)
		token, err := jwt.Parse(req.token, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		require.NoError(t, err)
		require.True(t, token.Valid)
	}

	err = svc.Unsubscribe(withdrawalTopic, withdrawalSubID)
	require.NoError(t, err)
	err = svc.Unsubscribe(withdrawalTopic, withdrawalSubID)
	require.ErrorIs(t, err, ports.ErrSubscriptionNotFound)

	subs = svc.ListSubscriptionsForTopic(withdrawalTopic)
	require.Len(t, subs, 1)
}

func TestPubSubFailingEndpoint(t *testing.T) {
	server := newTestWebServer()
	defer server.Close()

	svc := newTestService(t)

	_, err := svc.Subscribe(withdrawalTopic, server.URL+"/failing", "")
	require.NoError(t, err)

	err = svc.Publish(withdrawalTopic, testMessage)
	require.Error(t, err)
}

func TestFailingSubscribe(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Subscribe("", "http://127.0.0.1:8080", "")
	require.Error(t, err)

	_, err = svc.Subscribe(withdrawalTopic, "not an endpoint", "")
	require.Error(t, err)

	_, err = pubsub.NewService(nil, 0)
	require.ErrorIs(t, err, pubsub.ErrMissingStore)
}
