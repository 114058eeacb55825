package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	httpinterface "github.com/tdex-network/tdex-pooling/internal/interfaces/http"
)

type recordedRequest struct {
	method  string
	uri     string
	auth    string
	account string
	body    map[string]interface{}
}

type fakeDaemon struct {
	*httptest.Server
	lock     sync.Mutex
	requests []recordedRequest
}

func newFakeDaemon(t *testing.T) *fakeDaemon {
	d := &fakeDaemon{}
	d.Server = httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			req := recordedRequest{
				method:  r.Method,
				uri:     r.URL.RequestURI(),
				auth:    r.Header.Get("Authorization"),
				account: r.Header.Get(httpinterface.AccountHeader),
			}
			_ = json.NewDecoder(r.Body).Decode(&req.body)
			d.lock.Lock()
			d.requests = append(d.requests, req)
			d.lock.Unlock()

			w.Header().Set("Content-Type", "application/json")
			if r.URL.Path == "/v1/pools/unknown" {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"error":"pool not found"}`))
				return
			}
			if r.Method == http.MethodDelete {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			w.Write([]byte(`{}`))
		},
	))
	t.Cleanup(d.Close)
	return d
}

func (d *fakeDaemon) lastRequest() recordedRequest {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.requests[len(d.requests)-1]
}

func withTempState(t *testing.T) {
	prevDir, prevPath := poolingDataDir, statePath
	poolingDataDir = t.TempDir()
	statePath = filepath.Join(poolingDataDir, "state.json")
	t.Cleanup(func() {
		poolingDataDir, statePath = prevDir, prevPath
	})
}

func run(args ...string) error {
	return newApp().Run(append([]string{"pooling"}, args...))
}

func TestState(t *testing.T) {
	withTempState(t)

	_, err := getState()
	require.Error(t, err)

	require.NoError(t, setState(map[string]string{"rpcserver": "http://localhost:9090"}))
	require.NoError(t, setState(map[string]string{"pool": "p1"}))

	state, err := getState()
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"rpcserver": "http://localhost:9090",
		"pool":      "p1",
	}, state)
}

func TestParseShares(t *testing.T) {
	shares, err := parseShares([]string{"30", "70"})
	require.NoError(t, err)
	require.Equal(t, []uint32{30, 70}, shares)

	_, err = parseShares([]string{"30", "-1"})
	require.Error(t, err)

	_, err = parseShares([]string{"abc"})
	require.Error(t, err)
}

func TestCommands(t *testing.T) {
	withTempState(t)
	daemon := newFakeDaemon(t)

	require.NoError(t, run(
		"config", "init", "--rpcserver", daemon.URL, "--token", "tok",
		"--account", "alice",
	))
	require.NoError(t, run("config", "set", "pool", "p1"))

	tests := []struct {
		args           []string
		expectedMethod string
		expectedURI    string
	}{
		{[]string{"listpools"}, http.MethodGet, "/v1/pools"},
		{[]string{"pool"}, http.MethodGet, "/v1/pools/p1"},
		{[]string{"pool", "--pool", "p2"}, http.MethodGet, "/v1/pools/p2"},
		{
			[]string{"share"},
			http.MethodGet, "/v1/pools/p1/participants/alice/share",
		},
		{
			[]string{"deposited", "--asset", "usdt"},
			http.MethodGet, "/v1/pools/p1/assets/usdt/deposited",
		},
		{
			[]string{"claimable", "--asset", "usdt", "--account", "bob"},
			http.MethodGet, "/v1/pools/p1/assets/usdt/claimable/bob",
		},
		{
			[]string{"withdrawn", "--asset", "usdt"},
			http.MethodGet, "/v1/pools/p1/assets/usdt/withdrawn/alice",
		},
		{
			[]string{"withdraw", "--asset", "usdt"},
			http.MethodPost, "/v1/pools/p1/assets/usdt/withdraw",
		},
		{
			[]string{"listwithdrawals", "--account", "bob", "--page", "2", "--size", "10"},
			http.MethodGet, "/v1/pools/p1/withdrawals?account=bob&page=2&size=10",
		},
		{
			[]string{"listwebhooks", "--event", "WITHDRAWAL"},
			http.MethodGet, "/v1/webhooks?event=WITHDRAWAL",
		},
		{
			[]string{"removewebhook", "--id", "w1"},
			http.MethodDelete, "/v1/webhooks/w1",
		},
	}

	for _, tt := range tests {
		require.NoError(t, run(tt.args...), tt.args)

		req := daemon.lastRequest()
		require.Equal(t, tt.expectedMethod, req.method, tt.args)
		require.Equal(t, tt.expectedURI, req.uri, tt.args)
		require.Equal(t, "Bearer tok", req.auth)
		require.Equal(t, "alice", req.account)
	}

	require.NoError(t, run(
		"createpool", "--custody", "vault", "--participant", "alice",
		"--participant", "bob", "--share", "40", "--share", "60",
	))
	req := daemon.lastRequest()
	require.Equal(t, "/v1/pools", req.uri)
	require.Equal(t, "vault", req.body["custody_account"])
	require.Equal(t, []interface{}{"alice", "bob"}, req.body["participants"])
	require.Equal(t, []interface{}{float64(40), float64(60)}, req.body["shares"])

	require.NoError(t, run("deposit", "--asset", "usdt", "--amount", "1000"))
	req = daemon.lastRequest()
	require.Equal(t, "/v1/custody/deposit", req.uri)
	require.Equal(t, "1000", req.body["amount"])
	require.Equal(t, "p1", req.body["pool_id"])

	require.NoError(t, run(
		"addwebhook", "--endpoint", "http://127.0.0.1:8000/hook", "--secret", "s",
	))
	req = daemon.lastRequest()
	require.Equal(t, "WITHDRAWAL", req.body["event"])

	err := run("pool", "--pool", "unknown")
	require.Error(t, err)
	require.Contains(t, err.Error(), "pool not found")
}

func TestGenToken(t *testing.T) {
	withTempState(t)

	require.NoError(t, run(
		"gentoken", "--secret", "secret", "--account", "alice",
		"--role", httpinterface.RoleOperator, "--save",
	))

	state, err := getState()
	require.NoError(t, err)
	require.Equal(t, "alice", state["account"])
	require.NotEmpty(t, state["token"])

	require.Error(t, run(
		"gentoken", "--secret", "secret", "--account", "alice", "--role", "admin",
	))
}
