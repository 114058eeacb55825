package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"github.com/tdex-network/tdex-pooling/internal/core/ports"
	"github.com/tdex-network/tdex-pooling/pkg/circuitbreaker"
	"github.com/tdex-network/tdex-pooling/pkg/mathutil"
	"github.com/tdex-network/tdex-pooling/pkg/util"
	"go.uber.org/ratelimit"
)

const (
	// DefaultRequestsPerSecond ...
	DefaultRequestsPerSecond = 50
	// DefaultTimeout ...
	DefaultTimeout = 15 * time.Second
)

var (
	// ErrMissingAddress ...
	ErrMissingAddress = errors.New("missing custody service address")
	// ErrInvalidBalance ...
	ErrInvalidBalance = errors.New("custody service returned an invalid balance")
	// ErrMissingTransferRef ...
	ErrMissingTransferRef = errors.New(
		"custody service returned an empty transfer reference",
	)
)

type balanceResponse struct {
	Balance string `json:"balance"`
}

type transferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

type transferResponse struct {
	Ref string `json:"ref"`
}

type custody struct {
	addr    string
	client  *http.Client
	limiter ratelimit.Limiter
	cb      *gobreaker.CircuitBreaker
}

// NewCustody returns a ports.Custody backed by an external custody service
// reachable at addr. Requests are rate limited and guarded by a circuit
// breaker.
func NewCustody(
	addr string, requestsPerSecond int, timeout time.Duration,
) (ports.Custody, error) {
	addr = strings.TrimRight(addr, "/")
	if addr == "" {
		return nil, ErrMissingAddress
	}
	if _, err := url.ParseRequestURI(addr); err != nil {
		return nil, fmt.Errorf("invalid custody service address: %w", err)
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = DefaultRequestsPerSecond
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &custody{
		addr:    addr,
		client:  &http.Client{Timeout: timeout},
		limiter: ratelimit.New(requestsPerSecond),
		cb:      circuitbreaker.NewCircuitBreaker("custody"),
	}, nil
}

func (c *custody) BalanceOf(
	ctx context.Context, asset, owner string,
) (uint64, error) {
	endpoint := fmt.Sprintf(
		"%s/v1/assets/%s/balances/%s",
		c.addr, url.PathEscape(asset), url.PathEscape(owner),
	)

	resp, err := c.do(ctx, http.MethodGet, endpoint, nil, &balanceResponse{})
	if err != nil {
		return 0, err
	}

	balanceStr := resp.(*balanceResponse).Balance
	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidBalance, balanceStr)
	}
	amount, ok := mathutil.ToUint64(balance)
	if !ok || !balance.IsInteger() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidBalance, balanceStr)
	}
	return amount, nil
}

func (c *custody) Transfer(
	ctx context.Context, asset, from, to string, amount uint64,
) (string, error) {
	endpoint := fmt.Sprintf("%s/v1/assets/%s/transfers", c.addr, url.PathEscape(asset))
	body := transferRequest{
		From:   from,
		To:     to,
		Amount: mathutil.FromUint64(amount).String(),
	}

	resp, err := c.do(ctx, http.MethodPost, endpoint, body, &transferResponse{})
	if err != nil {
		return "", err
	}

	ref := resp.(*transferResponse).Ref
	if ref == "" {
		return "", ErrMissingTransferRef
	}
	return ref, nil
}

func (c *custody) Close() {
	c.client.CloseIdleConnections()
}

func (c *custody) do(
	ctx context.Context, method, endpoint string, in, out interface{},
) (interface{}, error) {
	c.limiter.Take()

	return c.cb.Execute(func() (interface{}, error) {
		if err := util.DoJSON(
			ctx, c.client, method, endpoint, nil, in, out,
		); err != nil {
			return nil, err
		}
		return out, nil
	})
}
