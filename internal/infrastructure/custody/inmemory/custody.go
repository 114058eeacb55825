package inmemory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/tdex-network/tdex-pooling/internal/core/ports"
	"github.com/tdex-network/tdex-pooling/pkg/mathutil"
)

var (
	// ErrMissingAsset ...
	ErrMissingAsset = errors.New("missing asset")
	// ErrMissingAccount ...
	ErrMissingAccount = errors.New("missing account")
	// ErrZeroAmount ...
	ErrZeroAmount = errors.New("amount must be greater than 0")
	// ErrInsufficientBalance ...
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrBalanceOverflow ...
	ErrBalanceOverflow = errors.New("balance overflows")
	// ErrCustodyClosed ...
	ErrCustodyClosed = errors.New("custody is closed")
)

// Custody is an in-process token ledger. It holds balances per asset per
// owner and lets anyone mint new tokens through Deposit.
type Custody struct {
	lock     *sync.RWMutex
	balances map[string]map[string]uint64
	closed   bool
}

// NewCustody returns an empty in memory custody.
func NewCustody() *Custody {
	return &Custody{
		lock:     &sync.RWMutex{},
		balances: make(map[string]map[string]uint64),
	}
}

var (
	_ ports.Custody = (*Custody)(nil)
	_ ports.Faucet  = (*Custody)(nil)
)

func (c *Custody) BalanceOf(
	_ context.Context, asset, owner string,
) (uint64, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if c.closed {
		return 0, ErrCustodyClosed
	}
	return c.balances[asset][owner], nil
}

func (c *Custody) Transfer(
	_ context.Context, asset, from, to string, amount uint64,
) (string, error) {
	if err := validateArgs(asset, to, amount); err != nil {
		return "", err
	}
	if from == "" {
		return "", ErrMissingAccount
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	if c.closed {
		return "", ErrCustodyClosed
	}

	balances := c.balances[asset]
	if balances[from] < amount {
		return "", fmt.Errorf(
			"%w: %s owns %d, requested %d",
			ErrInsufficientBalance, from, balances[from], amount,
		)
	}
	if from == to {
		return uuid.New().String(), nil
	}

	newBalance, ok := mathutil.SafeAdd(balances[to], amount)
	if !ok {
		return "", ErrBalanceOverflow
	}
	balances[from] -= amount
	balances[to] = newBalance

	return uuid.New().String(), nil
}

// Deposit credits amount of asset to the given account.
func (c *Custody) Deposit(
	_ context.Context, asset, to string, amount uint64,
) (string, error) {
	if err := validateArgs(asset, to, amount); err != nil {
		return "", err
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	if c.closed {
		return "", ErrCustodyClosed
	}

	if _, ok := c.balances[asset]; !ok {
		c.balances[asset] = make(map[string]uint64)
	}
	newBalance, ok := mathutil.SafeAdd(c.balances[asset][to], amount)
	if !ok {
		return "", ErrBalanceOverflow
	}
	c.balances[asset][to] = newBalance

	return uuid.New().String(), nil
}

func (c *Custody) Close() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.closed = true
}

func validateArgs(asset, to string, amount uint64) error {
	if asset == "" {
		return ErrMissingAsset
	}
	if to == "" {
		return ErrMissingAccount
	}
	if amount == 0 {
		return ErrZeroAmount
	}
	return nil
}
