package ports

import "context"

// Custody is the external store of value controlled by the pools. Deposits
// into a pool are plain transfers to its custody account made outside of the
// daemon.
type Custody interface {
	// BalanceOf returns the amount of asset owned by the given account.
	BalanceOf(ctx context.Context, asset, owner string) (uint64, error)
	// Transfer moves amount of asset from an account to another and returns a
	// reference to the transfer.
	Transfer(
		ctx context.Context, asset, from, to string, amount uint64,
	) (string, error)
	Close()
}

// Faucet is implemented by custodies that let the daemon credit accounts
// directly. Only development custodies are expected to implement it.
type Faucet interface {
	Deposit(ctx context.Context, asset, to string, amount uint64) (string, error)
}
