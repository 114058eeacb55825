package domain

import "context"

// LedgerRepository is the abstraction for any kind of database intended to
// persist the AssetLedgers of pools.
type LedgerRepository interface {
	// GetLedger returns the ledger of the given asset for the given pool. An
	// empty ledger is returned if none was stored yet.
	GetLedger(ctx context.Context, poolID, asset string) (*AssetLedger, error)
	// GetLedgersForPool returns all the ledgers stored for the given pool.
	GetLedgersForPool(ctx context.Context, poolID string) ([]AssetLedger, error)
	// UpdateLedger updates the ledger of the given asset for the given pool,
	// creating it if missing. The closure function let's to commit changes in a
	// transactional way: nothing is stored if it returns an error.
	UpdateLedger(
		ctx context.Context, poolID, asset string,
		updateFn func(l *AssetLedger) (*AssetLedger, error),
	) error
}
