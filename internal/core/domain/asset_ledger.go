package domain

import "fmt"

// AssetLedger tracks how much of a given asset every participant of a pool has
// withdrawn so far. Counters only grow, and only by successful withdrawals.
type AssetLedger struct {
	PoolID string
	Asset  string
	// Withdrawn amount by participant account.
	Withdrawn map[string]uint64
}

// NewAssetLedger returns an empty ledger for the given pool and asset.
func NewAssetLedger(poolID, asset string) *AssetLedger {
	return &AssetLedger{
		PoolID:    poolID,
		Asset:     asset,
		Withdrawn: make(map[string]uint64),
	}
}

// Key uniquely identifies the ledger of an asset within a pool.
func (l *AssetLedger) Key() string {
	return LedgerKey(l.PoolID, l.Asset)
}

// LedgerKey ...
func LedgerKey(poolID, asset string) string {
	return fmt.Sprintf("%s:%s", poolID, asset)
}

// AlreadyWithdrawn returns the total amount withdrawn by the given account.
func (l *AssetLedger) AlreadyWithdrawn(account string) uint64 {
	if l == nil || l.Withdrawn == nil {
		return 0
	}
	return l.Withdrawn[account]
}

// TotalWithdrawn returns the sum of the amounts withdrawn by all accounts.
func (l *AssetLedger) TotalWithdrawn() uint64 {
	if l == nil {
		return 0
	}
	var total uint64
	for _, amount := range l.Withdrawn {
		total += amount
	}
	return total
}

// RecordWithdrawal adds amount to the counter of the given account.
func (l *AssetLedger) RecordWithdrawal(account string, amount uint64) {
	if l.Withdrawn == nil {
		l.Withdrawn = make(map[string]uint64)
	}
	l.Withdrawn[account] += amount
}

// Copy returns a deep copy of the ledger.
func (l *AssetLedger) Copy() *AssetLedger {
	cp := NewAssetLedger(l.PoolID, l.Asset)
	for account, amount := range l.Withdrawn {
		cp.Withdrawn[account] = amount
	}
	return cp
}
