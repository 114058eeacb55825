package pooling

import "github.com/tdex-network/tdex-pooling/internal/core/domain"

// AssetInfo summarizes the accounting of an asset for a pool.
type AssetInfo struct {
	Asset          string
	TotalDeposited uint64
	TotalWithdrawn uint64
	Balance        uint64
}

// PoolInfo is a pool together with the assets that have been withdrawn from
// it at least once.
type PoolInfo struct {
	domain.Pool
	Assets []AssetInfo
}

// WithdrawalHandler is notified of every successful withdrawal.
type WithdrawalHandler func(domain.Withdrawal)
