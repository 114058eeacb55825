package domain

import (
	"github.com/google/uuid"
)

// Withdrawal holds info about funds paid out of a pool to a participant.
type Withdrawal struct {
	ID      string
	PoolID  string
	Asset   string
	Account string
	Amount  uint64
	// Amount of asset ever deposited into the pool at withdrawal time.
	TotalDeposited uint64
	// Reference returned by the custody for the transfer.
	TransferRef string
	Timestamp   int64
}

// NewWithdrawal returns a new Withdrawal with a random id.
func NewWithdrawal(
	poolID, asset, account string, amount, totalDeposited uint64,
	transferRef string, timestamp int64,
) Withdrawal {
	return Withdrawal{
		ID:             uuid.New().String(),
		PoolID:         poolID,
		Asset:          asset,
		Account:        account,
		Amount:         amount,
		TotalDeposited: totalDeposited,
		TransferRef:    transferRef,
		Timestamp:      timestamp,
	}
}
