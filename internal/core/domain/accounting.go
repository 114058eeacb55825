package domain

import (
	"github.com/tdex-network/tdex-pooling/pkg/mathutil"
)

// TotalDeposited returns the amount of asset ever deposited into the pool,
// given the current balance of its custody account. Everything that ever left
// the custody account did so through a withdrawal recorded in the ledger, so
// the withdrawn amounts are added back to the observed balance.
func (p *Pool) TotalDeposited(
	ledger *AssetLedger, custodyBalance uint64,
) (uint64, error) {
	total, ok := mathutil.SafeAdd(custodyBalance, ledger.TotalWithdrawn())
	if !ok {
		return 0, ErrAmountOverflow
	}
	return total, nil
}

// Entitlement returns the share of totalDeposited the account is entitled to,
// including what it already withdrew.
func (p *Pool) Entitlement(account string, totalDeposited uint64) uint64 {
	return mathutil.PercentageOf(totalDeposited, p.ShareOf(account))
}

// Claimable returns the amount of asset the given account can withdraw at the
// moment. Non participants can never claim anything.
func (p *Pool) Claimable(
	ledger *AssetLedger, custodyBalance uint64, account string,
) (uint64, error) {
	totalDeposited, err := p.TotalDeposited(ledger, custodyBalance)
	if err != nil {
		return 0, err
	}
	entitlement := p.Entitlement(account, totalDeposited)
	return mathutil.Saturating(
		mathutil.Sub(entitlement, ledger.AlreadyWithdrawn(account)),
	), nil
}

// DueAmount returns the amount to transfer to the given account for a
// withdrawal. It fails if the account is not a participant or if nothing is
// due.
func (p *Pool) DueAmount(
	ledger *AssetLedger, custodyBalance uint64, account string,
) (uint64, error) {
	if !p.IsParticipant(account) {
		return 0, ErrNotAParticipant
	}
	amount, err := p.Claimable(ledger, custodyBalance, account)
	if err != nil {
		return 0, err
	}
	if amount == 0 {
		return 0, ErrNothingDue
	}
	return amount, nil
}
