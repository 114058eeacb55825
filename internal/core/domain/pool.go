package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is an account holding a fixed percentage of everything ever
// deposited into a pool.
type Participant struct {
	Account string
	Share   uint32
}

// Pool defines the entity data structure holding the share table of a pooling
// account. A Pool is immutable once created.
type Pool struct {
	ID string
	// Account owning the pooled funds at the custody.
	CustodyAccount string
	// Ordered list of participants, as given at creation.
	Participants []Participant
	CreatedAt    int64
}

// NewPool validates the given participant and share lists and returns a new
// Pool. Nothing is returned if any of the checks fails.
func NewPool(
	custodyAccount string, participants []string, shares []uint32,
) (*Pool, error) {
	if len(participants) != len(shares) {
		return nil, ErrShareCountMismatch
	}
	for _, share := range shares {
		if share < MinShare {
			return nil, ErrZeroShare
		}
	}

	seen := make(map[string]struct{}, len(participants))
	list := make([]Participant, 0, len(participants))
	var total uint64
	for i, account := range participants {
		if account == "" || account == custodyAccount {
			return nil, ErrInvalidParticipant
		}
		if _, ok := seen[account]; ok {
			return nil, ErrDuplicateParticipant
		}
		seen[account] = struct{}{}
		total += uint64(shares[i])
		list = append(list, Participant{account, shares[i]})
	}
	if total != FullShare {
		return nil, ErrSharesNotFull
	}
	if custodyAccount == "" {
		return nil, ErrMissingCustodyAccount
	}

	return &Pool{
		ID:             uuid.New().String(),
		CustodyAccount: custodyAccount,
		Participants:   list,
		CreatedAt:      time.Now().Unix(),
	}, nil
}

// ShareOf returns the share of the given account, 0 if not a participant.
func (p *Pool) ShareOf(account string) uint32 {
	for _, pp := range p.Participants {
		if pp.Account == account {
			return pp.Share
		}
	}
	return 0
}

// IsParticipant returns whether the account holds a share of the pool.
func (p *Pool) IsParticipant(account string) bool {
	return p.ShareOf(account) > 0
}

// Accounts returns the ordered list of participant accounts.
func (p *Pool) Accounts() []string {
	accounts := make([]string, 0, len(p.Participants))
	for _, pp := range p.Participants {
		accounts = append(accounts, pp.Account)
	}
	return accounts
}
