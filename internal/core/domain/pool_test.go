package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-pooling/internal/core/domain"
)

const (
	custodyAccount = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

	accountA = "0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199"
	accountB = "0xdD2FD4581271e230360230F9337D5c0430Bf44C0"
	accountC = "0xbDA5747bFD65F08deb54cb465eB87D40e51B197E"
	accountD = "0x976EA74026E726554dB657fA54763abd0C3a0aa9"
)

var accounts = []string{accountA, accountB, accountC, accountD}

func TestNewPool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		shares []uint32
	}{
		{"uneven_shares", []uint32{30, 20, 15, 35}},
		{"even_shares", []uint32{25, 25, 25, 25}},
		{"one_dominant", []uint32{97, 1, 1, 1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pool, err := domain.NewPool(custodyAccount, accounts, tt.shares)
			require.NoError(t, err)
			require.NotNil(t, pool)
			require.NotEmpty(t, pool.ID)
			require.Equal(t, custodyAccount, pool.CustodyAccount)
			require.Equal(t, accounts, pool.Accounts())

			for i, account := range accounts {
				require.Equal(t, tt.shares[i], pool.ShareOf(account))
				require.True(t, pool.IsParticipant(account))
			}
		})
	}
}

func TestNewPoolSingleParticipant(t *testing.T) {
	t.Parallel()

	pool, err := domain.NewPool(custodyAccount, []string{accountA}, []uint32{100})
	require.NoError(t, err)
	require.Equal(t, uint32(100), pool.ShareOf(accountA))
}

func TestFailingNewPool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		custodyAccount string
		participants   []string
		shares         []uint32
		expectedError  error
	}{
		{
			name:           "mismatched_participants_and_shares",
			custodyAccount: custodyAccount,
			participants:   accounts,
			shares:         []uint32{20, 20, 60},
			expectedError:  domain.ErrShareCountMismatch,
		},
		{
			name:           "zero_share",
			custodyAccount: custodyAccount,
			participants:   accounts,
			shares:         []uint32{20, 20, 6, 0},
			expectedError:  domain.ErrZeroShare,
		},
		{
			name:           "zero_share_summing_to_100",
			custodyAccount: custodyAccount,
			participants:   accounts,
			shares:         []uint32{50, 25, 25, 0},
			expectedError:  domain.ErrZeroShare,
		},
		{
			name:           "shares_over_100",
			custodyAccount: custodyAccount,
			participants:   accounts,
			shares:         []uint32{100, 20, 6, 20},
			expectedError:  domain.ErrSharesNotFull,
		},
		{
			name:           "shares_under_100",
			custodyAccount: custodyAccount,
			participants:   accounts,
			shares:         []uint32{10, 20, 30, 39},
			expectedError:  domain.ErrSharesNotFull,
		},
		{
			name:           "shares_wrapping_around_uint32",
			custodyAccount: custodyAccount,
			participants:   []string{accountA, accountB},
			shares:         []uint32{4294967295, 101},
			expectedError:  domain.ErrSharesNotFull,
		},
		{
			name:           "no_participants",
			custodyAccount: custodyAccount,
			participants:   nil,
			shares:         nil,
			expectedError:  domain.ErrSharesNotFull,
		},
		{
			name:           "empty_participant",
			custodyAccount: custodyAccount,
			participants:   []string{accountA, ""},
			shares:         []uint32{50, 50},
			expectedError:  domain.ErrInvalidParticipant,
		},
		{
			name:           "participant_is_custody_account",
			custodyAccount: custodyAccount,
			participants:   []string{custodyAccount, accountB},
			shares:         []uint32{50, 50},
			expectedError:  domain.ErrInvalidParticipant,
		},
		{
			name:           "duplicate_participant",
			custodyAccount: custodyAccount,
			participants:   []string{accountA, accountB, accountA},
			shares:         []uint32{40, 30, 30},
			expectedError:  domain.ErrDuplicateParticipant,
		},
		{
			name:           "missing_custody_account",
			custodyAccount: "",
			participants:   accounts,
			shares:         []uint32{30, 20, 15, 35},
			expectedError:  domain.ErrMissingCustodyAccount,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pool, err := domain.NewPool(tt.custodyAccount, tt.participants, tt.shares)
			require.EqualError(t, err, tt.expectedError.Error())
			require.Nil(t, pool)
		})
	}
}

func TestShareOfNonParticipant(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t)
	require.Zero(t, pool.ShareOf("0x0000000000000000000000000000000000000000"))
	require.False(t, pool.IsParticipant("0x0000000000000000000000000000000000000000"))
}

func newTestPool(t *testing.T) *domain.Pool {
	pool, err := domain.NewPool(custodyAccount, accounts, []uint32{30, 20, 15, 35})
	require.NoError(t, err)
	return pool
}
