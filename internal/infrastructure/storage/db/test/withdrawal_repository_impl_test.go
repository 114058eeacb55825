package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-pooling/internal/core/domain"
)

func TestWithdrawalRepositoryImplementations(t *testing.T) {
	for _, repo := range createRepoManagers(t) {
		repo := repo

		t.Run(repo.Name, func(t *testing.T) {
			t.Run("add_and_list_withdrawals", func(t *testing.T) {
				testAddAndListWithdrawals(t, repo)
			})
			t.Run("duplicate_withdrawal", func(t *testing.T) {
				testWithdrawalDuplicateKeyInsertion(t, repo)
			})
		})
	}
}

func testAddAndListWithdrawals(t *testing.T, repo repoManager) {
	ctx := context.Background()
	withdrawalRepo := repo.WithdrawalRepository()
	poolID, asset := randomAccount(), randomAsset()
	accounts := []string{randomAccount(), randomAccount()}

	for i := 0; i < 50; i++ {
		w := domain.NewWithdrawal(
			poolID, asset, accounts[i%2], uint64(i+1), 1000, randomAsset(),
			int64(1700000000+i),
		)
		err := withdrawalRepo.AddWithdrawal(ctx, w)
		require.NoError(t, err)
	}

	withdrawals, err := withdrawalRepo.GetWithdrawalsForPool(ctx, poolID, nil)
	require.NoError(t, err)
	require.Len(t, withdrawals, 50)
	require.Equal(t, int64(1700000049), withdrawals[0].Timestamp)
	require.Equal(t, int64(1700000000), withdrawals[49].Timestamp)

	page := domain.NewPage(2, 10)
	withdrawals, err = withdrawalRepo.GetWithdrawalsForPool(ctx, poolID, &page)
	require.NoError(t, err)
	require.Len(t, withdrawals, 10)
	require.Equal(t, int64(1700000039), withdrawals[0].Timestamp)

	page = domain.NewPage(6, 10)
	withdrawals, err = withdrawalRepo.GetWithdrawalsForPool(ctx, poolID, &page)
	require.NoError(t, err)
	require.Empty(t, withdrawals)

	withdrawals, err = withdrawalRepo.GetWithdrawalsForAccount(
		ctx, poolID, accounts[0], nil,
	)
	require.NoError(t, err)
	require.Len(t, withdrawals, 25)
	for _, w := range withdrawals {
		require.Equal(t, accounts[0], w.Account)
	}

	page = domain.NewPage(3, 10)
	withdrawals, err = withdrawalRepo.GetWithdrawalsForAccount(
		ctx, poolID, accounts[1], &page,
	)
	require.NoError(t, err)
	require.Len(t, withdrawals, 5)

	withdrawals, err = withdrawalRepo.GetWithdrawalsForPool(
		ctx, randomAccount(), nil,
	)
	require.NoError(t, err)
	require.Empty(t, withdrawals)
}

func testWithdrawalDuplicateKeyInsertion(t *testing.T, repo repoManager) {
	ctx := context.Background()
	withdrawalRepo := repo.WithdrawalRepository()
	poolID, asset, account := randomAccount(), randomAsset(), randomAccount()

	w := domain.NewWithdrawal(poolID, asset, account, 20, 100, "ref", 1700000000)
	err := withdrawalRepo.AddWithdrawal(ctx, w)
	require.NoError(t, err)

	dup := w
	dup.Amount = 40
	err = withdrawalRepo.AddWithdrawal(ctx, dup)
	require.NoError(t, err)

	withdrawals, err := withdrawalRepo.GetWithdrawalsForPool(ctx, poolID, nil)
	require.NoError(t, err)
	// first inserted is not updated
	require.Len(t, withdrawals, 1)
	require.Equal(t, uint64(20), withdrawals[0].Amount)
}
