package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-pooling/internal/core/domain"
)

func TestPoolRepositoryImplementations(t *testing.T) {
	for _, repo := range createRepoManagers(t) {
		repo := repo

		t.Run(repo.Name, func(t *testing.T) {
			t.Run("add_and_get_pool", func(t *testing.T) {
				testAddAndGetPool(t, repo)
			})
			t.Run("duplicate_pool", func(t *testing.T) {
				testAddDuplicatePool(t, repo)
			})
			t.Run("custody_account_in_use", func(t *testing.T) {
				testAddPoolWithCustodyInUse(t, repo)
			})
			t.Run("pool_not_found", func(t *testing.T) {
				_, err := repo.PoolRepository().GetPool(
					context.Background(), "unknown",
				)
				require.ErrorIs(t, err, domain.ErrPoolNotFound)
			})
		})
	}
}

func testAddAndGetPool(t *testing.T, repo repoManager) {
	ctx := context.Background()
	poolRepo := repo.PoolRepository()

	pools, err := poolRepo.GetAllPools(ctx)
	require.NoError(t, err)
	count := len(pools)

	pool := makeRandomPool(t)
	err = poolRepo.AddPool(ctx, pool)
	require.NoError(t, err)

	gotPool, err := poolRepo.GetPool(ctx, pool.ID)
	require.NoError(t, err)
	require.NotNil(t, gotPool)
	require.Equal(t, *pool, *gotPool)

	pools, err = poolRepo.GetAllPools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, count+1)
}

func testAddDuplicatePool(t *testing.T, repo repoManager) {
	ctx := context.Background()
	poolRepo := repo.PoolRepository()

	pool := makeRandomPool(t)
	err := poolRepo.AddPool(ctx, pool)
	require.NoError(t, err)

	clone := *pool
	clone.CustodyAccount = randomAccount()
	err = poolRepo.AddPool(ctx, &clone)
	require.ErrorIs(t, err, domain.ErrPoolAlreadyExists)

	gotPool, err := poolRepo.GetPool(ctx, pool.ID)
	require.NoError(t, err)
	require.Equal(t, pool.CustodyAccount, gotPool.CustodyAccount)
}

func testAddPoolWithCustodyInUse(t *testing.T, repo repoManager) {
	ctx := context.Background()
	poolRepo := repo.PoolRepository()

	pool := makeRandomPool(t)
	err := poolRepo.AddPool(ctx, pool)
	require.NoError(t, err)

	other, err := domain.NewPool(
		pool.CustodyAccount,
		[]string{randomAccount(), randomAccount()},
		[]uint32{50, 50},
	)
	require.NoError(t, err)

	err = poolRepo.AddPool(ctx, other)
	require.ErrorIs(t, err, domain.ErrCustodyAccountInUse)

	_, err = poolRepo.GetPool(ctx, other.ID)
	require.ErrorIs(t, err, domain.ErrPoolNotFound)
}
