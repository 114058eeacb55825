package db_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-pooling/internal/core/domain"
	"github.com/tdex-network/tdex-pooling/internal/core/ports"
	dbbadger "github.com/tdex-network/tdex-pooling/internal/infrastructure/storage/db/badger"
	"github.com/tdex-network/tdex-pooling/internal/infrastructure/storage/db/inmemory"
	"github.com/thanhpk/randstr"
)

type repoManager struct {
	Name string
	ports.RepoManager
}

func createRepoManagers(t *testing.T) []repoManager {
	badgerDBManager, err := dbbadger.NewRepoManager("", nil)
	require.NoError(t, err)
	t.Cleanup(badgerDBManager.Close)

	return []repoManager{
		{Name: "badger", RepoManager: badgerDBManager},
		{Name: "inmemory", RepoManager: inmemory.NewRepoManager()},
	}
}

func makeRandomPool(t *testing.T) *domain.Pool {
	pool, err := domain.NewPool(
		randomAccount(),
		[]string{randomAccount(), randomAccount(), randomAccount()},
		[]uint32{50, 30, 20},
	)
	require.NoError(t, err)
	return pool
}

func randomAccount() string {
	return "0x" + randstr.Hex(20)
}

func randomAsset() string {
	return "0x" + randstr.Hex(20)
}
