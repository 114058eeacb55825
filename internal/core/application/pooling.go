package application

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/tdex-network/tdex-pooling/internal/core/application/pooling"
	"github.com/tdex-network/tdex-pooling/internal/core/domain"
	"github.com/tdex-network/tdex-pooling/internal/core/ports"
)

type (
	PoolInfo          = pooling.PoolInfo
	AssetInfo         = pooling.AssetInfo
	WithdrawalHandler = pooling.WithdrawalHandler
)

type PoolingService interface {
	// Pools
	CreatePool(
		ctx context.Context,
		custodyAccount string, participants []string, shares []uint32,
	) (*domain.Pool, error)
	GetPool(ctx context.Context, poolID string) (*PoolInfo, error)
	ListPools(ctx context.Context) ([]domain.Pool, error)

	// Queries
	ParticipantShare(ctx context.Context, poolID, account string) (uint32, error)
	TotalDeposited(ctx context.Context, poolID, asset string) (uint64, error)
	Claimable(ctx context.Context, poolID, asset, account string) (uint64, error)
	AlreadyWithdrawn(
		ctx context.Context, poolID, asset, account string,
	) (uint64, error)

	// Withdrawals
	Withdraw(
		ctx context.Context, poolID, asset, caller string,
	) (*domain.Withdrawal, error)
	ListWithdrawals(
		ctx context.Context, poolID string, page *domain.Page,
	) ([]domain.Withdrawal, error)
	ListWithdrawalsForAccount(
		ctx context.Context, poolID, account string, page *domain.Page,
	) ([]domain.Withdrawal, error)
	RegisterHandlerForWithdrawal(handler WithdrawalHandler)

	// Dev custody faucet
	Deposit(
		ctx context.Context, poolID, asset string, amount uint64,
	) (string, error)

	Close()
}

func NewPoolingService(
	repoManager ports.RepoManager, custody ports.Custody,
	pubsubSvc PubSubService, clock clockwork.Clock,
) (PoolingService, error) {
	svc, err := pooling.NewService(repoManager, custody, clock)
	if err != nil {
		return nil, err
	}

	if pubsubSvc != nil {
		svc.RegisterHandlerForWithdrawal(publishWithdrawal(pubsubSvc))
	}
	return svc, nil
}
