package pooling

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-pooling/internal/core/domain"
	"github.com/tdex-network/tdex-pooling/internal/core/ports"
)

type Service struct {
	repoManager ports.RepoManager
	custody     ports.Custody
	clock       clockwork.Clock
	locker      *locker

	handlersLock *sync.RWMutex
	handlers     []WithdrawalHandler
}

func NewService(
	repoManager ports.RepoManager, custody ports.Custody, clock clockwork.Clock,
) (*Service, error) {
	if repoManager == nil {
		return nil, fmt.Errorf("missing repo manager")
	}
	if custody == nil {
		return nil, fmt.Errorf("missing custody")
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{
		repoManager:  repoManager,
		custody:      custody,
		clock:        clock,
		locker:       newLocker(),
		handlersLock: &sync.RWMutex{},
	}, nil
}

// RegisterHandlerForWithdrawal adds a handler invoked in its own goroutine
// after every successful withdrawal.
func (s *Service) RegisterHandlerForWithdrawal(handler WithdrawalHandler) {
	s.handlersLock.Lock()
	defer s.handlersLock.Unlock()

	s.handlers = append(s.handlers, handler)
}

func (s *Service) CreatePool(
	ctx context.Context,
	custodyAccount string, participants []string, shares []uint32,
) (*domain.Pool, error) {
	pool, err := domain.NewPool(custodyAccount, participants, shares)
	if err != nil {
		return nil, err
	}
	pool.CreatedAt = s.clock.Now().Unix()

	if err := s.repoManager.PoolRepository().AddPool(ctx, pool); err != nil {
		return nil, err
	}

	log.Infof(
		"created pool %s with %d participants", pool.ID, len(pool.Participants),
	)
	return pool, nil
}

func (s *Service) GetPool(ctx context.Context, poolID string) (*PoolInfo, error) {
	pool, err := s.repoManager.PoolRepository().GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}

	ledgers, err := s.repoManager.LedgerRepository().GetLedgersForPool(ctx, poolID)
	if err != nil {
		return nil, err
	}

	assets := make([]AssetInfo, 0, len(ledgers))
	for i := range ledgers {
		ledger := &ledgers[i]
		info, err := s.assetInfo(ctx, pool, ledger.Asset)
		if err != nil {
			return nil, err
		}
		assets = append(assets, *info)
	}

	return &PoolInfo{*pool, assets}, nil
}

func (s *Service) ListPools(ctx context.Context) ([]domain.Pool, error) {
	return s.repoManager.PoolRepository().GetAllPools(ctx)
}

func (s *Service) ParticipantShare(
	ctx context.Context, poolID, account string,
) (uint32, error) {
	pool, err := s.repoManager.PoolRepository().GetPool(ctx, poolID)
	if err != nil {
		return 0, err
	}
	return pool.ShareOf(account), nil
}

func (s *Service) TotalDeposited(
	ctx context.Context, poolID, asset string,
) (uint64, error) {
	pool, err := s.getPoolForAsset(ctx, poolID, asset)
	if err != nil {
		return 0, err
	}

	info, err := s.assetInfo(ctx, pool, asset)
	if err != nil {
		return 0, err
	}
	return info.TotalDeposited, nil
}

func (s *Service) Claimable(
	ctx context.Context, poolID, asset, account string,
) (uint64, error) {
	pool, err := s.getPoolForAsset(ctx, poolID, asset)
	if err != nil {
		return 0, err
	}

	mtx := s.locker.get(poolID, asset)
	mtx.RLock()
	defer mtx.RUnlock()

	ledger, balance, err := s.snapshot(ctx, pool, asset)
	if err != nil {
		return 0, err
	}
	return pool.Claimable(ledger, balance, account)
}

func (s *Service) AlreadyWithdrawn(
	ctx context.Context, poolID, asset, account string,
) (uint64, error) {
	if _, err := s.getPoolForAsset(ctx, poolID, asset); err != nil {
		return 0, err
	}

	mtx := s.locker.get(poolID, asset)
	mtx.RLock()
	defer mtx.RUnlock()

	ledger, err := s.repoManager.LedgerRepository().GetLedger(ctx, poolID, asset)
	if err != nil {
		return 0, err
	}
	return ledger.AlreadyWithdrawn(account), nil
}

// Withdraw transfers everything the caller can claim of the given asset from
// the pool custody account to the caller. The withdrawn counter is updated
// only if the transfer succeeds.
func (s *Service) Withdraw(
	ctx context.Context, poolID, asset, caller string,
) (*domain.Withdrawal, error) {
	pool, err := s.getPoolForAsset(ctx, poolID, asset)
	if err != nil {
		return nil, err
	}

	mtx := s.locker.get(poolID, asset)
	mtx.Lock()
	defer mtx.Unlock()

	ledger, balance, err := s.snapshot(ctx, pool, asset)
	if err != nil {
		withdrawalFailuresCounter.WithLabelValues(failureOther).Inc()
		return nil, err
	}

	totalDeposited, err := pool.TotalDeposited(ledger, balance)
	if err != nil {
		withdrawalFailuresCounter.WithLabelValues(failureOther).Inc()
		return nil, err
	}

	amount, err := pool.DueAmount(ledger, balance, caller)
	if err != nil {
		withdrawalFailuresCounter.WithLabelValues(failureReason(err)).Inc()
		return nil, err
	}

	ref, err := s.custody.Transfer(ctx, asset, pool.CustodyAccount, caller, amount)
	if err != nil {
		withdrawalFailuresCounter.WithLabelValues(failureTransfer).Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
	}

	// Funds have left custody, what follows must not be interrupted by the
	// caller going away.
	ctx = context.WithoutCancel(ctx)

	if err := s.repoManager.LedgerRepository().UpdateLedger(
		ctx, poolID, asset,
		func(l *domain.AssetLedger) (*domain.AssetLedger, error) {
			l.RecordWithdrawal(caller, amount)
			return l, nil
		},
	); err != nil {
		log.WithError(err).Errorf(
			"transferred %d of asset %s to %s (ref %s) but failed to record "+
				"withdrawal for pool %s",
			amount, asset, caller, ref, poolID,
		)
		return nil, fmt.Errorf("failed to record withdrawal: %w", err)
	}

	withdrawal := domain.NewWithdrawal(
		poolID, asset, caller, amount, totalDeposited, ref, s.clock.Now().Unix(),
	)
	if err := s.repoManager.WithdrawalRepository().AddWithdrawal(
		ctx, withdrawal,
	); err != nil {
		log.WithError(err).Warnf(
			"failed to add withdrawal %s to history", withdrawal.ID,
		)
	}

	withdrawalsCounter.WithLabelValues(asset).Inc()
	withdrawnAmountCounter.WithLabelValues(asset).Add(float64(amount))

	log.Debugf(
		"withdrawn %d of asset %s from pool %s to %s", amount, asset, poolID, caller,
	)

	s.notifyWithdrawal(withdrawal)

	return &withdrawal, nil
}

func (s *Service) ListWithdrawals(
	ctx context.Context, poolID string, page *domain.Page,
) ([]domain.Withdrawal, error) {
	if _, err := s.repoManager.PoolRepository().GetPool(ctx, poolID); err != nil {
		return nil, err
	}
	return s.repoManager.WithdrawalRepository().GetWithdrawalsForPool(
		ctx, poolID, page,
	)
}

func (s *Service) ListWithdrawalsForAccount(
	ctx context.Context, poolID, account string, page *domain.Page,
) ([]domain.Withdrawal, error) {
	if _, err := s.repoManager.PoolRepository().GetPool(ctx, poolID); err != nil {
		return nil, err
	}
	return s.repoManager.WithdrawalRepository().GetWithdrawalsForAccount(
		ctx, poolID, account, page,
	)
}

// Deposit credits amount of asset to the custody account of the pool. Only
// custodies acting as a faucet support it.
func (s *Service) Deposit(
	ctx context.Context, poolID, asset string, amount uint64,
) (string, error) {
	faucet, ok := s.custody.(ports.Faucet)
	if !ok {
		return "", ErrDepositNotSupported
	}
	if amount == 0 {
		return "", ErrZeroDepositAmount
	}

	pool, err := s.getPoolForAsset(ctx, poolID, asset)
	if err != nil {
		return "", err
	}

	mtx := s.locker.get(poolID, asset)
	mtx.Lock()
	defer mtx.Unlock()

	return faucet.Deposit(ctx, asset, pool.CustodyAccount, amount)
}

func (s *Service) Close() {
	s.custody.Close()
	s.repoManager.Close()
}

func (s *Service) getPoolForAsset(
	ctx context.Context, poolID, asset string,
) (*domain.Pool, error) {
	if asset == "" {
		return nil, domain.ErrMissingAsset
	}
	return s.repoManager.PoolRepository().GetPool(ctx, poolID)
}

// snapshot must be called while holding the lock for (pool, asset).
func (s *Service) snapshot(
	ctx context.Context, pool *domain.Pool, asset string,
) (*domain.AssetLedger, uint64, error) {
	ledger, err := s.repoManager.LedgerRepository().GetLedger(ctx, pool.ID, asset)
	if err != nil {
		return nil, 0, err
	}

	balance, err := s.custody.BalanceOf(ctx, asset, pool.CustodyAccount)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch custody balance: %w", err)
	}
	return ledger, balance, nil
}

func (s *Service) assetInfo(
	ctx context.Context, pool *domain.Pool, asset string,
) (*AssetInfo, error) {
	mtx := s.locker.get(pool.ID, asset)
	mtx.RLock()
	defer mtx.RUnlock()

	ledger, balance, err := s.snapshot(ctx, pool, asset)
	if err != nil {
		return nil, err
	}
	total, err := pool.TotalDeposited(ledger, balance)
	if err != nil {
		return nil, err
	}
	return &AssetInfo{
		Asset:          asset,
		TotalDeposited: total,
		TotalWithdrawn: ledger.TotalWithdrawn(),
		Balance:        balance,
	}, nil
}

func (s *Service) notifyWithdrawal(withdrawal domain.Withdrawal) {
	s.handlersLock.RLock()
	defer s.handlersLock.RUnlock()

	for _, handler := range s.handlers {
		go handler(withdrawal)
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotAParticipant):
		return failureNotAParticipant
	case errors.Is(err, domain.ErrNothingDue):
		return failureNothingDue
	default:
		return failureOther
	}
}
