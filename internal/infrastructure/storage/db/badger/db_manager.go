package dbbadger

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-pooling/internal/core/domain"
	"github.com/tdex-network/tdex-pooling/internal/core/ports"
	"github.com/timshannon/badgerhold/v4"
)

type repoManager struct {
	store       *badgerhold.Store
	pubsubStore *badgerhold.Store

	poolRepository       domain.PoolRepository
	ledgerRepository     domain.LedgerRepository
	withdrawalRepository domain.WithdrawalRepository
	subscriptionStore    ports.SubscriptionStore
}

// NewRepoManager opens (or creates if not exists) the badger stores on disk.
// It expects a base data dir and an optional logger. Stores are kept in memory
// if the base dir is empty.
func NewRepoManager(baseDbDir string, logger badger.Logger) (ports.RepoManager, error) {
	var mainDir, pubsubDir string
	if len(baseDbDir) > 0 {
		mainDir = filepath.Join(baseDbDir, "main")
		pubsubDir = filepath.Join(baseDbDir, "pubsub")
	}

	mainDb, err := createDb(mainDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening main db: %w", err)
	}

	pubsubDb, err := createDb(pubsubDir, logger)
	if err != nil {
		mainDb.Close()
		return nil, fmt.Errorf("opening pubsub db: %w", err)
	}

	return &repoManager{
		store:                mainDb,
		pubsubStore:          pubsubDb,
		poolRepository:       NewPoolRepositoryImpl(mainDb),
		ledgerRepository:     NewLedgerRepositoryImpl(mainDb),
		withdrawalRepository: NewWithdrawalRepositoryImpl(mainDb),
		subscriptionStore:    NewSubscriptionStoreImpl(pubsubDb),
	}, nil
}

func (r *repoManager) PoolRepository() domain.PoolRepository {
	return r.poolRepository
}

func (r *repoManager) LedgerRepository() domain.LedgerRepository {
	return r.ledgerRepository
}

func (r *repoManager) WithdrawalRepository() domain.WithdrawalRepository {
	return r.withdrawalRepository
}

func (r *repoManager) SubscriptionStore() ports.SubscriptionStore {
	return r.subscriptionStore
}

func (r *repoManager) Close() {
	r.store.Close()
	r.pubsubStore.Close()
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	db, err := badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, err
	}

	if !isInMemory {
		ticker := time.NewTicker(30 * time.Minute)

		go func() {
			for {
				<-ticker.C
				if err := db.Badger().RunValueLogGC(0.5); err != nil &&
					err != badger.ErrNoRewrite {
					log.Error(err)
				}
			}
		}()
	}

	return db, nil
}
