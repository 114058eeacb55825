package application

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-pooling/internal/core/ports"
	"github.com/tdex-network/tdex-pooling/internal/infrastructure/pubsub"
	dbbadger "github.com/tdex-network/tdex-pooling/internal/infrastructure/storage/db/badger"
	"github.com/tdex-network/tdex-pooling/internal/infrastructure/storage/db/inmemory"
)

const (
	DBBadger   = "badger"
	DBInMemory = "inmemory"
)

var (
	SupportedDBType = map[string]struct{}{
		DBBadger:   {},
		DBInMemory: {},
	}
)

type Config struct {
	DBType   string
	DBConfig interface{}

	Custody        ports.Custody
	SecurePubSub   ports.SecurePubSub
	WebhookTimeout time.Duration
	Clock          clockwork.Clock

	repo    ports.RepoManager
	pubsub  PubSubService
	pooling PoolingService
}

func (c *Config) Validate() error {
	if _, ok := SupportedDBType[c.DBType]; !ok {
		return fmt.Errorf("db type not supported, must be one of %v", supportedDBTypes())
	}
	if c.DBType == DBBadger {
		if _, ok := c.DBConfig.(string); !ok {
			return fmt.Errorf("db config for badger must be the datadir path")
		}
	}
	if c.Custody == nil {
		return fmt.Errorf("missing custody")
	}
	if _, err := c.repoManager(); err != nil {
		return err
	}
	if _, err := c.pubsubService(); err != nil {
		return err
	}
	return nil
}

func (c *Config) RepoManager() ports.RepoManager {
	svc, _ := c.repoManager()
	return svc
}

func (c *Config) PubSubService() PubSubService {
	svc, _ := c.pubsubService()
	return svc
}

func (c *Config) PoolingService() PoolingService {
	svc, _ := c.poolingService()
	return svc
}

func (c *Config) repoManager() (ports.RepoManager, error) {
	if c.repo == nil {
		switch c.DBType {
		case DBBadger:
			datadir, _ := c.DBConfig.(string)
			repoManager, err := dbbadger.NewRepoManager(datadir, log.StandardLogger())
			if err != nil {
				return nil, err
			}
			c.repo = repoManager
		case DBInMemory:
			c.repo = inmemory.NewRepoManager()
		default:
			return nil, fmt.Errorf("unknown db type %s", c.DBType)
		}
	}
	return c.repo, nil
}

func (c *Config) pubsubService() (PubSubService, error) {
	if c.pubsub == nil {
		securePubSub := c.SecurePubSub
		if securePubSub == nil {
			repo, err := c.repoManager()
			if err != nil {
				return nil, err
			}
			securePubSub, err = pubsub.NewService(
				repo.SubscriptionStore(), c.WebhookTimeout,
			)
			if err != nil {
				return nil, err
			}
		}
		c.pubsub = NewPubSubService(securePubSub)
	}
	return c.pubsub, nil
}

func (c *Config) poolingService() (PoolingService, error) {
	if c.pooling == nil {
		repo, err := c.repoManager()
		if err != nil {
			return nil, err
		}
		pubsub, err := c.pubsubService()
		if err != nil {
			return nil, err
		}
		pooling, err := NewPoolingService(repo, c.Custody, pubsub, c.Clock)
		if err != nil {
			return nil, err
		}
		c.pooling = pooling
	}
	return c.pooling, nil
}

func supportedDBTypes() []string {
	types := make([]string, 0, len(SupportedDBType))
	for t := range SupportedDBType {
		types = append(types, t)
	}
	return types
}
