package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-pooling/internal/config"
	"github.com/tdex-network/tdex-pooling/internal/core/application"
	"github.com/tdex-network/tdex-pooling/internal/core/ports"
	custodyinmemory "github.com/tdex-network/tdex-pooling/internal/infrastructure/custody/inmemory"
	custodyremote "github.com/tdex-network/tdex-pooling/internal/infrastructure/custody/remote"
	httpinterface "github.com/tdex-network/tdex-pooling/internal/interfaces/http"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	custodyType := config.GetString(config.CustodyTypeKey)
	custody, err := newCustody(custodyType)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to custody")
	}

	appConfig := &application.Config{
		DBType:         config.GetString(config.DBTypeKey),
		DBConfig:       filepath.Join(config.GetDatadir(), config.DbLocation),
		Custody:        custody,
		WebhookTimeout: config.GetDuration(config.WebhookTimeoutKey),
		Clock:          clockwork.NewRealClock(),
	}
	if err := appConfig.Validate(); err != nil {
		log.WithError(err).Fatal("invalid application config")
	}
	poolingSvc := appConfig.PoolingService()

	svc, err := httpinterface.NewService(httpinterface.ServiceOpts{
		Port:               config.GetInt(config.ListeningPortKey),
		NoAuth:             config.GetBool(config.NoAuthKey),
		AuthSecret:         config.GetString(config.AuthSecretKey),
		CORSAllowedOrigins: config.GetStringSlice(config.CORSAllowedOriginsKey),
		EnableDeposit:      custodyType == config.CustodyInMemory,
		PoolingSvc:         poolingSvc,
		PubSubSvc:          appConfig.PubSubService(),
	})
	if err != nil {
		poolingSvc.Close()
		log.WithError(err).Fatal("failed to create REST interface")
	}

	log.Debug("starting daemon")

	if err := svc.Start(); err != nil {
		poolingSvc.Close()
		log.WithError(err).Fatal("failed to start REST interface")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	log.Info("shutting down daemon")
	svc.Stop()
	poolingSvc.Close()
	log.Debug("exiting")
}

func newCustody(custodyType string) (ports.Custody, error) {
	switch custodyType {
	case config.CustodyInMemory:
		log.Warn("using in-memory custody, funds are lost on shutdown")
		return custodyinmemory.NewCustody(), nil
	case config.CustodyRemote:
		return custodyremote.NewCustody(
			config.GetString(config.CustodyAddrKey),
			config.GetInt(config.CustodyRequestsPerSecondKey),
			config.GetDuration(config.CustodyTimeoutKey),
		)
	default:
		return nil, fmt.Errorf("unknown custody type %s", custodyType)
	}
}
