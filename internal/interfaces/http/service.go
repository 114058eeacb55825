package httpinterface

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-pooling/internal/core/application"
	interfaces "github.com/tdex-network/tdex-pooling/internal/interfaces"
)

const shutdownTimeout = 10 * time.Second

type ServiceOpts struct {
	Port               int
	NoAuth             bool
	AuthSecret         string
	CORSAllowedOrigins []string
	// EnableDeposit exposes the custody faucet, development only.
	EnableDeposit bool

	PoolingSvc application.PoolingService
	PubSubSvc  application.PubSubService
}

func (o ServiceOpts) validate() error {
	if o.Port <= 0 || o.Port > 65535 {
		return fmt.Errorf("invalid listening port %d", o.Port)
	}
	if !o.NoAuth && o.AuthSecret == "" {
		return ErrMissingSecret
	}
	if o.PoolingSvc == nil {
		return fmt.Errorf("pooling app service must not be null")
	}
	if o.PubSubSvc == nil {
		return fmt.Errorf("pubsub app service must not be null")
	}
	return nil
}

type service struct {
	opts   ServiceOpts
	hub    *eventHub
	server *http.Server
}

func NewService(opts ServiceOpts) (interfaces.Service, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("invalid opts: %s", err)
	}
	if len(opts.CORSAllowedOrigins) <= 0 {
		opts.CORSAllowedOrigins = []string{"*"}
	}

	hub := newEventHub()
	opts.PoolingSvc.RegisterHandlerForWithdrawal(hub.broadcast)

	return &service{
		opts: opts,
		hub:  hub,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           newRouter(opts, hub),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

func (s *service) Start() error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-time.After(100 * time.Millisecond):
	}

	log.Infof("REST interface listening on port %d", s.opts.Port)
	if s.opts.NoAuth {
		log.Warn("authentication is disabled, never use this in production")
	}
	return nil
}

func (s *service) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.hub.close()
	if err := s.server.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("failed to gracefully stop REST interface")
	}
	log.Debug("stopped REST interface")
}

func newRouter(opts ServiceOpts, hub *eventHub) http.Handler {
	h := &handler{opts.PoolingSvc, opts.PubSubSvc}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(instrument)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", AccountHeader},
		MaxAge:         300,
	}))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(authenticate(opts.NoAuth, opts.AuthSecret))

		r.With(operatorOnly).Post("/pools", h.createPool)
		r.Get("/pools", h.listPools)
		r.Route("/pools/{pool}", func(r chi.Router) {
			r.Get("/", h.getPool)
			r.Get("/participants/{account}/share", h.participantShare)
			r.Get("/assets/{asset}/deposited", h.totalDeposited)
			r.Get("/assets/{asset}/claimable/{account}", h.claimable)
			r.Get("/assets/{asset}/withdrawn/{account}", h.alreadyWithdrawn)
			r.Post("/assets/{asset}/withdraw", h.withdraw)
			r.Get("/withdrawals", h.listWithdrawals)
			r.Get("/events", h.poolEvents(hub))
		})

		r.Group(func(r chi.Router) {
			r.Use(operatorOnly)
			r.Post("/webhooks", h.addWebhook)
			r.Get("/webhooks", h.listWebhooks)
			r.Delete("/webhooks/{id}", h.removeWebhook)
			if opts.EnableDeposit {
				r.Post("/custody/deposit", h.deposit)
			}
		})
	})

	return r
}
