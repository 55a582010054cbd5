package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/ecom-admin/config"
	"github.com/niksmo/ecom-admin/internal/adapter"
	"github.com/niksmo/ecom-admin/internal/adapter/backend"
	"github.com/niksmo/ecom-admin/internal/adapter/httphandler"
	"github.com/niksmo/ecom-admin/internal/adapter/kafka"
	"github.com/niksmo/ecom-admin/internal/adapter/storage"
	"github.com/niksmo/ecom-admin/internal/core/port"
	"github.com/niksmo/ecom-admin/internal/core/service"
	"github.com/niksmo/ecom-admin/internal/core/session"
	"github.com/niksmo/ecom-admin/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type outbound struct {
	tokenStore port.TokenStore
	backend    *backend.Client
	audit      *kafka.AuditProducer
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	closers    []func()
	outbound   outbound
	session    *session.Session
	service    service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initTokenStore()
	app.initSession()
	app.initBackend()
	app.initAudit()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initTokenStore() {
	const op = "App.initTokenStore"
	ts := app.cfg.TokenStore

	switch ts.Kind {
	case config.TokenStoreRedis:
		rdb, err := storage.NewRedisClient(app.ctx, ts.RedisURL)
		if err != nil {
			app.fallDown(op, err)
		}
		store, err := storage.NewRedisTokenStore(rdb, ts.Key)
		if err != nil {
			app.fallDown(op, err)
		}
		app.outbound.tokenStore = store
		app.closers = append(app.closers, store.Close)
	default:
		store, err := storage.NewFileTokenStore(ts.FilePath)
		if err != nil {
			app.fallDown(op, err)
		}
		app.outbound.tokenStore = store
	}
}

func (app *App) initSession() {
	const op = "App.initSession"

	app.session = session.New(app.outbound.tokenStore)
	if err := app.session.Load(app.ctx); err != nil {
		app.fallDown(op, err)
	}
}

func (app *App) initBackend() {
	const op = "App.initBackend"
	b := app.cfg.Backend

	client, err := backend.New(
		b.BaseURL,
		backend.TimeoutOpt(b.RequestTimeout),
		backend.RetryOpt(b.RetryAttempts),
		backend.HeadersOpt(b.ExtraHeaders),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.backend = client
}

// initAudit connects the audit producer when enabled. An enabled but
// unreachable cluster stops the start.
func (app *App) initAudit() {
	const op = "App.initAudit"
	a := app.cfg.Audit
	log := slog.With("op", op)

	if !a.Enabled {
		log.Info("audit events are disabled")
		return
	}

	var tlsCfg *tls.Config
	if a.TLS.Enabled() {
		var err error
		tlsCfg, err = adapter.MakeTLSConfig(a.TLS.CAFile, a.TLS.CertFile, a.TLS.KeyFile)
		if err != nil {
			app.fallDown(op, err)
		}
	}

	srOpts := []sr.ClientOpt{sr.URLs(a.SchemaRegistryURLs...)}
	if tlsCfg != nil {
		srOpts = append(srOpts, sr.HTTPClient(&http.Client{
			Transport: &http.Transport{TLSClientConfig: tlsCfg},
		}))
	}
	srClient, err := sr.NewClient(srOpts...)
	if err != nil {
		app.fallDown(op, err)
	}

	identifier, err := schema.NewRegistryIdentifier(srClient)
	if err != nil {
		app.fallDown(op, err)
	}

	serde, err := schema.NewSerdeAuditEventV1(
		app.ctx,
		schema.SubjectOpt(schema.TopicSubject(a.Topic)),
		schema.SchemaIdentifierOpt(identifier),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := kafka.NewAuditProducer(
		kafka.ProducerClientOpt(app.ctx, a.SeedBrokers, a.Topic, tlsCfg),
		kafka.ProducerEncoderOpt(serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.audit = &producer
	app.closers = append(app.closers, producer.Close)
	log.Info("audit events are enabled", "topic", a.Topic)
}

func (app *App) initCoreService() {
	const op = "App.initCoreService"

	var opts []service.Opt
	if app.outbound.audit != nil {
		opts = append(opts,
			service.AuditOpt(app.outbound.audit),
			service.AuditTimeoutOpt(app.cfg.Audit.PublishTimeout),
		)
	}

	s, err := service.New(app.outbound.backend, app.session, opts...)
	if err != nil {
		app.fallDown(op, err)
	}
	app.service = s
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	guard := httphandler.NewFormGuard()
	httphandler.RegisterAuth(mux, guard, app.service)
	httphandler.RegisterOrders(mux, guard, app.service)
	httphandler.RegisterProducts(mux, guard, app.service)
	httphandler.RegisterCategories(mux, guard, app.service)

	handler := httphandler.LogRequests(httphandler.AllowJSON(mux))
	app.httpServer = httphandler.NewHTTPServer(app.ctx, addr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running", "authenticated", app.session.Authenticated())
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	for i := len(app.closers) - 1; i >= 0; i-- {
		app.closers[i]()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
