package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Jacobisaldana/signature-mail/modules/signatures"
	"github.com/Jacobisaldana/signature-mail/pkg/config"
	"github.com/Jacobisaldana/signature-mail/pkg/httpserver"
	"github.com/Jacobisaldana/signature-mail/pkg/icons"
	"github.com/Jacobisaldana/signature-mail/pkg/imageprep"
	"github.com/Jacobisaldana/signature-mail/pkg/logger"
	"github.com/Jacobisaldana/signature-mail/pkg/pg"
	"github.com/Jacobisaldana/signature-mail/pkg/signature/templates"
	"github.com/Jacobisaldana/signature-mail/pkg/storage"
)

type appConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	Logger      logger.Config
	HTTP        httpserver.Config
	DB          pg.Config
	Storage     storage.Config
	Icons       icons.ResolverConfig
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Logger,
		logger.WithService("signature-mail", cfg.Environment),
		logger.WithContextValue("request_id", chimiddleware.RequestIDKey),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pg.Connect(ctx, cfg.DB)
	if err != nil {
		log.Error("database connection failed", logger.Error(err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, cfg.DB, log); err != nil {
		log.Error("migrations failed", logger.Error(err))
		os.Exit(1)
	}

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		log.Error("storage init failed", logger.Error(err))
		os.Exit(1)
	}

	iconRegistry := icons.NewRegistry()
	resolver := icons.NewResolver(iconRegistry, store, cfg.Icons, icons.WithLogger(log))
	// Best effort: icons that never resolve keep their public defaults.
	go resolver.Resolve(ctx)

	pipeline := imageprep.NewPipeline(store, imageprep.WithLogger(log))

	svc := signatures.NewService(
		signatures.NewPGStore(pool),
		templates.NewRegistry(iconRegistry),
		signatures.WithUploads(pipeline),
		signatures.WithPresigner(store),
		signatures.WithLogger(log),
	)

	r := chi.NewRouter()
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, pg.Healthcheck(pool)))
	r.Mount("/api", signatures.Router(svc))
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}
