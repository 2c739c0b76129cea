// Package app assembles the storefront from configuration: stores,
// services, templates and routes.
package app

import (
	"amazon-shop/config"
	"amazon-shop/libs"
	"amazon-shop/logging"
	"amazon-shop/middleware"
	"amazon-shop/models"
	"amazon-shop/repositories"
	"amazon-shop/repositories/memory"
	"amazon-shop/routes"
	"amazon-shop/services"
	"amazon-shop/templates"
	"amazon-shop/utils"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Stores are the persistence backends the services run on.
type Stores struct {
	Products services.ProductStore
	Orders   services.OrderStore
	Users    services.UserStore
	Sessions services.SessionStore
	// Cache may be nil.
	Cache services.CatalogCache
}

type App struct {
	router  *gin.Engine
	closers []func()
}

// New opens the stores selected by cfg.StorageDriver and builds the app
// on them with the default catalog.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	stores, closers, err := openStores(ctx, cfg)
	if err != nil {
		return nil, err
	}

	a, err := Build(ctx, cfg, stores, services.DefaultCatalog)
	if err != nil {
		runClosers(closers)
		return nil, err
	}
	a.closers = closers
	return a, nil
}

// Build wires services and routes on top of stores and seeds the catalog.
func Build(ctx context.Context, cfg *config.Config, stores Stores, seed []models.SeedProduct) (*App, error) {
	catalog := services.NewCatalogService(stores.Products, stores.Cache, cfg.CatalogCacheTTL)
	if uploader := newImageUploader(cfg); uploader != nil {
		catalog.WithImageUploader(uploader, cfg.StaticDir)
	}
	if err := catalog.Seed(ctx, seed); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	var notifier services.OrderNotifier
	if mailer := newMailer(cfg); mailer != nil {
		notifier = mailer
	}

	tokens := utils.NewSessionTokens(cfg.SessionSecret, cfg.SessionTTL)
	sessions := middleware.NewSessionManager(stores.Sessions, tokens, cfg.IsProduction())

	tmpl, err := templates.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(
		middleware.Recovery(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		middleware.CORSMiddleware(cfg.OriginURL),
	)

	routes.SetupRoutes(router, routes.Dependencies{
		Catalog:   catalog,
		Carts:     services.NewCartService(catalog),
		Checkout:  services.NewCheckoutService(stores.Orders, stores.Users, notifier),
		Auth:      services.NewAuthService(stores.Users),
		Sessions:  sessions,
		StaticDir: cfg.StaticDir,
	})

	return &App{router: router}, nil
}

func (a *App) Handler() http.Handler {
	return a.router
}

// Close releases database connections in reverse order of opening.
func (a *App) Close() {
	runClosers(a.closers)
	a.closers = nil
}

func runClosers(closers []func()) {
	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}
}

func openStores(ctx context.Context, cfg *config.Config) (Stores, []func(), error) {
	if cfg.StorageDriver == config.StorageMemory {
		logging.Warn().Msg("using in-memory storage, data is lost on restart")
		return Stores{
			Products: memory.NewProductStore(),
			Orders:   memory.NewOrderStore(),
			Users:    memory.NewUserStore(),
			Sessions: memory.NewSessionStore(),
			Cache:    memory.NewCatalogCache(),
		}, nil, nil
	}

	var closers []func()
	fail := func(err error) (Stores, []func(), error) {
		runClosers(closers)
		return Stores{}, nil, err
	}

	pool, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, pool.Close)

	client, db, err := config.ConnectMongo(ctx, cfg)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logging.Warn().Err(err).Msg("mongo disconnect failed")
		}
	})

	products := repositories.NewProductRepository(db)
	if err := products.EnsureIndexes(ctx); err != nil {
		return fail(err)
	}

	stores := Stores{
		Products: products,
		Orders:   repositories.NewOrderRepository(db),
		Users:    repositories.NewUserRepository(pool),
	}

	if rdb := config.ConnectRedis(ctx, cfg); rdb != nil {
		closers = append(closers, func() { _ = rdb.Close() })
		stores.Sessions = repositories.NewSessionRepository(rdb)
		stores.Cache = repositories.NewCatalogCache(rdb)
	} else {
		logging.Warn().Msg("Running without cache, sessions are kept in process memory")
		stores.Sessions = memory.NewSessionStore()
	}

	return stores, closers, nil
}

func newImageUploader(cfg *config.Config) services.ImageUploader {
	uploader, err := libs.NewCloudinaryUploader(libs.CloudinaryConfig{
		URL:       cfg.CloudinaryURL,
		CloudName: cfg.CloudinaryCloudName,
		APIKey:    cfg.CloudinaryAPIKey,
		APISecret: cfg.CloudinaryAPISecret,
	})
	if errors.Is(err, libs.ErrCloudinaryNotConfigured) {
		return nil
	}
	if err != nil {
		logging.Warn().Err(err).Msg("cloudinary disabled, serving catalog images locally")
		return nil
	}
	return uploader
}

func newMailer(cfg *config.Config) *libs.Mailer {
	mailer, err := libs.NewMailer(libs.SMTPConfig{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,
	})
	if err != nil {
		logging.Info().Err(err).Msg("order confirmation emails disabled")
		return nil
	}
	return mailer
}
