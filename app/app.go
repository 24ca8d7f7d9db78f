// File: app/app.go
package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-bank-console/client"
	"go-bank-console/config"
	"go-bank-console/handler"
	"go-bank-console/logger"
	"go-bank-console/metrics"
	"go-bank-console/router"
	"go-bank-console/service"
)

const sweepInterval = time.Minute

// App is the wired console: the accounts service client, the pages of every
// session and the HTTP router in front of them.
type App struct {
	Config   config.Config
	Client   *client.AccountClient
	Metrics  *metrics.Collector
	Pages    *service.Pages
	Sessions *handler.SessionManager
	Router   http.Handler
}

// New wires all layers together from cfg.
func New(cfg config.Config) (*App, error) {
	collector := metrics.NewCollector()

	api, err := client.NewAPI(client.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Metrics: collector,
	})
	if err != nil {
		return nil, err
	}
	accountClient := client.NewAccountClient(api)

	pages := service.NewPages(accountClient, service.PageOptions{
		MessageTTL: cfg.UI.MessageTTL,
		Metrics:    collector,
	})
	sessions := handler.NewSessionManager(cfg.Session.SecretKey, cfg.Session.TTL)

	r := router.NewRouter(router.Handlers{
		Dashboard:     handler.NewDashboardHandler(pages),
		AccountDetail: handler.NewAccountDetailHandler(pages),
		Sessions:      sessions,
		Metrics:       collector.Handler(),
	})

	return &App{
		Config:   cfg,
		Client:   accountClient,
		Metrics:  collector,
		Pages:    pages,
		Sessions: sessions,
		Router:   r,
	}, nil
}

// sweepSessions closes idle sessions until ctx is done.
func (a *App) sweepSessions(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.Pages.Sweep(a.Config.Session.TTL)
		}
	}
}

// Run serves the console with config.AppConfig until SIGINT or SIGTERM.
func Run() {
	logger.SetLevel(config.AppConfig.Log.Level)

	a, err := New(config.AppConfig)
	if err != nil {
		logger.Log.Fatalf("Error creating the accounts service client: %v", err)
	}
	logger.Log.Infof("Accounts service at %s", a.Client.BaseURL())

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go a.sweepSessions(sweepCtx)

	// --- Start the Server with Graceful Shutdown ---
	port := a.Config.Server.Port
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Infof("Console starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}
	a.Pages.CloseAll()

	logger.Log.Info("Server exited properly")
}
