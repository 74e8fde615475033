package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/anrokk/SportMap-Client/internal/api"
	"github.com/anrokk/SportMap-Client/internal/auth"
	"github.com/anrokk/SportMap-Client/internal/config"
	"github.com/anrokk/SportMap-Client/internal/credstore"
	"github.com/anrokk/SportMap-Client/internal/gpsdata"
	"github.com/anrokk/SportMap-Client/internal/server"
)

var mainDepsProvider = defaultDeps
var mainRunner = realMain

func main() {
	mainRunner(mainDepsProvider())
}

type mainDeps struct {
	loadConfig func() config.Config
	openCreds  func(config.Config) (credstore.Store, error)
	notify     func(chan<- os.Signal, ...os.Signal)
	run        func(context.Context, config.Config, credstore.Store, <-chan os.Signal, ListenFunc) error
}

func defaultDeps() mainDeps {
	return mainDeps{
		loadConfig: config.Load,
		openCreds:  credstore.Open,
		notify:     signal.Notify,
		run:        Run,
	}
}

func realMain(deps mainDeps) {
	cfg := deps.loadConfig()

	creds, err := deps.openCreds(cfg)
	if err != nil {
		log.Printf("credential store open failed: %v", err)
		return
	}

	signals := make(chan os.Signal, 1)
	deps.notify(signals, syscall.SIGINT, syscall.SIGTERM)

	if err := deps.run(context.Background(), cfg, creds, signals, nil); err != nil {
		log.Printf("server exited with error: %v", err)
	}
}

type ListenFunc func(app *fiber.App, addr string) error

var defaultListen ListenFunc = func(app *fiber.App, addr string) error {
	return app.Listen(addr)
}

// Run wires the adapters and stores, hydrates the auth session from
// storage, then serves until a termination signal.
func Run(ctx context.Context, cfg config.Config, creds credstore.Store, signals <-chan os.Signal, listen ListenFunc) error {
	httpClient := &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second}

	account := api.NewAccountClient(cfg.AccountBaseURL, httpClient)
	authStore := auth.NewStore(account, creds, nil)
	client := api.NewClient(cfg.APIBaseURL, httpClient, authStore.Token)
	dataStore := gpsdata.NewStore(client)

	authStore.InitializeFromStorage(ctx)

	srv := server.NewServer(cfg, authStore, dataStore, creds)

	if listen == nil {
		listen = defaultListen
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- listen(srv.App, cfg.ServerPort)
	}()

	select {
	case <-signals:
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.App.ShutdownWithContext(shutdownCtx); err != nil {
		return err
	}
	if creds != nil {
		_ = creds.Close()
	}
	return nil
}
