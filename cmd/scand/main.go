// Command scand runs the linkscope HTTP API daemon.
// Usage: go run ./cmd/scand [-config path/to/linkscope.yaml]
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/raysh454/linkscope/internal/app"
	"github.com/raysh454/linkscope/internal/config"
	"github.com/raysh454/linkscope/internal/history"
	"github.com/raysh454/linkscope/internal/logging"
	"github.com/raysh454/linkscope/internal/scorer"
	"github.com/raysh454/linkscope/internal/server"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	logger, err := logging.NewZapLogger(logging.ZapConfig{
		Level:   cfg.Log.Level,
		Pretty:  cfg.Log.Pretty,
		Service: cfg.App.Name,
	})
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting scand",
		logging.Field{Key: "env", Value: cfg.App.Env},
		logging.Field{Key: "addr", Value: cfg.Server.Addr})

	srv, err := server.NewServer(server.Config{
		ListenAddr: cfg.Server.Addr,
		AppConfig:  appConfig(cfg),
		Logger:     logger,
	})
	if err != nil {
		logger.Error("building server", logging.Field{Key: "error", Value: err.Error()})
		os.Exit(1)
	}
	defer srv.Close()

	httpSrv := srv.HTTPServer()
	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case <-rootCtx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", logging.Field{Key: "error", Value: err.Error()})
		}
	}

	shCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
	defer cancel()
	_ = httpSrv.Shutdown(shCtx)

	logger.Info("bye")
}

// appConfig translates daemon config into the orchestrator's per-package
// configs.
func appConfig(cfg *config.Config) *app.Config {
	appCfg := app.DefaultConfig()
	appCfg.HistoryCfg = &history.Config{Limit: cfg.History.Limit}
	appCfg.SimulatedLatency = cfg.Scorer.SimulatedLatency
	if cfg.Scorer.HeaderVerdict == "fail" {
		appCfg.ScorerCfg.HeaderVerdict = scorer.HeaderAssumeFail
	}
	return appCfg
}
