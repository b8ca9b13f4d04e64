// Command cutquoted serves quotes over HTTP.
//
// POST a JSON object {"profile": <profile description>, "params": {...}} to
// /quote; params is optional and overrides the configured cost parameters
// field by field.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"honnef.co/go/cutquote/internal/config"
	applog "honnef.co/go/cutquote/internal/log"
	"honnef.co/go/cutquote/internal/server"
)

func main() {
	configPath := flag.String("config", "", "configuration `file` (default $"+config.EnvConfigFile+")")
	addr := flag.String("addr", "", "listen address (overrides the configuration)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cutquoted:", err)
		os.Exit(2)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	defer applog.Close()
	l := applog.WithComponent("server")

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.New(cfg.Cost.Params(), cfg.Server.MaxBodyBytes, l).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		l.Info("listening", slog.String("addr", cfg.Server.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			l.Error("server failed", slog.Any("err", err))
			os.Exit(1)
		}
	case <-ctx.Done():
		l.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			l.Error("shutdown failed", slog.Any("err", err))
		}
	}
}
