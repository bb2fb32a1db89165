// Package main запускает терминальный клиент расчёта стоимости стекла.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/glass-quote/internal/apiclient"
	"github.com/magabrotheeeer/glass-quote/internal/app/client"
	"github.com/magabrotheeeer/glass-quote/internal/config"
	"github.com/magabrotheeeer/glass-quote/internal/export"
	"github.com/magabrotheeeer/glass-quote/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()

	// логи не должны смешиваться с выводом терминала
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Error("failed to open log file", slog.String("path", cfg.LogFile), sl.Err(err))
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := sl.SetupLogger(cfg.Env, logOut)
	logger.Info("starting glass-quote", slog.String("api", cfg.APIBaseURL))

	api, err := apiclient.New(cfg.APIBaseURL, cfg.RequestTimeout, logger)
	if err != nil {
		logger.Error("failed to create api client", sl.Err(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	term := client.New(api, export.SystemClipboard{}, export.Browser{}, os.Stdin, os.Stdout, logger)
	if err := term.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("client stopped with error", sl.Err(err))
		os.Exit(1)
	}
	logger.Info("glass-quote stopped")
}
