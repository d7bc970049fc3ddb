// Command oadr-console is an interactive OpenADR 3 VTN console.
//
// It connects to a VTN, authenticates via OAuth2 client credentials and
// offers a small shell for browsing programs, events, reports, VENs and
// subscriptions, and for watching a program's events live.
//
// Usage:
//
//	oadr-console [flags]
//
// Flags:
//
//	-config string     Configuration file path (default "oadr-console.yaml")
//	-vtn string        VTN base URL (overrides config)
//	-log-level string  Log level: debug, info, warn, error (default "info")
//
// Connection settings come from the config file, overridden by the
// OADR_BASE_URL, OADR_TOKEN_URL, OADR_CLIENT_ID and OADR_CLIENT_SECRET
// environment variables (a .env file is honored) and finally by flags.
//
// Examples:
//
//	# Connect using a config file
//	oadr-console -config vtn.yaml
//
//	# Connect to a local test VTN without auth
//	oadr-console -vtn http://localhost:8080/openadr3/3.0.1
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"golang.org/x/oauth2"

	"github.com/oadr3-protocol/oadr3-go/cmd/oadr-console/interactive"
	"github.com/oadr3-protocol/oadr3-go/pkg/auth"
	"github.com/oadr3-protocol/oadr3-go/pkg/client"
	"github.com/oadr3-protocol/oadr3-go/pkg/wirelog"
)

func main() {
	var (
		configPath = flag.String("config", "oadr-console.yaml", "Configuration file path")
		vtnURL     = flag.String("vtn", "", "VTN base URL (overrides config)")
		logLevel   = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	)
	flag.Parse()

	// A missing .env is fine; only the variables matter.
	_ = godotenv.Load()

	logger := newLogger(*logLevel)
	slog.SetDefault(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fatal(logger, "loading config", err)
	}
	cfg.applyEnv()
	if *vtnURL != "" {
		cfg.BaseURL = *vtnURL
	}
	if cfg.BaseURL == "" {
		fatal(logger, "loading config", client.ErrMissingBaseURL)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tokenSource, err := buildTokenSource(ctx, cfg)
	if err != nil {
		fatal(logger, "configuring auth", err)
	}

	var wireLog wirelog.Logger = wirelog.NoopLogger{}
	if cfg.WireLog != "" {
		fl, err := wirelog.NewFileLogger(cfg.WireLog)
		if err != nil {
			fatal(logger, "opening wire log", err)
		}
		defer fl.Close()
		wireLog = fl
	}

	c, err := client.New(client.Config{
		BaseURL:     cfg.BaseURL,
		TokenSource: tokenSource,
		Logger:      logger,
		WireLog:     wireLog,
	})
	if err != nil {
		fatal(logger, "creating client", err)
	}

	logger.Info("connected", "vtn", c.BaseURL())

	console, err := interactive.New(c, tokenSource)
	if err != nil {
		fatal(logger, "starting console", err)
	}

	// Ctrl-C during a watch cancels it; readline handles its own ^C at
	// the prompt.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	console.Run(ctx, cancel)
}

// buildTokenSource wires client-credentials auth with an optional on-disk
// token cache. A config without a token URL means an unauthenticated VTN.
func buildTokenSource(ctx context.Context, cfg *Config) (oauth2.TokenSource, error) {
	if cfg.OAuth.TokenURL == "" {
		return nil, nil
	}
	ts, err := auth.TokenSource(ctx, auth.Config{
		TokenURL:     cfg.OAuth.TokenURL,
		ClientID:     cfg.OAuth.ClientID,
		ClientSecret: cfg.OAuth.ClientSecret,
		Scopes:       cfg.OAuth.Scopes,
	})
	if err != nil {
		return nil, err
	}
	if cfg.TokenCache != "" {
		ts = auth.CachedTokenSource(ts, auth.NewTokenStore(cfg.TokenCache))
	}
	return ts, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: lvl}))
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	fmt.Fprintf(os.Stderr, "oadr-console: %s: %v\n", msg, err)
	os.Exit(1)
}
