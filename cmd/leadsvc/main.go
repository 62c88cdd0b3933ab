/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

// Command leadsvc runs the DumpPro lead-capture service: the contact and
// quote form APIs with per-client admission control, plus the location and
// dumpster-size reference endpoints backing the marketing site.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/acronis/go-appkit/config"
	"github.com/acronis/go-appkit/httpserver"
	"github.com/acronis/go-appkit/httpserver/middleware"
	"github.com/acronis/go-appkit/log"
	"github.com/acronis/go-appkit/service"
	"github.com/spf13/pflag"

	appconfig "github.com/dumppro/leadsvc/internal/config"
	"github.com/dumppro/leadsvc/internal/httpapi"
	"github.com/dumppro/leadsvc/internal/location"
	"github.com/dumppro/leadsvc/internal/mail"
	"github.com/dumppro/leadsvc/internal/ratelimit"
	"github.com/dumppro/leadsvc/internal/storage"
	"github.com/dumppro/leadsvc/internal/submission"
)

const storageConnectTimeout = 10 * time.Second

func main() {
	var configPath string
	pflag.StringVar(&configPath, "config", "", "path to the YAML configuration file")
	pflag.Parse()

	if err := runApp(configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runApp(configPath string) error {
	cfg, err := loadAppConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLogger := log.NewLogger(cfg.Log)
	defer closeLogger()

	store, err := newStore(cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer store.Close()

	locations, err := location.NewDirectory()
	if err != nil {
		return fmt.Errorf("load locations: %w", err)
	}

	mailer, err := newMailer(cfg.Mail, logger)
	if err != nil {
		return fmt.Errorf("init mailer: %w", err)
	}

	metrics := httpapi.NewMetricsCollector(appconfig.ServiceName)
	metrics.MustRegister()
	defer metrics.Unregister()

	httpReqMetrics := middleware.NewHTTPRequestPrometheusMetrics()
	httpReqMetrics.MustRegister()
	defer httpReqMetrics.Unregister()

	pipeline := submission.NewPipeline(store, mailer, locations, logger)

	router := httpapi.NewRouter(httpapi.RouterParams{
		Logger:             logger,
		ErrorDomain:        appconfig.ErrorDomain,
		Pipeline:           pipeline,
		Store:              store,
		Locations:          locations,
		Limiter:            ratelimit.NewLimiter(),
		ContactPolicy:      cfg.RateLimit.Contact,
		QuotePolicy:        cfg.RateLimit.Quote,
		APIPolicy:          cfg.RateLimit.API,
		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
		Metrics:            metrics,
		HTTPRequestMetrics: httpReqMetrics,
	})

	httpServer := httpserver.NewWithHandler(cfg.Server, logger, router)
	return service.New(logger, httpServer).Start()
}

func loadAppConfig(configPath string) (*appconfig.AppConfig, error) {
	cfg := appconfig.NewAppConfig()
	loader := config.NewDefaultLoader(appconfig.ServiceName)
	if configPath == "" {
		// No file: defaults plus environment variables.
		return cfg, loader.LoadFromReader(strings.NewReader(""), config.DataTypeYAML, cfg)
	}
	return cfg, loader.LoadFromFile(configPath, config.DataTypeYAML, cfg)
}

func newStore(cfg *appconfig.StorageConfig, logger log.FieldLogger) (storage.Store, error) {
	if cfg.DSN == "" {
		logger.Warn("storage DSN is not configured, using in-memory store")
		return storage.NewMemory(), nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), storageConnectTimeout)
	defer cancel()
	return storage.NewPostgres(ctx, cfg.DSN)
}

func newMailer(cfg *appconfig.MailConfig, logger log.FieldLogger) (mail.Mailer, error) {
	if !cfg.Enabled {
		logger.Warn("mail notifications are disabled")
		return &mail.DisabledMailer{Logger: logger}, nil
	}
	return mail.NewSMTPMailer(mail.SMTPParams{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort,
		Username:   cfg.SMTPUsername,
		Password:   cfg.SMTPPassword,
		From:       cfg.FromAddress,
		AdminEmail: cfg.AdminEmail,
	})
}
