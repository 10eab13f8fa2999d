package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bidedigitala/contact-service/internal/api/router"
	appconfig "github.com/bidedigitala/contact-service/internal/config"
	"github.com/bidedigitala/contact-service/internal/contact"
	"github.com/bidedigitala/contact-service/internal/leads"
	"github.com/bidedigitala/contact-service/internal/notify"
	"github.com/bidedigitala/contact-service/internal/observability/metrics"
	"github.com/bidedigitala/contact-service/pkg/logging"
)

func main() {
	// Load configuration; a missing .env is fine in production.
	_ = godotenv.Load()
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting contact service",
		"env", cfg.Env,
		"port", cfg.Port,
		"leads_path", cfg.LeadsPath(),
	)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	// Incomplete mail settings are a warning, not a crash: the lead log
	// keeps working and sends fail at send time.
	for _, warning := range cfg.Warnings() {
		logger.Warn(warning)
	}

	store := leads.NewJSONLStore(cfg.DataDir, cfg.LeadsFile)
	sender := buildSender(cfg, logger.Component("notify"))
	contactMetrics := metrics.NewContactMetrics(nil)

	contactHandler := contact.NewHandler(store, sender, cfg.MailTo, logger.Component("contact"), contactMetrics)

	r := router.New(&router.Config{
		Logger:             logger,
		ContactHandler:     contactHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
		PublicDir:          cfg.PublicDir,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildSender picks the mail backend from configuration, falling back to
// the logging stub when the selected backend is unusable so the service
// still accepts and records leads.
func buildSender(cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	if logger == nil {
		logger = logging.Default()
	}
	switch cfg.EmailProvider {
	case appconfig.ProviderSendGrid:
		if s := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger); s != nil {
			return s
		}
		logger.Warn("sendgrid not configured, using stub email sender")
	case appconfig.ProviderSMTP:
		s, err := notify.NewSMTPSender(notify.SMTPConfig{
			Host:    cfg.SMTPHost,
			Port:    cfg.SMTPPort,
			Secure:  cfg.SMTPSecure,
			User:    cfg.SMTPUser,
			Pass:    cfg.SMTPPass,
			From:    cfg.MailFrom,
			Timeout: cfg.SMTPTimeout,
		}, logger)
		if err == nil {
			return s
		}
		logger.Warn("smtp not configured, using stub email sender", "error", err)
	}
	return notify.NewStubEmailSender(logger)
}
