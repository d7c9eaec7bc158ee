package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/satno7/superlists/internal/auth"
	"github.com/satno7/superlists/internal/config"
	"github.com/satno7/superlists/internal/httpapi"
	"github.com/satno7/superlists/internal/mail"
	"github.com/satno7/superlists/internal/service"
	"github.com/satno7/superlists/internal/storage/sqlite"
	"github.com/satno7/superlists/pkg/logging"
)

func main() {
	cfg, err := config.Load(os.Getenv("SUPERLISTS_CONFIG"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.Level)
	logger := slog.Default()

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("Storage initialized", "database", cfg.Database.Path)

	var mailer mail.Sender
	switch cfg.Mail.Mode {
	case "smtp":
		mailer = &mail.SMTPSender{Addr: cfg.Mail.SMTPAddr, From: cfg.Mail.From}
	default:
		mailer = &mail.LogSender{Logger: logger}
	}

	jwtManager := auth.NewJWTManager(cfg.Session.Secret, time.Duration(cfg.Session.TTLHours)*time.Hour)
	listSvc := service.NewListService(store, logger)
	authSvc := service.NewAuthService(store, mailer, cfg.Server.BaseURL, logger)

	server := httpapi.NewServer(listSvc, authSvc, jwtManager)

	// h2c serves HTTP/2 without TLS; TLS termination belongs to the proxy
	// in front of us.
	handler := h2c.NewHandler(server.Router(), &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("Server starting", "address", addr, "base_url", cfg.Server.BaseURL)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
