package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/theestifanos/wedding-api/internal/api"
	"github.com/theestifanos/wedding-api/internal/config"
	"github.com/theestifanos/wedding-api/internal/mailer"
	"github.com/theestifanos/wedding-api/internal/repository/postgres"
	"github.com/theestifanos/wedding-api/internal/resend"
	"github.com/theestifanos/wedding-api/internal/service/notify"
	"github.com/theestifanos/wedding-api/internal/service/rsvp"
	"github.com/theestifanos/wedding-api/internal/templates"
	"github.com/theestifanos/wedding-api/internal/twilio"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// checkPortAvailable verifies that the target port is not already in use.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v", port, addr, err)
	}
	ln.Close()
	return nil
}

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("DATABASE_URL") != "" {
		log.Println("[config] DATABASE_URL env override active")
	}

	host := cfg.Server.GetHost()
	port := cfg.Server.Port
	if err := checkPortAvailable(host, port); err != nil {
		log.Fatalf("Pre-flight check FAILED: %v", err)
	}

	// Connect to the guest store
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		cancel()
		log.Fatalf("Failed to reach database: %v", err)
	}
	cancel()
	log.Println("Connected to database")

	repo := postgres.NewPartyRepo(db)

	// Notification providers are optional: an unconfigured channel fails
	// per-dispatch instead of preventing startup.
	var emailSender notify.EmailSender
	if cfg.Resend.Enabled() {
		emailSender = mailer.New(resend.NewClient(cfg.Resend), templates.NewEngine(), cfg.Wedding)
		log.Println("Email channel enabled (Resend)")
	} else {
		log.Println("Email channel disabled: RESEND_API_KEY not set")
	}

	var smsSender notify.SMSSender
	if cfg.Twilio.Enabled() {
		smsSender = twilio.NewClient(cfg.Twilio)
		log.Println("SMS channel enabled (Twilio)")
	} else {
		log.Println("SMS channel disabled: Twilio credentials not set")
	}

	rsvpSvc := rsvp.NewService(repo, cfg.Site.RSVPSentinel)
	notifySvc := notify.NewService(repo, emailSender, smsSender)

	handlers := api.NewHandlers(rsvpSvc, notifySvc, cfg.Site, db)
	server := api.NewServer(cfg.Server, handlers)

	addr := fmt.Sprintf("%s:%d", host, port)
	go func() {
		log.Printf("Wedding API listening on %s", addr)
		if err := server.ListenAndServe(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
