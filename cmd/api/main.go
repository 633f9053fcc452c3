package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/obsidianco/lead-capture/internal/config"
	"github.com/obsidianco/lead-capture/internal/entity"
	"github.com/obsidianco/lead-capture/internal/infra/database"
	"github.com/obsidianco/lead-capture/internal/infra/http/handlers"
	"github.com/obsidianco/lead-capture/internal/infra/http/middleware"
	"github.com/obsidianco/lead-capture/internal/infra/integration/resend"
	"github.com/obsidianco/lead-capture/internal/infra/mail"
	"github.com/obsidianco/lead-capture/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// 1. Repository
	leadRepo := database.NewLeadRepository(db)

	// 2. Email backend: Resend API first, SMTP relay as fallback, neither
	// means the dispatcher runs as a no-op.
	var sender mail.Sender
	switch {
	case cfg.ResendAPIKey != "":
		sender = &mail.ResendSender{Client: resend.NewClient(cfg.ResendAPIKey, "")}
	case cfg.SMTPHost != "":
		sender = mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	default:
		log.Println("no email backend configured - welcome emails disabled")
	}
	dispatcher := mail.NewDispatcher(sender, cfg.MailFrom)

	// 3. UseCase
	captureUC := usecase.NewCaptureLeadUseCase(leadRepo, dispatcher)

	// 4. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	// All methods go through the handler so its method gate can answer
	// non-POST requests with the JSON error and CORS headers; chi's default
	// 405 replies with neither.
	for _, v := range entity.Verticals {
		h := handlers.NewSubmitHandler(v, captureUC, cfg.Production())
		r.HandleFunc("/submit-"+v.ID, h.Handle)
	}

	healthHandler := handlers.NewHealthHandler(db, cfg.EmailConfigured())
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("lead-capture API listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
