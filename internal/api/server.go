package api

import (
	"context"

	"backend/internal/app/ai"
	"backend/internal/app/config"
	"backend/internal/app/handler"
	"backend/internal/app/ingest"
	"backend/internal/app/mail"
	"backend/internal/app/repository"
	"backend/internal/app/storage"
	"backend/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StartServer wires every component together and runs the HTTP server.
func StartServer() {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("config error: %v", err)
	}

	repo, err := repository.New(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("repository error: %v", err)
	}

	generator, err := ai.NewGenerator(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		logrus.Fatalf("gemini client error: %v", err)
	}
	extractor := ai.NewExtractor(generator)

	// Attachment storage is optional; without it attachments are listed
	// on proposals but their content is not kept.
	var attachments *storage.MinIOClient
	if cfg.MinIO.Endpoint != "" {
		attachments, err = storage.NewMinIOClient(cfg.MinIO)
		if err != nil {
			logrus.Fatalf("minio error: %v", err)
		}
	} else {
		logrus.Warn("MINIO_ENDPOINT not set, attachment storage disabled")
	}

	sender := mail.NewSender(cfg.SMTP)
	fetcher := mail.NewFetcher(cfg.IMAP)

	var pipeline *ingest.Pipeline
	if attachments != nil {
		pipeline = ingest.NewPipeline(repo, fetcher, extractor, attachments)
	} else {
		pipeline = ingest.NewPipeline(repo, fetcher, extractor, nil)
	}

	poller := ingest.NewPoller(pipeline, cfg.Poll.Interval)
	if cfg.Poll.AutoCheck {
		if err := poller.Start(); err != nil {
			logrus.Fatalf("poller error: %v", err)
		}
	} else {
		logrus.Info("automatic email checking disabled")
	}

	h := handler.NewHandler(repo, extractor, sender, poller)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	app := pkg.NewApp(cfg, router, h)
	app.RunApp()
}
