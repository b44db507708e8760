package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	api "github.com/examforge/examforge/internal/api/http"
	"github.com/examforge/examforge/internal/config"
	"github.com/examforge/examforge/internal/ingest"
	"github.com/examforge/examforge/internal/ingest/ocr"
	"github.com/examforge/examforge/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	store, err := storage.NewFSStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload store: %v", err)
	}

	var ocrClient ocr.Client
	switch cfg.OCRProvider {
	case "tesseract":
		ocrClient = ocr.NewTesseract()
	case "ocrspace":
		ocrClient = ocr.NewOCRSpace(cfg.OCRSpaceAPIKey)
	default:
		if cfg.OCRSpaceAPIKey != "" {
			ocrClient = ocr.NewOCRSpace(cfg.OCRSpaceAPIKey)
		}
	}
	svc := ingest.New(ocrClient)
	v := validator.New()

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", api.HealthHandler())
	r.Route("/api", func(r chi.Router) {
		r.Post("/upload", api.UploadExamHandler(store, svc))
		r.Post("/analyze", api.AnalyzeHandler(v))
		r.Post("/responses/upload", api.UploadResponsesHandler())
		r.Post("/similarity", api.SimilarityHandler())
	})

	log.Printf("listening on %s (uploads=%s)", cfg.HTTPAddr, cfg.UploadDir)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
