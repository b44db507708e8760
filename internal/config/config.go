package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr  string
	UploadDir string

	// CORS origins allowed to call the API.
	AllowedOrigins []string

	// OCR_PROVIDER selects "ocrspace" or "tesseract"; empty disables
	// OCR unless an OCR.space key is present.
	OCRProvider    string
	OCRSpaceAPIKey string
}

func FromEnv() Config {
	return Config{
		HTTPAddr:       envOr("HTTP_ADDR", ":8080"),
		UploadDir:      envOr("UPLOAD_DIR", "./uploads"),
		AllowedOrigins: csvOr("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"),
		OCRProvider:    envOr("OCR_PROVIDER", ""),
		OCRSpaceAPIKey: os.Getenv("OCR_SPACE_API_KEY"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
