package http

import "net/http"

const version = "1.0.0"

func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "ExamForge API",
			"version": version,
		})
	}
}
