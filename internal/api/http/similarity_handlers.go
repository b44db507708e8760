package http

import (
	"encoding/json"
	"net/http"

	"github.com/examforge/examforge/internal/exam"
	"github.com/examforge/examforge/internal/similarity"
)

type similarityRequest struct {
	Exam exam.Exam `json:"exam"`
}

// SimilarityHandler reports duplicate and near-duplicate questions in a
// structured exam.
func SimilarityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req similarityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json")
			return
		}
		if len(req.Exam.Questions) == 0 {
			writeError(w, http.StatusBadRequest, "exam has no questions to analyze")
			return
		}
		if len(req.Exam.Questions) < 2 {
			writeError(w, http.StatusBadRequest, "at least 2 questions are required for similarity analysis")
			return
		}

		writeJSON(w, http.StatusOK, similarity.Analyze(req.Exam.Questions))
	}
}
