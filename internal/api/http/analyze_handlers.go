package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/examforge/examforge/internal/ctt"
	"github.com/examforge/examforge/internal/exam"
)

type analyzeRequest struct {
	Exam             exam.Exam              `json:"exam" validate:"required"`
	StudentResponses []exam.StudentResponse `json:"student_responses" validate:"required,min=2,dive"`
	CorrectAnswers   map[string]string      `json:"correct_answers" validate:"required,min=1"`
}

// AnalyzeHandler runs the CTT engine over a structured exam and a set
// of student responses.
func AnalyzeHandler(v *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json")
			return
		}
		if err := v.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}

		stats, err := ctt.Analyze(req.Exam, req.StudentResponses, req.CorrectAnswers)
		if err != nil {
			if errors.Is(err, ctt.ErrTooFewStudents) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "analysis failed: "+err.Error())
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}
