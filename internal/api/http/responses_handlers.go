package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/examforge/examforge/internal/ctt"
	"github.com/examforge/examforge/internal/exam"
	"github.com/examforge/examforge/internal/responses"
)

// UploadResponsesHandler closes the loop: a structured exam, a correct
// answer map, and a student response CSV in one multipart request,
// returning the full CTT report.
func UploadResponsesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "csv file required")
			return
		}
		defer f.Close()
		if !strings.HasSuffix(strings.ToLower(hdr.Filename), ".csv") {
			writeError(w, http.StatusBadRequest, "only CSV files are accepted")
			return
		}

		var ex exam.Exam
		if err := json.Unmarshal([]byte(r.FormValue("exam_json")), &ex); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid exam_json: "+err.Error())
			return
		}

		var correct map[string]string
		if err := json.Unmarshal([]byte(r.FormValue("correct_answers_json")), &correct); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid correct_answers_json: "+err.Error())
			return
		}
		for k, v := range correct {
			correct[k] = strings.ToUpper(strings.TrimSpace(v))
		}

		records, err := responses.ParseCSV(f)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "csv parse error: "+err.Error())
			return
		}
		if len(records) < 2 {
			writeError(w, http.StatusUnprocessableEntity,
				fmt.Sprintf("need at least 2 student rows for analysis, found %d", len(records)))
			return
		}

		stats, err := ctt.Analyze(ex, records, correct)
		if err != nil {
			if errors.Is(err, ctt.ErrTooFewStudents) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "analysis error: "+err.Error())
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}
