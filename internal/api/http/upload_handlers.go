package http

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/examforge/examforge/internal/ingest"
	"github.com/examforge/examforge/internal/normalize"
	"github.com/examforge/examforge/internal/storage"
)

// UploadExamHandler runs the full ingestion pipeline: save the upload,
// extract raw text (OCR if needed), clean it, and normalize it into a
// structured exam.
func UploadExamHandler(store storage.UploadStore, svc *ingest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "file required")
			return
		}
		defer f.Close()

		ext := strings.ToLower(filepath.Ext(hdr.Filename))
		if !ingest.SupportedExt(ext) {
			writeError(w, http.StatusBadRequest, "unsupported file format "+ext)
			return
		}

		key := uuid.NewString() + ext
		if _, err := store.Put(key, f); err != nil {
			writeError(w, http.StatusInternalServerError, "file save error: "+err.Error())
			return
		}
		defer store.Remove(key)

		extraction, err := svc.ProcessFile(r.Context(), store.Path(key), ext)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "text extraction failed: "+err.Error())
			return
		}
		if strings.TrimSpace(extraction.RawText) == "" {
			writeError(w, http.StatusUnprocessableEntity,
				"no text could be extracted from the file; scanned documents need an OCR key")
			return
		}

		result := normalize.Normalize(extraction.RawText, hdr.Filename)
		writeJSON(w, http.StatusOK, result)
	}
}
