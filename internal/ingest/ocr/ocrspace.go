package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const defaultOCRSpaceURL = "https://api.ocr.space/parse/image"

// OCRSpace calls the hosted OCR.space API (https://ocr.space/ocrapi).
// Engine 2 handles complex layouts better than the default.
type OCRSpace struct {
	APIKey   string
	Endpoint string
	Timeout  time.Duration
	HTTP     *http.Client
}

func NewOCRSpace(apiKey string) *OCRSpace {
	return &OCRSpace{
		APIKey:   apiKey,
		Endpoint: defaultOCRSpaceURL,
		Timeout:  60 * time.Second,
		HTTP:     http.DefaultClient,
	}
}

type ocrSpaceResponse struct {
	IsErroredOnProcessing bool            `json:"IsErroredOnProcessing"`
	ErrorMessage          json.RawMessage `json:"ErrorMessage"`
	ParsedResults         []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
}

func (c *OCRSpace) ExtractPath(ctx context.Context, path string) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("ocr.space api key not set; set OCR_SPACE_API_KEY")
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fields := map[string]string{
		"apikey":            c.APIKey,
		"language":          "eng",
		"isOverlayRequired": "false",
		"detectOrientation": "true",
		"scale":             "true",
		"OCREngine":         "2",
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return "", err
		}
	}
	part, err := mw.CreateFormFile("filename", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = defaultOCRSpaceURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	httpc := c.HTTP
	if httpc == nil {
		httpc = http.DefaultClient
	}
	resp, err := httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocr.space request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ocr.space returned status %d", resp.StatusCode)
	}

	var parsed ocrSpaceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("ocr.space response: %w", err)
	}
	if parsed.IsErroredOnProcessing {
		return "", fmt.Errorf("ocr.space api error: %s", flattenMessage(parsed.ErrorMessage))
	}
	if len(parsed.ParsedResults) == 0 {
		return "", fmt.Errorf("ocr.space returned no parsed results")
	}

	texts := make([]string, len(parsed.ParsedResults))
	for i, pr := range parsed.ParsedResults {
		texts[i] = pr.ParsedText
	}
	return strings.TrimSpace(strings.Join(texts, "\n")), nil
}

// flattenMessage handles the API's habit of returning ErrorMessage as
// either a string or a list of strings.
func flattenMessage(raw json.RawMessage) string {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, " | ")
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}
	return "unknown OCR error"
}
