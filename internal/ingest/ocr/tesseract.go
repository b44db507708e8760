package ocr

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// Tesseract shells out to a local tesseract binary. Useful for offline
// deployments where the hosted API is unreachable.
type Tesseract struct {
	Lang    string
	Timeout time.Duration
}

func NewTesseract() *Tesseract {
	return &Tesseract{Lang: "eng", Timeout: 20 * time.Second}
}

func (t *Tesseract) ExtractPath(ctx context.Context, path string) (string, error) {
	if _, err := exec.LookPath("tesseract"); err != nil {
		return "", errors.New("tesseract not found in PATH")
	}
	args := []string{path, "stdout"}
	if t.Lang != "" {
		args = append(args, "-l", t.Lang)
	}
	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, "tesseract", args...)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", errors.New(stderr.String())
	}
	return out.String(), nil
}
