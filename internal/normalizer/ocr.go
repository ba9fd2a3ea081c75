package normalizer

import (
	"bytes"
	"context"
)

// extractImage runs tesseract on the image bytes, read from stdin.
func (n *implNormalizer) extractImage(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	n.logger.Debug(ctx, "Running OCR on %d bytes (lang %s)", len(data), n.cfg.TesseractLang)
	return n.executor.ExecuteWithInput(ctx, bytes.NewReader(data), n.cfg.TesseractPath,
		"stdin", "stdout",
		"-l", n.cfg.TesseractLang,
	)
}
