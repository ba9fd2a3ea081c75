package speech

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// probeDuration asks ffprobe for the container duration, reading the
// audio from stdin.
func (s *implSynthesizer) probeDuration(ctx context.Context, data []byte) (float64, error) {
	out, err := s.executor.ExecuteWithInput(ctx, bytes.NewReader(data), s.cfg.FFprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		"-i", "pipe:0",
	)
	if err != nil {
		return 0, err
	}

	d, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", strings.TrimSpace(out), err)
	}
	return d, nil
}
