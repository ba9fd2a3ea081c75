package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Synthesize renders text at normal speed. Failures are returned to the
// caller; there is no fallback provider.
func (s *implSynthesizer) Synthesize(ctx context.Context, text, lang string) (AudioClip, error) {
	if strings.TrimSpace(text) == "" {
		return AudioClip{}, errors.New("empty text")
	}
	if lang == "" {
		lang = s.cfg.Language
	}
	if lang == "" {
		lang = DefaultLanguage
	}

	s.logger.Info(ctx, "[TTS] Synthesizing %d chars (lang %s, provider %s)", len(text), lang, s.cfg.Provider)

	data, err := s.provider.fetch(ctx, text, lang)
	if err != nil {
		return AudioClip{}, fmt.Errorf("synthesize: %w", err)
	}

	clip := AudioClip{Data: data}
	if s.executor != nil {
		d, err := s.probeDuration(ctx, data)
		if err != nil {
			s.logger.Warn(ctx, "[TTS] Could not probe audio duration: %v", err)
		} else {
			clip.Duration = d
		}
	}

	s.logger.Info(ctx, "[TTS] Generated %d bytes (%.2fs)", len(clip.Data), clip.Duration)
	return clip, nil
}
