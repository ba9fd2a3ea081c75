package speech

import "context"

// Synthesizer converts text to encoded mp3 audio held in memory.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang string) (AudioClip, error)
}

// provider fetches encoded audio for a text from one TTS backend.
type provider interface {
	fetch(ctx context.Context, text, lang string) ([]byte, error)
}
