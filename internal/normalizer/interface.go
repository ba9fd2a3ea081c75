package normalizer

import "context"

// Normalizer turns a text source into a single plain-text document.
type Normalizer interface {
	Normalize(ctx context.Context, src Source) (Result, error)
}
