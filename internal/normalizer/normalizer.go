package normalizer

import (
	"context"
	"fmt"
)

// Normalize dispatches on the source kind. Only URL extraction reports
// failures through Result; PDF and OCR errors are returned as-is.
func (n *implNormalizer) Normalize(ctx context.Context, src Source) (Result, error) {
	switch src.Kind {
	case KindText:
		return Result{Text: src.Text}, nil

	case KindPDF:
		text, err := n.extractPDF(ctx, src.Data)
		if err != nil {
			return Result{}, fmt.Errorf("extract pdf: %w", err)
		}
		return Result{Text: text}, nil

	case KindURL:
		return n.extractURL(ctx, src.URL), nil

	case KindImage:
		text, err := n.extractImage(ctx, src.Data)
		if err != nil {
			return Result{}, fmt.Errorf("extract image: %w", err)
		}
		return Result{Text: text}, nil

	default:
		return Result{}, fmt.Errorf("unsupported source kind %q", src.Kind)
	}
}
