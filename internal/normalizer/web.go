package normalizer

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractURL fetches a page and joins the text of its <p> elements.
func (n *implNormalizer) extractURL(ctx context.Context, url string) Result {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return Result{Reason: ReasonInvalidURL}
	}

	text, err := n.fetchParagraphs(ctx, url)
	if err != nil {
		n.logger.Warn(ctx, "Failed to extract %s: %v", url, err)
		return Result{Reason: ReasonFetchFailed, Cause: err}
	}
	return Result{Text: text}
}

func (n *implNormalizer) fetchParagraphs(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", n.cfg.UserAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	// Error pages are not extracted; their <p> text is not the requested content.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch: unexpected status %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		paragraphs = append(paragraphs, s.Text())
	})
	return strings.Join(paragraphs, " "), nil
}
