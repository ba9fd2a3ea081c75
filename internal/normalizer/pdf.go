package normalizer

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var rePages = regexp.MustCompile(`Pages:\s+(\d+)`)

// extractPDF spools the document to a temp file, then pulls text page by
// page with pdftotext and joins the pages with newlines.
func (n *implNormalizer) extractPDF(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	path, err := n.spool(data, "doc-*.pdf")
	if err != nil {
		return "", err
	}
	defer n.removeTemp(ctx, path)

	totalPages, err := n.numPages(ctx, path)
	if err != nil {
		return "", err
	}
	n.logger.Debug(ctx, "PDF has %d pages", totalPages)

	pages := make([]string, 0, totalPages)
	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		out, err := n.executor.Execute(ctx, n.cfg.PdftotextPath,
			"-f", strconv.Itoa(pageNum),
			"-l", strconv.Itoa(pageNum),
			"-enc", "UTF-8", "-nopgbrk",
			path, "-")
		if err != nil {
			return "", fmt.Errorf("pdftotext page %d: %w", pageNum, err)
		}
		pages = append(pages, strings.TrimRight(out, "\n"))
	}

	return strings.Join(pages, "\n"), nil
}

// numPages reads the page count reported by pdfinfo.
func (n *implNormalizer) numPages(ctx context.Context, path string) (int, error) {
	out, err := n.executor.Execute(ctx, n.cfg.PdfinfoPath, path)
	if err != nil {
		return 0, fmt.Errorf("pdfinfo: %w", err)
	}

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		if m := rePages.FindStringSubmatch(scanner.Text()); len(m) == 2 {
			return strconv.Atoi(m[1])
		}
	}
	return 0, fmt.Errorf("unable to determine page count from pdfinfo")
}

func (n *implNormalizer) spool(data []byte, pattern string) (string, error) {
	if err := os.MkdirAll(n.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	f, err := os.CreateTemp(n.tempDir, pattern)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	return f.Name(), nil
}

func (n *implNormalizer) removeTemp(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		n.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	}
}
