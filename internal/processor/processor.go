package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/textai/internal/summarizer"
	"golang.org/x/sync/errgroup"
)

// Process runs one document through normalize, summarize and synthesize,
// then archives it. Synthesis failure is logged and keeps the summary.
func (p *implProcessor) Process(ctx context.Context, path string) error {
	startTime := time.Now()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	p.logger.Info(ctx, "Processing document: %s", path)

	// Step 1: Normalize
	src, err := readSource(path)
	if err != nil {
		return err
	}
	res, err := p.deps.Normalizer.Normalize(ctx, src)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}
	if !res.OK() {
		return fmt.Errorf("normalize: %s", res.Reason)
	}
	if strings.TrimSpace(res.Text) == "" {
		return fmt.Errorf("normalize: %s has no text", path)
	}

	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Step 2: Summarize and synthesize in parallel
	var sum summarizer.Summary
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sum = p.deps.Summarizer.Summarize(gctx, res.Text, p.deps.APIKey)
		return p.writeSummary(gctx, name, sum)
	})
	g.Go(func() error {
		p.writeSpeech(gctx, name, res.Text)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// Step 3: Archive the source
	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move %s to archived folder: %v", path, err)
	}

	p.logger.Info(ctx, "Processed %s in %s (summary via %s)", path, time.Since(startTime), sum.Path)
	return nil
}

func (p *implProcessor) writeSummary(ctx context.Context, name string, sum summarizer.Summary) error {
	txtPath := filepath.Join(p.cfg.Paths.Output, name+".summary.txt")
	if err := os.WriteFile(txtPath, []byte(sum.Text), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	docxPath := filepath.Join(p.cfg.Paths.Output, name+".summary.docx")
	if err := summarizer.WriteDocx(name, sum.Text, docxPath); err != nil {
		p.cleanupTempFile(ctx, docxPath)
		return fmt.Errorf("write summary docx: %w", err)
	}

	p.logger.Info(ctx, "Summary written: %s", txtPath)
	return nil
}

func (p *implProcessor) writeSpeech(ctx context.Context, name, text string) {
	clip, err := p.deps.Synthesizer.Synthesize(ctx, text, p.cfg.Speech.Language)
	if err != nil {
		p.logger.Warn(ctx, "Speech synthesis failed for %s: %v", name, err)
		return
	}

	mp3Path := filepath.Join(p.cfg.Paths.Output, name+".mp3")
	if err := os.WriteFile(mp3Path, clip.Data, 0644); err != nil {
		p.cleanupTempFile(ctx, mp3Path)
		p.logger.Warn(ctx, "Write %s: %v", mp3Path, err)
		return
	}
	p.logger.Info(ctx, "Speech written: %s (%.1fs)", mp3Path, clip.Duration)
}

// ProcessBacklog processes every supported file already in the inbox,
// at most performance.max_concurrent at a time.
func (p *implProcessor) ProcessBacklog(ctx context.Context) error {
	entries, err := os.ReadDir(p.cfg.Paths.Input)
	if err != nil {
		return fmt.Errorf("read input dir: %w", err)
	}

	sem := newSemaphore(p.cfg.Performance.MaxConcurrent)
	g, gctx := errgroup.WithContext(ctx)

	for _, entry := range entries {
		if entry.IsDir() || !Supported(entry.Name()) {
			continue
		}
		path := filepath.Join(p.cfg.Paths.Input, entry.Name())

		if err := sem.acquire(gctx); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.release()
			if err := p.Process(gctx, path); err != nil {
				p.logger.Error(gctx, "Failed to process %s: %v", path, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
