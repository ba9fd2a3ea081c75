package processor

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/textai/internal/normalizer"
)

var kindByExt = map[string]normalizer.Kind{
	".txt":  normalizer.KindText,
	".md":   normalizer.KindText,
	".pdf":  normalizer.KindPDF,
	".png":  normalizer.KindImage,
	".jpg":  normalizer.KindImage,
	".jpeg": normalizer.KindImage,
	".tif":  normalizer.KindImage,
	".tiff": normalizer.KindImage,
	".bmp":  normalizer.KindImage,
	".url":  normalizer.KindURL,
}

// Extensions lists the inbox file extensions the pipeline accepts.
func Extensions() []string {
	exts := make([]string, 0, len(kindByExt))
	for ext := range kindByExt {
		exts = append(exts, ext)
	}
	return exts
}

// Supported reports whether path has an accepted extension.
func Supported(path string) bool {
	_, ok := kindByExt[strings.ToLower(filepath.Ext(path))]
	return ok
}

// readSource loads an inbox file as a normalizer source. A .url file holds
// the address on its first non-empty line.
func readSource(path string) (normalizer.Source, error) {
	kind, ok := kindByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return normalizer.Source{}, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return normalizer.Source{}, fmt.Errorf("read %s: %w", path, err)
	}

	src := normalizer.Source{Kind: kind}
	switch kind {
	case normalizer.KindText:
		src.Text = string(data)
	case normalizer.KindURL:
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				src.URL = line
				break
			}
		}
	default:
		src.Data = data
	}
	return src, nil
}
