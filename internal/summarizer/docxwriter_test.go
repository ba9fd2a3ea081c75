package summarizer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.docx")
	summary := "# Overview\n\nThe **main** point.\n- first\n- second\n"

	if err := WriteDocx("Summary", summary, path); err != nil {
		t.Fatalf("WriteDocx() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Error("docx output is not a zip archive")
	}
}

func TestDocxBytes(t *testing.T) {
	dir := t.TempDir()
	data, err := DocxBytes("Summary", "plain text summary", dir)
	if err != nil {
		t.Fatalf("DocxBytes() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("DocxBytes() returned no data")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("temp dir not cleaned up: %d entries", len(entries))
	}
}

func TestCleanMarkdownInline(t *testing.T) {
	if got := cleanMarkdownInline("**a** __b__ `c`"); got != "a b c" {
		t.Errorf("cleanMarkdownInline() = %q", got)
	}
}
