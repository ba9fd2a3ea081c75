package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	ProviderGTranslate = "gtranslate"

	gtranslateBaseURL = "https://translate.google.com"
	// The translate_tts endpoint rejects longer inputs.
	gtranslateMaxChars = 100
)

type gtranslate struct {
	baseURL string
	client  *http.Client
}

func newGTranslate(baseURL string, client *http.Client) *gtranslate {
	if baseURL == "" {
		baseURL = gtranslateBaseURL
	}
	return &gtranslate{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// fetch requests each piece of the text in order and concatenates the
// mp3 streams.
func (g *gtranslate) fetch(ctx context.Context, text, lang string) ([]byte, error) {
	pieces := splitText(text, gtranslateMaxChars)

	var audio bytes.Buffer
	for i, piece := range pieces {
		if err := g.fetchPiece(ctx, &audio, piece, lang, i, len(pieces)); err != nil {
			return nil, fmt.Errorf("piece %d/%d: %w", i+1, len(pieces), err)
		}
	}
	return audio.Bytes(), nil
}

func (g *gtranslate) fetchPiece(ctx context.Context, w io.Writer, piece, lang string, idx, total int) error {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("q", piece)
	q.Set("tl", lang)
	q.Set("client", "tw-ob")
	q.Set("ttsspeed", "1")
	q.Set("total", strconv.Itoa(total))
	q.Set("idx", strconv.Itoa(idx))
	q.Set("textlen", strconv.Itoa(utf8.RuneCountInString(piece)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/translate_tts?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("translate_tts error: %s - %s", resp.Status, string(body))
	}

	_, err = io.Copy(w, resp.Body)
	return err
}

// splitText breaks text into pieces of at most max runes at whitespace.
// Words longer than max are cut.
func splitText(text string, max int) []string {
	var (
		pieces []string
		cur    strings.Builder
		curLen int
	)
	flush := func() {
		if curLen > 0 {
			pieces = append(pieces, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, word := range strings.Fields(text) {
		runes := []rune(word)
		for len(runes) > max {
			flush()
			pieces = append(pieces, string(runes[:max]))
			runes = runes[max:]
		}
		n := len(runes)
		if n == 0 {
			continue
		}
		if curLen > 0 && curLen+1+n > max {
			flush()
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(string(runes))
		curLen += n
	}
	flush()
	return pieces
}
