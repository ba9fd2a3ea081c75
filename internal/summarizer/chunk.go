package summarizer

import "strings"

// ChunkText splits text into windows of maxWords words, each starting
// maxWords-overlap words after the previous one. Words are rejoined with
// single spaces. Walking stops once a window reaches the last word, so a
// text of at most maxWords words is a single chunk. Empty text yields no
// chunks.
func ChunkText(text string, maxWords, overlap int) []string {
	words := strings.Fields(text)
	if maxWords <= 0 {
		maxWords = 1
	}
	step := maxWords - overlap
	if step < 1 {
		step = 1
	}

	var chunks []string
	for i := 0; i < len(words); i += step {
		end := i + maxWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
		if end == len(words) {
			break
		}
	}
	return chunks
}
