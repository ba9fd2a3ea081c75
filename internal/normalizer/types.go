package normalizer

import (
	"fmt"
	"strings"
)

// Kind identifies where a document comes from.
type Kind string

const (
	KindText  Kind = "Text"
	KindPDF   Kind = "PDF"
	KindURL   Kind = "URL"
	KindImage Kind = "Image"
)

// Kinds lists every supported source kind in selector order.
var Kinds = []Kind{KindText, KindPDF, KindURL, KindImage}

// ParseKind matches a source kind case-insensitively.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(string(k), strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown input method %q", s)
}

// Source is one user-provided input. Text and URL carry a string payload,
// PDF and Image a byte payload.
type Source struct {
	Kind Kind
	Text string
	URL  string
	Data []byte
}

// FailureReason tags the recoverable failures of URL extraction.
type FailureReason int

const (
	ReasonNone FailureReason = iota
	ReasonInvalidURL
	ReasonFetchFailed
)

const (
	SentinelInvalidURL  = "Invalid URL"
	SentinelFetchFailed = "Failed to extract content"
)

func (r FailureReason) String() string {
	switch r {
	case ReasonInvalidURL:
		return SentinelInvalidURL
	case ReasonFetchFailed:
		return SentinelFetchFailed
	default:
		return ""
	}
}

// Result is the normalized document, or a tagged failure.
type Result struct {
	Text   string
	Reason FailureReason
	// Cause is the underlying fetch or parse error for ReasonFetchFailed.
	Cause error
}

func (r Result) OK() bool {
	return r.Reason == ReasonNone
}

// String returns the document text, or the sentinel text of the failure.
func (r Result) String() string {
	if r.OK() {
		return r.Text
	}
	return r.Reason.String()
}
