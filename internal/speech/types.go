package speech

const (
	DefaultLanguage = "en"
	MIMEType        = "audio/mpeg"
)

// AudioClip is one synthesis result. Duration is in seconds; 0 means the
// length could not be determined.
type AudioClip struct {
	Data     []byte
	Duration float64
}
