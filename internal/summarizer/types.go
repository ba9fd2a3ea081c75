package summarizer

// Path reports which branch produced a summary.
type Path string

const (
	PathRemote Path = "remote"
	PathLocal  Path = "local"
)

const promptPrefix = "Summarize this:\n"

type Summary struct {
	Text string
	Path Path
	// RemoteErr is the swallowed remote failure that caused a local fallback.
	RemoteErr error
	// Chunks is the number of chunks summarized on the local path.
	Chunks int
	// FailedChunks lists the 1-based indexes replaced by a placeholder.
	FailedChunks []int
}
