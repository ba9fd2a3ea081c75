package processor

import "context"

// Processor turns one inbox document into summary and speech files.
type Processor interface {
	Process(ctx context.Context, path string) error
	// ProcessBacklog handles documents already sitting in the inbox.
	ProcessBacklog(ctx context.Context) error
}
