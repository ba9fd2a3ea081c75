package server

import (
	"context"
	"net/http"
)

// Server is the interactive web UI.
type Server interface {
	// Run serves until ctx is cancelled, then shuts down gracefully.
	Run(ctx context.Context) error
	Handler() http.Handler
}
