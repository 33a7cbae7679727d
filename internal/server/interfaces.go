package server

import "context"

// Server is one transport of the notes API. RunServer blocks while serving;
// Shutdown drains in-flight requests until ctx is done.
type Server interface {
	RunServer()
	Shutdown(ctx context.Context)
}
