// Package server runs the transports of the notes service: the REST API and,
// when an address is configured, the gRPC health endpoint. Both are started
// together and stopped together on SIGINT or SIGTERM, with a bounded grace
// period for in-flight requests.
package server
