// Package server wires the cell gRPC service, its health checks, and the
// optional metrics endpoint into a runnable process.
package server
