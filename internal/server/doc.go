// Package server wires and runs the application's HTTP server.
//
// It provides orchestration for the server lifecycle, including binding,
// signal handling, and graceful shutdown bounded by the configured timeout.
package server
