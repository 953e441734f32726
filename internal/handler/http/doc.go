// Package http implements the HTTP transport layer of the application.
//
// It exposes the route table, request handlers, and middleware served to the
// game client. Cross-cutting concerns such as request tracing, access
// logging, panic recovery and response compression are handled in this
// package before requests are delegated to the service layer. Every request
// that matches no route, or matches a path with another method, receives an
// empty player data delta.
package http
