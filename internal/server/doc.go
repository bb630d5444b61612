// Package server wires and runs the application's transport servers.
//
// It orchestrates the HTTP API and the gRPC health server: startup, signal
// handling, and graceful shutdown of all enabled transports.
package server
