// Package server runs the application's HTTP server lifecycle: startup,
// OS signal handling, and graceful shutdown.
package server
