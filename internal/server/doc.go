// Package server runs the relay's HTTP server and background workers.
//
// It handles startup, signal handling, and graceful shutdown.
package server
