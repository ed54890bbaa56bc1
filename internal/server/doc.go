// Package server runs the stub upload service.
//
// It owns the HTTP listener lifecycle: startup, signal handling and graceful
// shutdown.
package server
