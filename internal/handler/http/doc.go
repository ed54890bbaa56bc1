// Package http implements the stub upload service.
//
// It accepts the same multipart batch upload the uploader sends to the
// remote service and answers with one JSON record per received file. It is
// meant for local development and for end-to-end tests of the client; it
// stores nothing.
package http
