// Package dev implements the hashnav development server.
//
// The server serves a built wasm app directory (index.html, app.wasm,
// assets) and keeps connected browsers in sync: a polling watcher
// detects changes in the directory and a WebSocket hub broadcasts
// reload messages, with CSS changes applied in place and everything
// else triggering a full reload. Optional Prometheus metrics and
// OpenTelemetry tracing cover the request path.
package dev
