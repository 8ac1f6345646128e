// Package http exposes a read-only board of the restaurant over HTTP with
// echo, and pushes the kitchen board to WebSocket clients whenever the model
// changes.
//
// Routes:
//
//	GET /health
//	GET /api/v1/tables
//	GET /api/v1/tables/:table/seats/:seat/order
//	GET /api/v1/kitchen
//	GET /api/v1/kitchen/feed   (WebSocket)
//
// Nothing here mutates the model. Gestures come from the console.
package http
