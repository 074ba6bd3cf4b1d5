// Package server provides the HTTP surface for the pattern catalogue,
// backed by Gin with HTTP/2 cleartext (h2c) support.
//
// Routes:
//
//   - GET  /api/v1/patterns            list all registered demos
//   - GET  /api/v1/patterns/:name      describe a single demo
//   - POST /api/v1/patterns/:name/run  run a demo and return its output
//   - GET  /healthz                    liveness probe
//   - GET  /version                    build version information
package server
