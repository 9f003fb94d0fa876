// Package server serves the site over HTTP with chi.
//
// Routes:
//
//	GET  /                   home page
//	GET  /{page}             any registered page
//	GET  /fragments/toast    toast fragment (?level=&message=)
//	POST /fragments/counter  counter fragment (form n, op)
//	GET  /static/*           files from server.static_dir
//	GET  /metrics            Prometheus metrics, when enabled
//	GET  /_dev/reload        live-reload websocket, when enabled
//	GET  /healthz            liveness probe
package server
