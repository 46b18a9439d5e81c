// Package server serves the Fibonacci form page, a small JSON API and the
// Prometheus metrics endpoint.
//
// Routes:
//
//	GET  /               form page
//	POST /               form submission (field "n")
//	GET  /api/sequence   ?n=  sequence as JSON
//	GET  /api/weather    ?city=  current weather through the orchestrator
//	GET  /metrics        Prometheus exposition
package server
