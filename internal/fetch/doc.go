// Package fetch builds remote operations backed by HTTP GET requests.
//
// Each constructor returns an orchestration.Operation; nothing is sent until
// the orchestrator invokes it. Non-2xx responses surface as *StatusError so
// the orchestrator can classify them as remote-status failures.
package fetch
