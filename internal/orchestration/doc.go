// Package orchestration executes remote operations and normalizes their
// failures. It composes operations concurrently (InvokeAll) or strictly in
// order (InvokeSequentially), and reports activity through the injected
// Logger and Observer so that callers never depend on log output.
package orchestration
