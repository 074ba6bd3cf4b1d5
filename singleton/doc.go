// Package singleton demonstrates the Singleton pattern: a single shared
// instance with one global access point, and what goes wrong when the
// initialization is not guarded.
//
// Intent: ensure a type has only one instance and provide a global point of
// access to it.
//
// Applicability:
//   - Exactly one instance must exist and be reachable from anywhere
//     (process-wide settings, a shared connection pool handle).
//
// Trade-offs: singletons are global state. They hide dependencies, complicate
// testing, and in Go are usually better expressed as an explicit value passed
// to the code that needs it. When one is genuinely needed, sync.Once is the
// whole implementation; the double-checked locking ceremony other languages
// need does not apply.
//
// Two variants are implemented. Instance guards initialization with
// sync.Once: the first caller constructs the settings, everyone else gets the
// same pointer. NaiveInstance checks then acts over an atomic pointer with a
// deliberate construction delay, so two concurrent callers can both construct
// and one instance is silently lost. The demo races two goroutines against
// each variant and prints the values each observed.
package singleton
