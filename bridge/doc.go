// Package bridge demonstrates the Bridge pattern: an abstraction and its
// implementation in separate hierarchies, connected by composition so each
// can vary independently.
//
// Intent: decouple an abstraction from its implementation so the two can
// vary independently.
//
// Applicability:
//   - Both the abstraction (what the application asks for) and the
//     implementation (which backend does it) need their own extension axis.
//   - Implementations should be swappable at runtime.
//
// Trade-offs: one more indirection and one more interface to maintain. In Go
// the pattern is mostly invisible — "accept an interface, hold it in a
// struct" is the default way to write this — which is itself the lesson.
//
// The demo runs the same query through a MySQL-flavored and a
// PostgreSQL-flavored driver behind one application-facing database type,
// switching drivers mid-run.
package bridge
