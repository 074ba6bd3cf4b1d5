// Package catalog maintains the registry of runnable pattern demonstrations.
//
// Each pattern package registers a Demo in its init function; the CLI and the
// HTTP server resolve demos by name and run them against an io.Writer. The
// registry is safe for concurrent use and lists demos in a deterministic
// order (category, then name).
//
//	catalog.Register(demo)
//	out := &bytes.Buffer{}
//	err := catalog.Run(ctx, "strategy", out)
package catalog
