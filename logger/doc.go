// Package logger provides structured logging for the pattern catalogue,
// backed by zerolog.
//
// Demos keep two output channels apart: illustrative output (what the
// original pattern examples print) goes to the run writer, while operational
// logs (demo started, demo failed, server lifecycle) go through this package.
//
//	log := logger.NewDefault("patterns")
//	log.WithComponent("catalog").Info("Demo registered", logger.Fields("demo", name))
package logger
