// Package logger provides structured logging based on Zap.
//
// New builds a logger from Config: the level picks the development preset for debug
// and the production preset otherwise, and the format selects json or console encoding.
//
// WithRayID attaches the request id stored by the rayid middleware, so every log line
// written while serving one request can be correlated.
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Catalog loaded", zap.Int("items", n))
package logger
