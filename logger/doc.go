// Package logger provides structured logging for tool invocations
// using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields. The process launcher
// logs spawn, exit, and forced-termination events through this package.
//
// # Usage
//
//	log := logger.Get("process")
//	log.Info("spawned", logger.Fields(logger.FieldTool, "jlink", logger.FieldPid, 1234))
package logger
