// Package config provides configuration loading and validation for the
// tool façade.
//
// It uses Viper to load configuration from files and environment
// variables, with godotenv for .env support. Settings cover tool
// locations (jlink/jar overrides, JAVA_HOME), execution defaults
// (timeout, grace period, environment policy), and logging.
//
// # Usage
//
//	var cfg config.Config
//	err := config.Load("railroad", &cfg)
//
// Environment variables override file values using the RAILROAD_ prefix
// with underscore-separated paths (e.g., RAILROAD_EXEC_TIMEOUT).
package config
