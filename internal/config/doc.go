// Package config defines the logger settings file and provides helpers to
// load, validate and save it in YAML format.
//
// Config.LoggerConfig turns the settings into a logger.Config.
package config
