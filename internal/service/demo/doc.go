// Package demo implements the jsonlog-demo command: it builds a logger from
// the settings file and command-line overrides, then writes a fixed series of
// sample records through it.
package demo
