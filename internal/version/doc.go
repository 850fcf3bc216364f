// Package version exposes build metadata for the jsonlog binaries.
//
// Version, Commit and BuildTime are injected via ldflags. Fields renders them
// as log fields so a process can announce its build on startup.
package version
