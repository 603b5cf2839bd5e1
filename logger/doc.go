// Package logger provides zerolog-based logging for the utopia library.
//
// The library's core transforms never log; the only in-tree consumer is the
// inspect debugging helper. The package is exported so embedding programs
// can route inspect output through their own configuration.
package logger
