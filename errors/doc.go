// Package errors provides structured error types for the utopia library.
// It implements machine-readable error codes and the argument-validation
// guards used by the transform constructors.
package errors
