// Package util provides generic utility functions for the utopia library.
//
// It includes slice operations, map key collection, one-shot deduplication,
// conditional application, and numeric rounding.
package util
