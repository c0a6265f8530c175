// Package utils provides common utility functions for the hub-sync application.
// It includes helpers for coercing loosely-typed table field values (as decoded
// from JSON) into strings and sequences, and other shared logic that doesn't fit
// into domain-specific packages.
package utils
