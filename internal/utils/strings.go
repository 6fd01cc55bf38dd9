package utils

import (
	"strings"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeParam lowercases and trims a query parameter for comparison.
func NormalizeParam(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
