package utils

import (
	"strconv"
	"strings"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseFloat converts string to *float64, nil when empty or unparsable.
// A nil result disables the filter branch that wanted the value.
func ParseFloat(value string) *float64 {
	if value == "" {
		return nil
	}

	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}

	return &result
}

// NormalizeCountryCode lower-cases and trims a country code.
// Applied on every write and every filter comparison.
func NormalizeCountryCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
