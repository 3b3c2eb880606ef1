package utils

import (
	"strconv"
	"strings"
)

// ParseOptionalFloat converts a user-entered numeric string to a float
// pointer. Blank or malformed input yields nil ("constraint absent").
func ParseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// ParseOptionalInt converts a user-entered numeric string to an int
// pointer. Blank or malformed input yields nil.
func ParseOptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &i
}
