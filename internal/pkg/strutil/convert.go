// Package strutil converts query string values.
package strutil

import "strconv"

// ConvertToInt parses s, returning 0 when it is not a number
func ConvertToInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// ConvertToInt64 parses s, returning 0 when it is not a number
func ConvertToInt64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// ConvertToBool parses s, returning nil when it is empty or not a boolean
func ConvertToBool(s string) *bool {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &v
}
