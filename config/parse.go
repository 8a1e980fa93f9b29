package config

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount reads a user-supplied price or monetary field. Thousands
// separators and a leading currency mark are tolerated; anything that still
// fails to parse, and anything negative or non-finite, falls back to 0.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseLeverage reads a leverage field. The "1:2000" and "x2000" spellings
// are accepted. Anything unparseable, and anything below 1, falls back to 1.
func ParseLeverage(s string) int {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimPrefix(strings.ToLower(s), "x")
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 {
		return 1
	}
	return v
}
