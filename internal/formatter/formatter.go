// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package formatter

import "strings"

// Separator is inserted between digit groups in [Result.Formatted].
const Separator = ' '

// GroupSize is the number of digits per displayed group.
const GroupSize = 4

// Result holds every value derived from one raw input string.
type Result struct {
	// Normalized contains only the decimal digits of the input, in order.
	Normalized string

	// Formatted is Normalized with a Separator before every digit whose
	// zero-based position is a positive multiple of GroupSize.
	Formatted string

	// DigitCount is len(Normalized).
	DigitCount int
}

// Empty reports whether the input contained no digits at all.
func (r Result) Empty() bool {
	return r.DigitCount == 0
}

// Format strips every character of raw that is not an ASCII digit 0-9 and
// groups the remaining digits for display.
func Format(raw string) Result {
	var normalized, formatted strings.Builder
	normalized.Grow(len(raw))
	formatted.Grow(len(raw) + len(raw)/GroupSize)

	count := 0
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c < '0' || c > '9' {
			continue
		}
		if count > 0 && count%GroupSize == 0 {
			formatted.WriteByte(Separator)
		}
		normalized.WriteByte(c)
		formatted.WriteByte(c)
		count++
	}

	return Result{
		Normalized: normalized.String(),
		Formatted:  formatted.String(),
		DigitCount: count,
	}
}

// Normalize is shorthand for Format(raw).Normalized.
func Normalize(raw string) string {
	return Format(raw).Normalized
}

// SeparatorCount returns how many separators Format inserts for a number of
// n digits.
func SeparatorCount(n int) int {
	if n <= 0 {
		return 0
	}
	return (n - 1) / GroupSize
}
