package util

import (
	"iter"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// GetKeys returns the map's keys in ascending order.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func Min[A constraints.Ordered](a A, b A) A {
	if a > b {
		return b
	}
	return a
}

func Max[A constraints.Ordered](a A, b A) A {
	if a < b {
		return b
	}
	return a
}

// Clamp pins v into [lo, hi].
func Clamp[A constraints.Ordered](v, lo, hi A) A {
	return Max(lo, Min(v, hi))
}

// Take pulls at most n values from seq.
func Take[A any](seq iter.Seq[A], n int) []A {
	var res []A
	if n <= 0 {
		return res
	}
	for v := range seq {
		res = append(res, v)
		if len(res) == n {
			break
		}
	}
	return res
}

// SplitTokens splits on commas and whitespace, dropping empty pieces, so
// "C4, E4 G4" and "C4,E4,G4" read the same.
func SplitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// JoinStrings renders any Stringer slice with sep.
func JoinStrings[A interface{ String() string }](values []A, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, sep)
}
