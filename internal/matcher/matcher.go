package matcher

import (
	"sort"
	"strings"
)

// Set is a case-insensitive collection of strings. Tag names, languages
// and release sources coming from different pipelines disagree on casing
// and surrounding whitespace, so every value is normalized on entry.
type Set map[string]struct{}

// Normalize lowercases and trims a value the way Set stores it.
func Normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// NewSet builds a Set from the given values, dropping empties.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts a value. Empty values are ignored.
func (s Set) Add(value string) {
	n := Normalize(value)
	if n == "" {
		return
	}
	s[n] = struct{}{}
}

// Contains reports whether the value is in the set.
func (s Set) Contains(value string) bool {
	_, ok := s[Normalize(value)]
	return ok
}

// ContainsAny reports whether at least one of the values is in the set.
func (s Set) ContainsAny(values []string) bool {
	for _, v := range values {
		if s.Contains(v) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every value is in the set. An empty slice
// is trivially contained.
func (s Set) ContainsAll(values []string) bool {
	for _, v := range values {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// Union merges another set into a new one, leaving both inputs untouched.
func (s Set) Union(other Set) Set {
	merged := make(Set, len(s)+len(other))
	for v := range s {
		merged[v] = struct{}{}
	}
	for v := range other {
		merged[v] = struct{}{}
	}
	return merged
}

// Values returns the normalized members in sorted order.
func (s Set) Values() []string {
	values := make([]string, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}

// SplitList splits a comma-separated parameter into trimmed, non-empty
// parts. Filter conditions carry multi-value parameters in this form.
func SplitList(param string) []string {
	if strings.TrimSpace(param) == "" {
		return nil
	}
	raw := strings.Split(param, ",")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
