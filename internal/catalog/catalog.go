package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// MaxResults caps every filter result.
const MaxResults = 20

type MatchMode string

const (
	MatchSubstring MatchMode = "substring"
	MatchFuzzy     MatchMode = "fuzzy"
)

// ParseMatchMode accepts "" as substring.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchSubstring:
		return MatchSubstring, nil
	case MatchFuzzy:
		return MatchFuzzy, nil
	default:
		return "", fmt.Errorf("invalid match mode %q: must be %q or %q", s, MatchSubstring, MatchFuzzy)
	}
}

// Catalog is an immutable, sorted, duplicate-free list of provider names.
type Catalog struct {
	names []string
	mode  MatchMode
}

func New(names []string, mode MatchMode) *Catalog {
	sorted := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)
	if mode == "" {
		mode = MatchSubstring
	}
	return &Catalog{names: sorted, mode: mode}
}

// Names returns a copy of the full catalog.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func (c *Catalog) Len() int { return len(c.names) }

// Filter returns at most MaxResults entries matching query, in catalog order.
// An empty query matches everything.
func (c *Catalog) Filter(query string) []string {
	if query == "" {
		return c.head(c.names)
	}
	if c.mode == MatchFuzzy {
		return c.head(c.fuzzyMatches(query))
	}

	q := strings.ToLower(query)
	var out []string
	for _, n := range c.names {
		if strings.Contains(strings.ToLower(n), q) {
			out = append(out, n)
			if len(out) == MaxResults {
				break
			}
		}
	}
	return out
}

// fuzzyMatches keeps catalog order instead of fuzzy score order.
func (c *Catalog) fuzzyMatches(query string) []string {
	matches := fuzzy.FindFrom(strings.ToLower(query), nameSource(c.names))
	idx := make([]int, 0, len(matches))
	for _, m := range matches {
		idx = append(idx, m.Index)
	}
	sort.Ints(idx)

	out := make([]string, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.names[i])
	}
	return out
}

func (c *Catalog) head(names []string) []string {
	n := len(names)
	if n > MaxResults {
		n = MaxResults
	}
	out := make([]string, n)
	copy(out, names[:n])
	return out
}

type nameSource []string

func (s nameSource) Len() int            { return len(s) }
func (s nameSource) String(i int) string { return s[i] }
