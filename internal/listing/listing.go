// Package listing implements the in-memory filter/sort/search pipeline shared
// by every catalog and management listing in the marketplace. Given a fetched
// collection and the active criteria it derives the records to render, in
// order, without ever mutating the source slice. Deriving is a pure function:
// identical inputs always produce the identical output, and an empty result
// is a valid outcome rather than an error.
package listing

import (
	"slices"
	"strings"
	"time"
)

// MatchAll is the sentinel value that disables a categorical filter.
const MatchAll = "all"

// TriState is a boolean filter that can also be disabled.
type TriState int

const (
	// Either disables the filter; both true and false records pass.
	Either TriState = iota
	// True passes only records whose flag is set.
	True
	// False passes only records whose flag is clear.
	False
)

// ParseTriState maps a query-string value onto a TriState. Empty and "all"
// leave the filter disabled.
func ParseTriState(s string) TriState {
	switch strings.ToLower(s) {
	case "true", "yes", "1":
		return True
	case "false", "no", "0":
		return False
	default:
		return Either
	}
}

// Filter is one active criterion. All filters on a Criteria are ANDed.
type Filter[T any] interface {
	matches(item T) bool
}

// Match is a categorical equality filter. The MatchAll sentinel (or an empty
// value) disables it.
type Match[T any] struct {
	Value string
	Key   func(T) string
}

func (f Match[T]) matches(item T) bool {
	if f.Value == "" || strings.EqualFold(f.Value, MatchAll) {
		return true
	}

	return strings.EqualFold(f.Key(item), f.Value)
}

// Range is an inclusive numeric range filter. A record whose key is absent is
// excluded, since it cannot satisfy a numeric constraint. Min or Max may be
// nil to leave that bound open.
type Range[T any] struct {
	Min *float64
	Max *float64
	Key func(T) (float64, bool)
}

func (f Range[T]) matches(item T) bool {
	if f.Min == nil && f.Max == nil {
		return true
	}
	v, ok := f.Key(item)
	if !ok {
		return false
	}
	if f.Min != nil && v < *f.Min {
		return false
	}
	if f.Max != nil && v > *f.Max {
		return false
	}

	return true
}

// Threshold passes records whose numeric key is at least Min. Records lacking
// the key are excluded. A nil Min disables the filter.
type Threshold[T any] struct {
	Min *float64
	Key func(T) (float64, bool)
}

func (f Threshold[T]) matches(item T) bool {
	if f.Min == nil {
		return true
	}
	v, ok := f.Key(item)
	if !ok {
		return false
	}

	return v >= *f.Min
}

// Flag filters on a boolean field with a tri-state control.
type Flag[T any] struct {
	State TriState
	Key   func(T) bool
}

func (f Flag[T]) matches(item T) bool {
	switch f.State {
	case True:
		return f.Key(item)
	case False:
		return !f.Key(item)
	default:
		return true
	}
}

// Search is a case-insensitive substring filter across one or more string
// fields. A record passes when any field contains the term. An empty term
// disables the filter.
type Search[T any] struct {
	Term   string
	Fields []func(T) string
}

func (f Search[T]) matches(item T) bool {
	term := strings.ToLower(strings.TrimSpace(f.Term))
	if term == "" {
		return true
	}
	for _, field := range f.Fields {
		if strings.Contains(strings.ToLower(field(item)), term) {
			return true
		}
	}

	return false
}

// Sort orders the derived list. The comparison is applied with a stable sort,
// so records that compare equal keep their original relative order.
type Sort[T any] struct {
	compare func(a, b T) int
}

// reverse flips a comparison for descending order.
func reverse[T any](cmp func(a, b T) int) func(a, b T) int {
	return func(a, b T) int { return -cmp(a, b) }
}

// ByNumber sorts on a numeric key. Records lacking the key compare lowest,
// so they collect at the start ascending and at the end descending.
func ByNumber[T any](key func(T) (float64, bool), descending bool) *Sort[T] {
	cmp := func(a, b T) int {
		av, aok := key(a)
		bv, bok := key(b)
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	}
	if descending {
		cmp = reverse(cmp)
	}

	return &Sort[T]{compare: cmp}
}

// ByString sorts on a string key, case-insensitively.
func ByString[T any](key func(T) string, descending bool) *Sort[T] {
	cmp := func(a, b T) int {
		return strings.Compare(strings.ToLower(key(a)), strings.ToLower(key(b)))
	}
	if descending {
		cmp = reverse(cmp)
	}

	return &Sort[T]{compare: cmp}
}

// ByTime sorts on a timestamp key. Zero timestamps compare lowest.
// descending=true yields newest-first.
func ByTime[T any](key func(T) time.Time, descending bool) *Sort[T] {
	cmp := func(a, b T) int {
		return key(a).Compare(key(b))
	}
	if descending {
		cmp = reverse(cmp)
	}

	return &Sort[T]{compare: cmp}
}

// Criteria bundles the active filters, the search term and the sort for one
// derivation pass.
type Criteria[T any] struct {
	Filters []Filter[T]
	Search  *Search[T]
	Sort    *Sort[T]
}

func (c Criteria[T]) matches(item T) bool {
	for _, f := range c.Filters {
		if !f.matches(item) {
			return false
		}
	}
	if c.Search != nil && !c.Search.matches(item) {
		return false
	}

	return true
}

// Apply derives the sublist of items that satisfies every active criterion,
// ordered by the sort. The input slice is never modified; the result is a
// fresh slice even when all records pass.
func Apply[T any](items []T, c Criteria[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if c.matches(item) {
			out = append(out, item)
		}
	}
	if c.Sort != nil {
		slices.SortStableFunc(out, c.Sort.compare)
	}

	return out
}

// Page slices a derived list for offset pagination. Out-of-range pages yield
// an empty, non-nil slice.
func Page[T any](items []T, page, perPage int) []T {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		return []T{}
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := min(start+perPage, len(items))

	return items[start:end]
}

// Float is a convenience for optional numeric bounds parsed from queries.
func Float(v float64) *float64 {
	return &v
}
