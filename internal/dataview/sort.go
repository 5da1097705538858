package dataview

import (
	"sort"
	"strings"
	"time"
)

// Direction is a sort direction. The zero value means no direction.
type Direction int

const (
	Asc Direction = iota + 1
	Desc
)

func (d Direction) String() string {
	switch d {
	case Asc:
		return "asc"
	case Desc:
		return "desc"
	default:
		return ""
	}
}

// ParseDirection reads a direction from its wire form. Anything other
// than "desc" is ascending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, "desc") {
		return Desc
	}
	return Asc
}

// SortState is the single active sort: one column key and a direction.
// The zero value means no active sort.
type SortState struct {
	Key       string
	Direction Direction
}

// Active reports whether a sort is in effect.
func (s SortState) Active() bool {
	return s.Key != "" && s.Direction != 0
}

// NextSortState advances the sort state for a clicked column key. The
// cycle per key is none, ascending, descending, none again. Clicking a
// different key restarts the cycle at ascending.
func NextSortState(cur SortState, key string) SortState {
	if cur.Key != key {
		return SortState{Key: key, Direction: Asc}
	}
	switch cur.Direction {
	case Asc:
		return SortState{Key: key, Direction: Desc}
	case Desc:
		return SortState{}
	default:
		return SortState{Key: key, Direction: Asc}
	}
}

// SortRows returns a sorted copy of rows ordered by the active sort. The
// sort is stable, so ties and unresolved values keep their original
// relative order. An inactive state returns rows unchanged.
func SortRows[T any](rows []T, field FieldFunc[T], s SortState) []T {
	if !s.Active() || field == nil {
		return rows
	}
	out := make([]T, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		a, aok := field(out[i], s.Key)
		b, bok := field(out[j], s.Key)
		c := compareValues(a, aok, b, bok)
		if s.Direction == Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// compareValues orders two resolved cell values. Unresolved values
// compare equal to everything, so the stable sort leaves them in place.
// Matching scalar kinds compare natively; mixed kinds fall back to their
// display strings.
func compareValues(a any, aok bool, b any, bok bool) int {
	if !aok || !bok {
		return 0
	}
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return strings.Compare(as, bs)
		}
	}
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt)
		}
	}
	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ab == bb:
				return 0
			case bb:
				return -1
			default:
				return 1
			}
		}
	}
	return strings.Compare(Format(a), Format(b))
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
