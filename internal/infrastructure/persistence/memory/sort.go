package memory

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// sortByCreation orders entities oldest-first, with ID as a tiebreaker so
// listings are deterministic across runs despite map iteration order.
func sortByCreation[T any](items []T, at func(T) (time.Time, uuid.UUID)) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := at(items[i])
		tj, idj := at(items[j])
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return idi.String() < idj.String()
	})
}
