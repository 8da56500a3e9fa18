package collision

import (
	"github.com/arloliu/trklog/errs"
)

// Tracker assigns variable names to column indexes while a dataset index is built.
//
// Names are looked up by their 64-bit hash. Two different names with the same
// hash are a collision; the tracker then also keeps a name map so lookups stay
// exact. A name that repeats an earlier one is a duplicate; lookups resolve to
// its first occurrence.
type Tracker struct {
	byHash       map[uint64]int // hash → first column index
	names        []string       // column index → name
	duplicates   []int          // column indexes whose name repeats an earlier column
	hasCollision bool
}

// NewTracker creates a tracker sized for the given number of variables.
func NewTracker(capacity int) *Tracker {
	return &Tracker{
		byHash: make(map[uint64]int, capacity),
		names:  make([]string, 0, capacity),
	}
}

// Track records the next column's name and hash.
//
// Returns errs.ErrInvalidVariable if name is empty; the column is not recorded.
func (t *Tracker) Track(name string, hash uint64) error {
	if name == "" {
		return errs.ErrInvalidVariable
	}

	idx := len(t.names)
	t.names = append(t.names, name)

	existing, exists := t.byHash[hash]
	switch {
	case !exists:
		t.byHash[hash] = idx
	case t.names[existing] == name:
		t.duplicates = append(t.duplicates, idx)
	default:
		t.hasCollision = true
	}

	return nil
}

// HasCollision returns true if two different names shared a hash.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Duplicates returns the column indexes whose name repeats an earlier column.
func (t *Tracker) Duplicates() []int {
	return t.duplicates
}

// ByHash returns the hash → first column index map.
func (t *Tracker) ByHash() map[uint64]int {
	return t.byHash
}

// ByName builds a name → first column index map. Only needed when HasCollision is true.
func (t *Tracker) ByName() map[string]int {
	byName := make(map[string]int, len(t.names))
	for i, name := range t.names {
		if _, ok := byName[name]; !ok {
			byName[name] = i
		}
	}

	return byName
}

// Names returns the tracked names in column order.
func (t *Tracker) Names() []string {
	return t.names
}
