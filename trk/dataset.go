package trk

import (
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/trklog/errs"
	"github.com/arloliu/trklog/internal/collision"
	"github.com/arloliu/trklog/internal/hash"
	"github.com/arloliu/trklog/section"
)

// Column is the ordered sequence of samples of one variable, one per row.
type Column []float64

// Point is one (x, y) sample pair.
type Point struct {
	X float64
	Y float64
}

// Dataset is a decoded log: the variable descriptors and one Column per descriptor.
//
// Column i belongs to descriptor i and all columns have Len elements. A Dataset
// is read-only; slices returned by its methods must not be modified.
type Dataset struct {
	formatTag   section.FormatTag
	descriptors []section.VariableDescriptor
	columns     []Column
	rows        int
	names       []string
	// duplicates holds the columns whose name repeats an earlier column.
	duplicates []int

	// byHash maps hash.ID(name) to the first column with that name.
	byHash map[uint64]int
	// byName replaces byHash when two names share a hash.
	byName map[string]int
}

func newDataset(h section.Header, columns []Column) (*Dataset, error) {
	return buildDataset(h, columns, hash.ID)
}

func buildDataset(h section.Header, columns []Column, nameHash func(string) uint64) (*Dataset, error) {
	if len(columns) != len(h.Descriptors) {
		return nil, fmt.Errorf("%w: %d columns for %d descriptors",
			errs.ErrRowWidthMismatch, len(columns), len(h.Descriptors))
	}

	ds := &Dataset{
		formatTag:   h.FormatTag,
		descriptors: h.Descriptors,
		columns:     columns,
	}
	if len(columns) > 0 {
		ds.rows = len(columns[0])
	}

	tracker := collision.NewTracker(len(h.Descriptors))
	for i, d := range h.Descriptors {
		if len(columns[i]) != ds.rows {
			return nil, fmt.Errorf("%w: column %q has %d samples, expected %d",
				errs.ErrRowWidthMismatch, d.Name, len(columns[i]), ds.rows)
		}
		if err := tracker.Track(d.Name, nameHash(d.Name)); err != nil {
			return nil, fmt.Errorf("descriptor %d: %w", i, err)
		}
	}

	ds.names = tracker.Names()
	ds.duplicates = tracker.Duplicates()
	ds.byHash = tracker.ByHash()
	if tracker.HasCollision() {
		ds.byName = tracker.ByName()
	}

	return ds, nil
}

// FormatTag returns the format tag stored at the start of the log.
func (ds *Dataset) FormatTag() section.FormatTag {
	return ds.formatTag
}

// Descriptors returns the variable descriptors in row order.
func (ds *Dataset) Descriptors() []section.VariableDescriptor {
	return ds.descriptors
}

// Columns returns all columns; Columns()[i] belongs to Descriptors()[i].
func (ds *Dataset) Columns() []Column {
	return ds.columns
}

// Len returns the number of decoded rows.
func (ds *Dataset) Len() int {
	return ds.rows
}

// VariableCount returns the number of variables.
func (ds *Dataset) VariableCount() int {
	return len(ds.descriptors)
}

// Names returns the variable names in row order.
func (ds *Dataset) Names() []string {
	return slices.Clone(ds.names)
}

// Index returns the column index of the named variable.
//
// If a name occurs more than once, the first occurrence is returned.
func (ds *Dataset) Index(name string) (int, bool) {
	if ds.byName != nil {
		idx, ok := ds.byName[name]
		if !ok {
			return -1, false
		}

		return idx, true
	}

	idx, ok := ds.byHash[hash.ID(name)]
	if !ok || ds.descriptors[idx].Name != name {
		return -1, false
	}

	return idx, true
}

// Column returns the samples of the named variable.
func (ds *Dataset) Column(name string) (Column, error) {
	idx, ok := ds.Index(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrVariableNotFound, name)
	}

	return ds.columns[idx], nil
}

// Descriptor returns the descriptor of the named variable.
func (ds *Dataset) Descriptor(name string) (section.VariableDescriptor, error) {
	idx, ok := ds.Index(name)
	if !ok {
		return section.VariableDescriptor{}, fmt.Errorf("%w: %q", errs.ErrVariableNotFound, name)
	}

	return ds.descriptors[idx], nil
}

// All returns an iterator over the (row index, sample) pairs of the named variable.
// It yields nothing if the variable does not exist.
func (ds *Dataset) All(name string) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		idx, ok := ds.Index(name)
		if !ok {
			return
		}

		for i, v := range ds.columns[idx] {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Rows returns an iterator over the rows in arrival order.
//
// The yielded slice is reused between iterations; copy it to retain it.
func (ds *Dataset) Rows() iter.Seq2[int, []float64] {
	return func(yield func(int, []float64) bool) {
		row := make([]float64, len(ds.columns))
		for r := 0; r < ds.rows; r++ {
			for i, col := range ds.columns {
				row[i] = col[r]
			}
			if !yield(r, row) {
				return
			}
		}
	}
}

// XY pairs the samples of two variables row by row, e.g. position over time.
//
// Returns errs.ErrVariableNotFound if either name is unknown.
func (ds *Dataset) XY(xName, yName string) ([]Point, error) {
	xs, err := ds.Column(xName)
	if err != nil {
		return nil, err
	}

	ys, err := ds.Column(yName)
	if err != nil {
		return nil, err
	}

	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}

	return points, nil
}

// WidthMismatches returns the descriptors whose declared width differs from
// the width used to decode their row fields.
func (ds *Dataset) WidthMismatches() []section.VariableDescriptor {
	var mismatches []section.VariableDescriptor
	for _, d := range ds.descriptors {
		if !d.DeclaredWidthMatches() {
			mismatches = append(mismatches, d)
		}
	}

	return mismatches
}

// DuplicateNames returns the descriptors whose name repeats an earlier variable.
// Lookups by name never reach them; use Columns to read their samples.
func (ds *Dataset) DuplicateNames() []section.VariableDescriptor {
	if len(ds.duplicates) == 0 {
		return nil
	}

	dups := make([]section.VariableDescriptor, len(ds.duplicates))
	for i, idx := range ds.duplicates {
		dups[i] = ds.descriptors[idx]
	}

	return dups
}
