package trk

import (
	"testing"

	"github.com/arloliu/trklog/errs"
	"github.com/arloliu/trklog/format"
	"github.com/arloliu/trklog/section"
	"github.com/stretchr/testify/require"
)

func cannonDataset(t *testing.T) *Dataset {
	t.Helper()

	ds, err := decode(t, cannonLog(
		[3]float64{0, 0, 0},
		[3]float64{0.1, 1.2, 0.4},
		[3]float64{0.2, 2.4, 0.7},
	))
	require.NoError(t, err)

	return ds
}

func TestDataset_Lookup(t *testing.T) {
	ds := cannonDataset(t)

	require.Equal(t, cannonNames, ds.Names())

	for i, name := range cannonNames {
		idx, ok := ds.Index(name)
		require.True(t, ok)
		require.Equal(t, i, idx)
	}

	_, ok := ds.Index("dyn.cannon.pos[2]")
	require.False(t, ok)

	col, err := ds.Column("dyn.cannon.pos[0]")
	require.NoError(t, err)
	require.Equal(t, Column{0, 1.2, 2.4}, col)

	_, err = ds.Column("missing")
	require.ErrorIs(t, err, errs.ErrVariableNotFound)

	d, err := ds.Descriptor("sys.exec.out.time")
	require.NoError(t, err)
	require.Equal(t, "s", d.Unit)

	_, err = ds.Descriptor("missing")
	require.ErrorIs(t, err, errs.ErrVariableNotFound)
}

func TestDataset_XY(t *testing.T) {
	ds := cannonDataset(t)

	points, err := ds.XY("sys.exec.out.time", "dyn.cannon.pos[1]")
	require.NoError(t, err)
	require.Equal(t, []Point{{0, 0}, {0.1, 0.4}, {0.2, 0.7}}, points)

	_, err = ds.XY("sys.exec.out.time", "missing")
	require.ErrorIs(t, err, errs.ErrVariableNotFound)

	_, err = ds.XY("missing", "sys.exec.out.time")
	require.ErrorIs(t, err, errs.ErrVariableNotFound)
}

func TestDataset_All(t *testing.T) {
	ds := cannonDataset(t)

	var got []float64
	for i, v := range ds.All("dyn.cannon.pos[0]") {
		require.Equal(t, len(got), i)
		got = append(got, v)
	}
	require.Equal(t, []float64{0, 1.2, 2.4}, got)

	for range ds.All("missing") {
		t.Fatal("unknown variable must yield nothing")
	}

	count := 0
	for range ds.All("sys.exec.out.time") {
		count++
		break
	}
	require.Equal(t, 1, count)
}

func TestDataset_Rows(t *testing.T) {
	ds := cannonDataset(t)

	var rows [][]float64
	for r, row := range ds.Rows() {
		require.Equal(t, len(rows), r)
		rows = append(rows, append([]float64(nil), row...))
	}
	require.Equal(t, [][]float64{{0, 0, 0}, {0.1, 1.2, 0.4}, {0.2, 2.4, 0.7}}, rows)
}

func TestDataset_DuplicateNames(t *testing.T) {
	data := appendHeader(nil, 3)
	data = appendDescriptor(data, "x", "m", format.IDDouble, 8)
	data = appendDescriptor(data, "y", "m", format.IDDouble, 8)
	data = appendDescriptor(data, "x", "ft", format.IDDouble, 8)
	data = appendDoubles(data, 1, 2, 3)

	ds, err := decode(t, data)
	require.NoError(t, err)
	require.Equal(t, 3, ds.VariableCount())

	idx, ok := ds.Index("x")
	require.True(t, ok)
	require.Equal(t, 0, idx)

	d, err := ds.Descriptor("x")
	require.NoError(t, err)
	require.Equal(t, "m", d.Unit)

	// The duplicate column is still reachable by position
	require.Equal(t, Column{3}, ds.Columns()[2])

	dups := ds.DuplicateNames()
	require.Len(t, dups, 1)
	require.Equal(t, "x", dups[0].Name)
	require.Equal(t, "ft", dups[0].Unit)

	require.Empty(t, cannonDataset(t).DuplicateNames())
}

func TestDataset_Index_HashCollision(t *testing.T) {
	h := section.Header{
		FormatTag: section.NewFormatTag(section.DefaultFormatTag),
		Descriptors: []section.VariableDescriptor{
			{Name: "a", TypeID: format.IDDouble, Type: format.TypeFloat64, DeclaredWidth: 8},
			{Name: "b", TypeID: format.IDDouble, Type: format.TypeFloat64, DeclaredWidth: 8},
			{Name: "a", TypeID: format.IDDouble, Type: format.TypeFloat64, DeclaredWidth: 8},
		},
	}
	columns := []Column{{1, 2}, {3, 4}, {5, 6}}

	// Every name hashes to the same value
	ds, err := buildDataset(h, columns, func(string) uint64 { return 7 })
	require.NoError(t, err)
	require.NotNil(t, ds.byName)

	idx, ok := ds.Index("a")
	require.True(t, ok)
	require.Equal(t, 0, idx)

	idx, ok = ds.Index("b")
	require.True(t, ok)
	require.Equal(t, 1, idx)

	idx, ok = ds.Index("c")
	require.False(t, ok)
	require.Equal(t, -1, idx)

	col, err := ds.Column("b")
	require.NoError(t, err)
	require.Equal(t, Column{3, 4}, col)

	_, err = ds.Column("c")
	require.ErrorIs(t, err, errs.ErrVariableNotFound)

	require.Equal(t, []string{"a", "b", "a"}, ds.Names())
	// Only the repeated "a" is a duplicate; "b" merely shares its hash
	require.Len(t, ds.DuplicateNames(), 1)
}

func TestDataset_Index_Missing(t *testing.T) {
	ds := cannonDataset(t)
	require.Nil(t, ds.byName)

	idx, ok := ds.Index("dyn.cannon.vel[0]")
	require.False(t, ok)
	require.Equal(t, -1, idx)
}

func TestNewDataset_Validation(t *testing.T) {
	h := section.Header{
		FormatTag: section.NewFormatTag(section.DefaultFormatTag),
		Descriptors: []section.VariableDescriptor{
			{Name: "a", TypeID: format.IDDouble, Type: format.TypeFloat64, DeclaredWidth: 8},
			{Name: "b", TypeID: format.IDDouble, Type: format.TypeFloat64, DeclaredWidth: 8},
		},
	}

	_, err := newDataset(h, []Column{{1}})
	require.ErrorIs(t, err, errs.ErrRowWidthMismatch)

	_, err = newDataset(h, []Column{{1, 2}, {1}})
	require.ErrorIs(t, err, errs.ErrRowWidthMismatch)

	ds, err := newDataset(h, []Column{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	require.Empty(t, ds.WidthMismatches())

	h.Descriptors[1].Name = ""
	_, err = newDataset(h, []Column{{1}, {2}})
	require.ErrorIs(t, err, errs.ErrInvalidVariable)
}
