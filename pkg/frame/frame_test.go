package frame

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	t.Run("reads header and pads short rows", func(t *testing.T) {
		in := "\xEF\xBB\xBFa,b,c\n1,2,3\n4,5\n"
		f, err := ReadCSV(strings.NewReader(in), ',')
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, f.Columns)
		assert.Equal(t, [][]string{{"1", "2", "3"}, {"4", "5", ""}}, f.Rows)
	})

	t.Run("honours the separator and quoting", func(t *testing.T) {
		in := "name;cuisines\n\"Bar; Grill\";\"Italian, Pizza\"\n"
		f, err := ReadCSV(strings.NewReader(in), ';')
		require.NoError(t, err)
		assert.Equal(t, "Bar; Grill", f.Rows[0][0])
		assert.Equal(t, "Italian, Pizza", f.Rows[0][1])
	})

	t.Run("rejects a row wider than the header", func(t *testing.T) {
		in := "a,b,c\n1,2,3\n4,5,6,EXTRA,MORE\n"
		_, err := ReadCSV(strings.NewReader(in), ',')
		var widthErr *WidthError
		require.ErrorAs(t, err, &widthErr)
		assert.Equal(t, WidthError{Line: 3, Expected: 3, Saw: 5}, *widthErr)
		assert.EqualError(t, err, "line 3: expected 3 fields, saw 5")
	})

	t.Run("empty input yields an empty frame", func(t *testing.T) {
		f, err := ReadCSV(strings.NewReader(""), ',')
		require.NoError(t, err)
		assert.Equal(t, 0, f.Len())
		assert.Empty(t, f.Columns)
	})
}

func TestIsNull(t *testing.T) {
	for _, v := range []string{"", "NA", "NaN", "null", "N/A", "None", "<NA>"} {
		assert.True(t, IsNull(v), v)
	}
	for _, v := range []string{"0", " ", "Nan ", "India", "none"} {
		assert.False(t, IsNull(v), v)
	}
}

func TestColumnOperations(t *testing.T) {
	f := New([]string{"a", "b", "c"}, [][]string{{"1", "2", "3"}, {"4", "5", "6"}})

	t.Run("drop column", func(t *testing.T) {
		g := f.Clone()
		assert.True(t, g.DropColumn("b"))
		assert.False(t, g.DropColumn("b"))
		assert.Equal(t, []string{"a", "c"}, g.Columns)
		assert.Equal(t, [][]string{{"1", "3"}, {"4", "6"}}, g.Rows)
		assert.Equal(t, []string{"1", "2", "3"}, f.Rows[0], "clone must not alias the original")
	})

	t.Run("set column appends or replaces", func(t *testing.T) {
		g := f.Clone()
		require.NoError(t, g.SetColumn("d", []string{"x", "y"}))
		require.NoError(t, g.SetColumn("a", []string{"9", "8"}))
		assert.Equal(t, []string{"a", "b", "c", "d"}, g.Columns)
		assert.Equal(t, []string{"9", "2", "3", "x"}, g.Rows[0])
		assert.Error(t, g.SetColumn("e", []string{"only one"}))
	})

	t.Run("project reorders and rejects missing columns", func(t *testing.T) {
		g := f.Clone()
		require.NoError(t, g.Project([]string{"c", "a"}))
		assert.Equal(t, [][]string{{"3", "1"}, {"6", "4"}}, g.Rows)
		assert.EqualError(t, g.Project([]string{"zzz"}), `project: missing column "zzz"`)
	})

	t.Run("filter keeps matching rows", func(t *testing.T) {
		g := f.Clone()
		g.Filter(func(row []string) bool { return row[0] == "4" })
		assert.Equal(t, 1, g.Len())
		col, ok := g.Column("c")
		require.True(t, ok)
		assert.Equal(t, []string{"6"}, col)
	})
}

func TestBuild(t *testing.T) {
	t.Run("pads short rows", func(t *testing.T) {
		f, err := Build([]string{"a", "b"}, [][]string{{"1"}})
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"1", ""}}, f.Rows)
	})

	t.Run("rejects wide rows", func(t *testing.T) {
		_, err := Build([]string{"a", "b"}, [][]string{{"1", "2"}, {"1", "2", "3"}})
		assert.EqualError(t, err, "line 3: expected 2 fields, saw 3")
		assert.Panics(t, func() { New([]string{"a"}, [][]string{{"1", "2"}}) })
	})
}
