package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"oorms/internal/adapters/out/catalog"
	"oorms/internal/core/domain/model/kernel"
	"oorms/internal/core/domain/model/restaurant"
	"oorms/internal/core/ports"
	"oorms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.Catalog = (*catalog.YAMLCatalog)(nil)

func TestDefault(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	layout, err := c.Layout(t.Context())
	require.NoError(t, err)
	items, err := c.Menu(t.Context())
	require.NoError(t, err)

	t.Run("should hold the eight tables of the floor plan", func(t *testing.T) {
		require.Len(t, layout, 8)
		seats := make([]int, 0, len(layout))
		for _, l := range layout {
			seats = append(seats, l.Seats)
		}
		assert.Equal(t, []int{6, 4, 5, 2, 2, 2, 8, 2}, seats)
		assert.Equal(t, kernel.Coordinate(270), layout[7].Location.X())
		assert.Equal(t, kernel.Coordinate(520), layout[7].Location.Y())
	})

	t.Run("should hold the twelve dishes with exact prices", func(t *testing.T) {
		require.Len(t, items, 12)
		assert.Equal(t, "House burger", items[0].Name())
		assert.Equal(t, "16.00", items[0].Price().String())
		assert.Equal(t, "Chicken club", items[1].Name())
		assert.Equal(t, "14.50", items[1].Price().String())
		assert.Equal(t, "Hunters Rabbit Stew", items[11].Name())
	})

	t.Run("should build a restaurant", func(t *testing.T) {
		r, err := restaurant.NewRestaurant(layout, items)

		require.NoError(t, err)
		assert.Len(t, r.Tables(), 8)
	})
}

func TestParse(t *testing.T) {
	t.Run("should accept quoted and bare prices", func(t *testing.T) {
		c, err := catalog.Parse([]byte(`
tables:
  - seats: 2
    location: {x: 0, y: 0}
menu:
  - name: Beef Cheek
    price: "24.00"
  - name: Fried Chicken
    price: 14.5
`))
		require.NoError(t, err)

		items, err := c.Menu(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "24.00", items[0].Price().String())
		assert.Equal(t, "14.50", items[1].Price().String())
	})

	t.Run("should reject an empty document", func(t *testing.T) {
		_, err := catalog.Parse([]byte("tables: []\nmenu: []\n"))

		require.ErrorIs(t, err, catalog.ErrCatalogIsEmpty)
	})

	t.Run("should reject unknown fields", func(t *testing.T) {
		_, err := catalog.Parse([]byte(`
tables:
  - seats: 2
    chairs: 3
    location: {x: 0, y: 0}
menu:
  - name: Beef Cheek
    price: 24
`))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "chairs")
	})

	t.Run("should report every bad record", func(t *testing.T) {
		_, err := catalog.Parse([]byte(`
tables:
  - seats: 2
    location: {x: -5, y: 0}
menu:
  - name: "   "
    price: 24
  - name: Free lunch
    price: -1
`))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "table 0")
		assert.Contains(t, err.Error(), "menu item 0")
		assert.Contains(t, err.Error(), "menu item 1")
	})
}

func TestLoad(t *testing.T) {
	t.Run("should fall back to the embedded catalog", func(t *testing.T) {
		c, err := catalog.Load("")

		require.NoError(t, err)
		items, err := c.Menu(t.Context())
		require.NoError(t, err)
		assert.Len(t, items, 12)
	})

	t.Run("should read a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
tables:
  - seats: 3
    location: {x: 10, y: 10}
menu:
  - name: Roasted Squash
    price: 14
`), 0o600))

		c, err := catalog.Load(path)

		require.NoError(t, err)
		layout, err := c.Layout(t.Context())
		require.NoError(t, err)
		require.Len(t, layout, 1)
		assert.Equal(t, 3, layout[0].Seats)
	})

	t.Run("should report a missing file", func(t *testing.T) {
		_, err := catalog.Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
