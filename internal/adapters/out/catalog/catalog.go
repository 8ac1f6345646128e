// Package catalog loads the static floor plan and menu from YAML.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"oorms/internal/core/domain/model/kernel"
	"oorms/internal/core/domain/model/menu"
	"oorms/internal/core/domain/model/restaurant"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

var ErrCatalogIsEmpty = errors.New("catalog has no tables or no menu")

type document struct {
	Tables []tableRecord `yaml:"tables"`
	Menu   []menuRecord  `yaml:"menu"`
}

type tableRecord struct {
	Seats    int            `yaml:"seats"`
	Location locationRecord `yaml:"location"`
}

type locationRecord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type menuRecord struct {
	Name  string    `yaml:"name"`
	Price priceText `yaml:"price"`
}

// priceText keeps the scalar as written, so 14.50 is never a float.
type priceText string

func (p *priceText) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: price must be a scalar", node.Line)
	}
	*p = priceText(node.Value)
	return nil
}

// YAMLCatalog is a ports.Catalog read from a YAML document. The document is
// turned into domain objects once, when it is parsed.
type YAMLCatalog struct {
	layout []restaurant.TableLayout
	menu   []*menu.Item
}

// Default returns the catalog compiled into the binary.
func Default() (*YAMLCatalog, error) {
	return Parse(defaultCatalog)
}

// Load reads the catalog at path. An empty path means Default.
func Load(path string) (*YAMLCatalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalog document. Unknown fields are rejected.
func Parse(data []byte) (*YAMLCatalog, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc document
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(doc.Tables) == 0 || len(doc.Menu) == 0 {
		return nil, ErrCatalogIsEmpty
	}

	var (
		c         YAMLCatalog
		recordErr []error
	)
	for i, t := range doc.Tables {
		loc, err := kernel.NewLocation(kernel.Coordinate(t.Location.X), kernel.Coordinate(t.Location.Y))
		if err != nil {
			recordErr = append(recordErr, fmt.Errorf("table %d: %w", i, err))
			continue
		}
		c.layout = append(c.layout, restaurant.TableLayout{Seats: t.Seats, Location: loc})
	}
	for i, m := range doc.Menu {
		price, err := kernel.MoneyFromString(string(m.Price))
		if err != nil {
			recordErr = append(recordErr, fmt.Errorf("menu item %d: %w", i, err))
			continue
		}
		item, err := menu.NewItem(m.Name, price)
		if err != nil {
			recordErr = append(recordErr, fmt.Errorf("menu item %d: %w", i, err))
			continue
		}
		c.menu = append(c.menu, item)
	}
	if err := errors.Join(recordErr...); err != nil {
		return nil, err
	}

	return &c, nil
}

// Layout returns the table records in table number order.
func (c *YAMLCatalog) Layout(_ context.Context) ([]restaurant.TableLayout, error) {
	layout := make([]restaurant.TableLayout, len(c.layout))
	copy(layout, c.layout)
	return layout, nil
}

// Menu returns the menu items in the order of the document.
func (c *YAMLCatalog) Menu(_ context.Context) ([]*menu.Item, error) {
	items := make([]*menu.Item, len(c.menu))
	copy(items, c.menu)
	return items, nil
}
