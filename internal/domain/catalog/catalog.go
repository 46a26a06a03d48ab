// Package catalog holds the canonical option and price table.
//
// The table is authored as one YAML document (see catalog.yaml) and expanded
// into CatalogEntry records keyed by (dwelling size, room category, item).
// A Catalog is immutable after Load and safe for concurrent readers.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"warsto_quotation/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog string

var (
	ErrEmptyCatalog       = errors.New("catalog has no dwelling sizes")
	ErrUnknownRoom        = errors.New("dwelling size references an undefined room category")
	ErrInvalidPricingMode = errors.New("invalid pricing mode")
	ErrNegativePrice      = errors.New("negative unit price")
	ErrDuplicateItem      = errors.New("duplicate item in room category")
	ErrPaintingRate       = errors.New("catalog needs exactly one per_area_multi_coat price")
)

type document struct {
	Rooms         map[string][]itemRecord `yaml:"rooms"`
	DwellingSizes []sizeRecord            `yaml:"dwellingSizes"`
}

type itemRecord struct {
	Name        string  `yaml:"name"`
	Price       float64 `yaml:"price"`
	Size        string  `yaml:"size"`
	Description string  `yaml:"description"`
	Mode        string  `yaml:"mode"`
}

type sizeRecord struct {
	Name  string   `yaml:"name"`
	Rooms []string `yaml:"rooms"`
}

type entryKey struct {
	size, room, item string
}

type Catalog struct {
	sizes        []string
	rooms        map[string][]string
	options      map[string]entities.RoomOptions
	entries      map[entryKey]entities.CatalogEntry
	paintingRate decimal.Decimal
}

// Default loads the embedded catalog.
func Default() (*Catalog, error) {
	return Load(strings.NewReader(defaultCatalog))
}

// MustDefault is Default for program initialisation and tests.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFile loads a catalog from path, falling back to the embedded table when
// path is empty.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses and validates a YAML catalog.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(doc.DwellingSizes) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		rooms:   make(map[string][]string, len(doc.DwellingSizes)),
		options: make(map[string]entities.RoomOptions, len(doc.DwellingSizes)),
		entries: make(map[entryKey]entities.CatalogEntry),
	}
	var paintingRates []decimal.Decimal

	for _, size := range doc.DwellingSizes {
		name := strings.TrimSpace(size.Name)
		c.sizes = append(c.sizes, name)
		c.rooms[name] = append([]string(nil), size.Rooms...)
		opts := make(entities.RoomOptions, len(size.Rooms))

		for _, room := range size.Rooms {
			items, ok := doc.Rooms[room]
			if !ok {
				return nil, fmt.Errorf("%w: %s/%s", ErrUnknownRoom, name, room)
			}
			names := make([]string, 0, len(items))
			for _, it := range items {
				mode := entities.PricingMode(it.Mode)
				if !mode.Valid() {
					return nil, fmt.Errorf("%w %q for %s/%s", ErrInvalidPricingMode, it.Mode, room, it.Name)
				}
				if it.Price < 0 {
					return nil, fmt.Errorf("%w for %s/%s", ErrNegativePrice, room, it.Name)
				}
				key := entryKey{size: name, room: room, item: it.Name}
				if _, dup := c.entries[key]; dup {
					return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateItem, room, it.Name)
				}
				price := decimal.NewFromFloat(it.Price)
				if mode == entities.PricingModePerAreaMultiCoat && !containsRate(paintingRates, price) {
					paintingRates = append(paintingRates, price)
				}
				c.entries[key] = entities.CatalogEntry{
					DwellingSize: name,
					RoomCategory: room,
					ItemName:     it.Name,
					UnitPrice:    price,
					SizeLabel:    it.Size,
					Description:  it.Description,
					PricingMode:  mode,
				}
				names = append(names, it.Name)
			}
			opts[room] = names
		}
		c.options[name] = opts
	}
	if len(paintingRates) != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrPaintingRate, len(paintingRates))
	}
	c.paintingRate = paintingRates[0]
	return c, nil
}

// DwellingSizes returns the known sizes in catalog order.
func (c *Catalog) DwellingSizes() []string {
	return append([]string(nil), c.sizes...)
}

func (c *Catalog) HasDwellingSize(size string) bool {
	_, ok := c.options[size]
	return ok
}

// RoomCategories returns the room categories of size in catalog order.
func (c *Catalog) RoomCategories(size string) []string {
	return append([]string(nil), c.rooms[size]...)
}

func (c *Catalog) HasRoom(size, room string) bool {
	opts, ok := c.options[size]
	if !ok {
		return false
	}
	_, ok = opts[room]
	return ok
}

// Options returns a deep copy of the base option lists for size.
func (c *Catalog) Options(size string) (entities.RoomOptions, bool) {
	opts, ok := c.options[size]
	if !ok {
		return nil, false
	}
	return opts.Clone(), true
}

// RoomOptions returns a copy of the base list for one room of size.
func (c *Catalog) RoomOptions(size, room string) ([]string, bool) {
	opts, ok := c.options[size]
	if !ok {
		return nil, false
	}
	items, ok := opts[room]
	if !ok {
		return nil, false
	}
	return append([]string(nil), items...), true
}

// Lookup resolves the priced entry for (size, room, item).
func (c *Catalog) Lookup(size, room, item string) (entities.CatalogEntry, bool) {
	e, ok := c.entries[entryKey{size: size, room: room, item: item}]
	return e, ok
}

// PaintingRate is the default per-square-foot whole-house painting rate,
// taken from the catalog's per_area_multi_coat entry.
func (c *Catalog) PaintingRate() decimal.Decimal {
	return c.paintingRate
}

func containsRate(rates []decimal.Decimal, d decimal.Decimal) bool {
	for _, r := range rates {
		if r.Equal(d) {
			return true
		}
	}
	return false
}
