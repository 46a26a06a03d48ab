package catalog

import (
	"errors"
	"strings"
	"testing"

	"warsto_quotation/internal/domain/entities"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sizes := c.DwellingSizes()
	if strings.Join(sizes, ",") != "1 BHK,2 BHK,3 BHK" {
		t.Fatalf("unexpected sizes: %v", sizes)
	}

	for _, size := range sizes {
		opts, ok := c.Options(size)
		if !ok || len(opts) == 0 {
			t.Fatalf("expected options for %s", size)
		}
		for room, items := range opts {
			for _, item := range items {
				if _, ok := c.Lookup(size, room, item); !ok {
					t.Fatalf("option %s/%s/%s has no price entry", size, room, item)
				}
			}
		}
	}

	if c.PaintingRate().IntPart() != 55 {
		t.Fatalf("unexpected painting rate: %s", c.PaintingRate())
	}
}

func TestCatalog_RoomsPerSize(t *testing.T) {
	c := MustDefault()

	if c.HasRoom("1 BHK", "CommonBedroom") {
		t.Fatalf("1 BHK has no common bedroom")
	}
	if !c.HasRoom("2 BHK", "CommonBedroom") {
		t.Fatalf("2 BHK has a common bedroom")
	}
	if !c.HasRoom("3 BHK", "MasterBedroom2") {
		t.Fatalf("3 BHK has a second master bedroom")
	}
	if c.HasRoom("4 BHK", "LivingRoom") {
		t.Fatalf("unknown size has no rooms")
	}

	rooms := c.RoomCategories("1 BHK")
	if rooms[0] != "LivingRoom" || rooms[len(rooms)-1] != "FalseCeilingElectrical" {
		t.Fatalf("unexpected room order: %v", rooms)
	}
}

func TestCatalog_OptionsAreCopies(t *testing.T) {
	c := MustDefault()

	opts, _ := c.Options("1 BHK")
	opts["LivingRoom"][0] = "mutated"
	opts["LivingRoom"] = append(opts["LivingRoom"], "Bar Counter")
	delete(opts, "Kitchen")

	again, _ := c.Options("1 BHK")
	if again["LivingRoom"][0] != "TV Unit" || len(again["LivingRoom"]) != 5 {
		t.Fatalf("base catalog mutated: %v", again["LivingRoom"])
	}
	if _, ok := again["Kitchen"]; !ok {
		t.Fatalf("base catalog lost kitchen")
	}

	room, _ := c.RoomOptions("1 BHK", "LivingRoom")
	room[0] = "mutated"
	if again, _ := c.RoomOptions("1 BHK", "LivingRoom"); again[0] != "TV Unit" {
		t.Fatalf("room options must be copied")
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := MustDefault()

	tv, ok := c.Lookup("1 BHK", "LivingRoom", "TV Unit")
	if !ok {
		t.Fatalf("expected TV Unit")
	}
	if tv.UnitPrice.IntPart() != 41000 || tv.PricingMode != entities.PricingModeFixedUnit {
		t.Fatalf("unexpected entry: %+v", tv)
	}

	custom, ok := c.Lookup("2 BHK", "FalseCeilingElectrical", "Custom Design")
	if !ok || custom.PricingMode != entities.PricingModeZeroCustom {
		t.Fatalf("unexpected custom design entry: %+v", custom)
	}

	bed, ok := c.Lookup("3 BHK", "MasterBedroom2", "Bed")
	if !ok || bed.RoomCategory != "MasterBedroom2" || bed.DwellingSize != "3 BHK" {
		t.Fatalf("shared room items must be keyed per size and room: %+v", bed)
	}

	if _, ok := c.Lookup("1 BHK", "LivingRoom", "Bar Counter"); ok {
		t.Fatalf("unexpected entry for unknown item")
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "no sizes",
			doc:  "rooms: {}\n",
			want: ErrEmptyCatalog,
		},
		{
			name: "undefined room",
			doc: `rooms: {}
dwellingSizes:
  - name: 1 BHK
    rooms: [LivingRoom]
`,
			want: ErrUnknownRoom,
		},
		{
			name: "bad mode",
			doc: `rooms:
  LivingRoom:
    - name: TV Unit
      price: 1
      mode: per_piece
dwellingSizes:
  - name: 1 BHK
    rooms: [LivingRoom]
`,
			want: ErrInvalidPricingMode,
		},
		{
			name: "negative price",
			doc: `rooms:
  LivingRoom:
    - name: TV Unit
      price: -1
      mode: fixed_unit
dwellingSizes:
  - name: 1 BHK
    rooms: [LivingRoom]
`,
			want: ErrNegativePrice,
		},
		{
			name: "duplicate item",
			doc: `rooms:
  LivingRoom:
    - name: TV Unit
      price: 1
      mode: fixed_unit
    - name: TV Unit
      price: 2
      mode: fixed_unit
dwellingSizes:
  - name: 1 BHK
    rooms: [LivingRoom]
`,
			want: ErrDuplicateItem,
		},
		{
			name: "no painting entry",
			doc: `rooms:
  LivingRoom:
    - name: TV Unit
      price: 1
      mode: fixed_unit
dwellingSizes:
  - name: 1 BHK
    rooms: [LivingRoom]
`,
			want: ErrPaintingRate,
		},
		{
			name: "conflicting painting entries",
			doc: `rooms:
  WholeHousePainting:
    - name: Enter Carpet Area
      price: 55
      mode: per_area_multi_coat
    - name: Premium Emulsion
      price: 70
      mode: per_area_multi_coat
dwellingSizes:
  - name: 1 BHK
    rooms: [WholeHousePainting]
`,
			want: ErrPaintingRate,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.doc))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	c, err := LoadFile("")
	if err != nil || !c.HasDwellingSize("2 BHK") {
		t.Fatalf("empty path must load the embedded catalog: %v", err)
	}

	if _, err := LoadFile("/nonexistent/catalog.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_PaintingRateFromEntry(t *testing.T) {
	c, err := Load(strings.NewReader(`rooms:
  WholeHousePainting:
    - name: Enter Carpet Area
      price: 62.5
      mode: per_area_multi_coat
dwellingSizes:
  - name: 1 BHK
    rooms: [WholeHousePainting]
  - name: 2 BHK
    rooms: [WholeHousePainting]
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.PaintingRate().String() != "62.5" {
		t.Fatalf("painting rate must come from the multi-coat entry, got %s", c.PaintingRate())
	}
	entry, _ := c.Lookup("2 BHK", "WholeHousePainting", "Enter Carpet Area")
	if !entry.UnitPrice.Equal(c.PaintingRate()) {
		t.Fatalf("entry price %s and painting rate %s diverge", entry.UnitPrice, c.PaintingRate())
	}
}
