package entities

import "github.com/shopspring/decimal"

// PricingMode tells the pricing engine how a catalog entry is priced.
//
// The mode is decided when the catalog is authored, never derived from the
// item name at request time.
type PricingMode string

const (
	// PricingModeFixedUnit prices the item at its unit price.
	PricingModeFixedUnit PricingMode = "fixed_unit"
	// PricingModePerAreaUnit multiplies the unit price by the carpet area.
	PricingModePerAreaUnit PricingMode = "per_area_unit"
	// PricingModePerAreaMultiCoat is whole-house painting: carpet area x coat multiplier x rate.
	PricingModePerAreaMultiCoat PricingMode = "per_area_multi_coat"
	// PricingModeZeroCustom is a placeholder priced at zero pending manual follow-up.
	PricingModeZeroCustom PricingMode = "zero_custom"
)

func (m PricingMode) Valid() bool {
	switch m {
	case PricingModeFixedUnit, PricingModePerAreaUnit, PricingModePerAreaMultiCoat, PricingModeZeroCustom:
		return true
	}
	return false
}

// Room categories referenced by business rules.
const (
	RoomKitchen            = "Kitchen"
	RoomWholeHousePainting = "WholeHousePainting"
)

// IsImmutableRoom reports whether visitors may not add custom options to room.
func IsImmutableRoom(room string) bool {
	return room == RoomKitchen || room == RoomWholeHousePainting
}

// CatalogEntry is one priced, selectable item for a dwelling size and room.
type CatalogEntry struct {
	DwellingSize string          `json:"dwelling_size"`
	RoomCategory string          `json:"room_category"`
	ItemName     string          `json:"item_name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	SizeLabel    string          `json:"size_label,omitempty"`
	Description  string          `json:"description"`
	PricingMode  PricingMode     `json:"pricing_mode"`
}

// RoomOptions maps a room category to its ordered selectable item names.
type RoomOptions map[string][]string

// Clone deep-copies the mapping so callers may mutate the result freely.
func (o RoomOptions) Clone() RoomOptions {
	out := make(RoomOptions, len(o))
	for room, items := range o {
		out[room] = append([]string(nil), items...)
	}
	return out
}
