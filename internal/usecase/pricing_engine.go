package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"warsto_quotation/internal/domain/catalog"
	"warsto_quotation/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	PaintingItemName             = "Whole House Painting"
	CustomRequirementsSizeLabel  = "-"
	CustomRequirementDescription = "Our team will contact you for custom requirements"
)

// CoatMultiplier converts carpet area into paintable wall and ceiling area.
var CoatMultiplier = decimal.NewFromFloat(3.5)

var (
	ErrInvalidDwellingSize = errors.New("invalid dwelling size")
	ErrMissingSelections   = errors.New("missing selections")
	ErrEmptySubmission     = errors.New("no items selected and no carpet area")
)

// PricingEngine turns a QuotationRequest into an itemised quotation.
//
// ComputeQuotation depends only on its arguments and the immutable catalog,
// so identical inputs always produce identical line items and totals.
type PricingEngine struct {
	catalog      *catalog.Catalog
	paintingRate decimal.Decimal
}

// NewPricingEngine builds an engine over c. A zero or negative paintingRate
// falls back to the catalog's rate.
func NewPricingEngine(c *catalog.Catalog, paintingRate decimal.Decimal) *PricingEngine {
	if !paintingRate.IsPositive() {
		paintingRate = c.PaintingRate()
	}
	return &PricingEngine{catalog: c, paintingRate: paintingRate}
}

func (e *PricingEngine) Catalog() *catalog.Catalog {
	return e.catalog
}

func (e *PricingEngine) PaintingRate() decimal.Decimal {
	return e.paintingRate
}

// Validate rejects requests that cannot be priced. It runs before anything
// is persisted.
func (e *PricingEngine) Validate(req entities.QuotationRequest) error {
	size := strings.TrimSpace(req.DwellingSize)
	if size == "" || !e.catalog.HasDwellingSize(size) {
		return ErrInvalidDwellingSize
	}
	if req.Selections == nil {
		return ErrMissingSelections
	}
	if _, present := entities.ParseCarpetArea(req.CarpetArea); present {
		return nil
	}
	for _, items := range req.Selections {
		for _, item := range items {
			if strings.TrimSpace(item) != "" {
				return nil
			}
		}
	}
	return ErrEmptySubmission
}

// ComputeQuotation prices req at now. The result has no ID or FormID; the
// caller assigns both when persisting.
func (e *PricingEngine) ComputeQuotation(req entities.QuotationRequest, now time.Time) (entities.Quotation, error) {
	if err := e.Validate(req); err != nil {
		return entities.Quotation{}, err
	}
	size := strings.TrimSpace(req.DwellingSize)
	area, hasArea := entities.ParseCarpetArea(req.CarpetArea)

	var lines []entities.QuotationLineItem
	if hasArea {
		lines = append(lines, e.paintingLine(area))
	}

	for _, room := range e.orderedRooms(size, req.Selections) {
		if room == entities.RoomWholeHousePainting {
			continue
		}
		for _, item := range req.Selections[room] {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			entry, ok := e.catalog.Lookup(size, room, item)
			if !ok {
				lines = append(lines, customLine(room, item))
				continue
			}
			switch entry.PricingMode {
			case entities.PricingModeFixedUnit:
				lines = append(lines, entities.QuotationLineItem{
					Room:        room,
					ItemName:    item,
					SizeLabel:   entry.SizeLabel,
					Price:       entry.UnitPrice,
					Description: entry.Description,
				})
			case entities.PricingModePerAreaUnit:
				lines = append(lines, perAreaLine(entry, area))
			case entities.PricingModePerAreaMultiCoat:
				// priced once by the synthetic painting line
			default:
				lines = append(lines, customLine(room, item))
			}
		}
	}

	total := decimal.Zero
	for _, li := range lines {
		total = total.Add(li.Price)
	}

	createdAt := now.UTC()
	return entities.Quotation{
		DwellingSize: size,
		FinishType:   entities.FinishTypeStandard,
		CoreType:     entities.CoreTypeStandard,
		CarpetArea:   area,
		CustomerName: strings.TrimSpace(req.Contact.Name),
		LineItems:    lines,
		TotalCost:    total,
		CreatedAt:    createdAt,
		ValidUntil:   createdAt.Add(entities.QuotationValidity),
	}, nil
}

func (e *PricingEngine) paintingLine(area float64) entities.QuotationLineItem {
	sqft := decimal.NewFromFloat(area)
	coated := sqft.Mul(CoatMultiplier)
	return entities.QuotationLineItem{
		Room:      entities.RoomWholeHousePainting,
		ItemName:  PaintingItemName,
		SizeLabel: formatArea(area) + " sq ft",
		Price:     coated.Mul(e.paintingRate),
		Description: fmt.Sprintf(
			"Carpet area %s sq ft, coated area %s sq ft (x%s) @ ₹%s/sq ft",
			formatArea(area), coated.StringFixed(2), CoatMultiplier.String(), e.paintingRate.String(),
		),
	}
}

func perAreaLine(entry entities.CatalogEntry, area float64) entities.QuotationLineItem {
	return entities.QuotationLineItem{
		Room:      entry.RoomCategory,
		ItemName:  entry.ItemName,
		SizeLabel: formatArea(area) + " sq ft",
		Price:     entry.UnitPrice.Mul(decimal.NewFromFloat(area)),
		Description: fmt.Sprintf("%s (%s sq ft @ ₹%s/sq ft)",
			entry.Description, formatArea(area), entry.UnitPrice.String()),
	}
}

func customLine(room, item string) entities.QuotationLineItem {
	return entities.QuotationLineItem{
		Room:        room,
		ItemName:    item,
		SizeLabel:   CustomRequirementsSizeLabel,
		Price:       decimal.Zero,
		Description: CustomRequirementDescription,
		IsCustom:    true,
	}
}

// orderedRooms lists the selected rooms in catalog order, followed by rooms
// unknown to the catalog sorted by name. Map iteration order never leaks
// into the line items.
func (e *PricingEngine) orderedRooms(size string, selections map[string][]string) []string {
	out := make([]string, 0, len(selections))
	seen := make(map[string]bool, len(selections))
	for _, room := range e.catalog.RoomCategories(size) {
		if _, ok := selections[room]; ok {
			out = append(out, room)
			seen[room] = true
		}
	}
	var extra []string
	for room := range selections {
		if !seen[room] {
			extra = append(extra, room)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

func formatArea(area float64) string {
	return strconv.FormatFloat(area, 'f', -1, 64)
}
