package entities

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// QuotationValidity is how long a quotation can be fetched after creation.
	QuotationValidity = 15 * 24 * time.Hour

	FinishTypeStandard = "Laminate"
	CoreTypeStandard   = "BWP Plywood"
)

// QuotationLineItem is one priced row of a quotation.
type QuotationLineItem struct {
	Room        string          `json:"room"`
	ItemName    string          `json:"item"`
	SizeLabel   string          `json:"size"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	IsCustom    bool            `json:"is_custom"`
}

// Quotation is the immutable, time-bounded priced summary of a submission.
//
// Storage model:
//   - PK: id
//   - form_id references the originating Form
//
// Expiry is evaluated on read; the stored record is never mutated.
type Quotation struct {
	ID           string              `json:"id"`
	FormID       string              `json:"form_id"`
	DwellingSize string              `json:"dwelling_size"`
	FinishType   string              `json:"finish_type"`
	CoreType     string              `json:"core_type"`
	CarpetArea   float64             `json:"carpet_area"`
	CustomerName string              `json:"customer_name,omitempty"`
	LineItems    []QuotationLineItem `json:"line_items"`
	TotalCost    decimal.Decimal     `json:"total_cost"`
	CreatedAt    time.Time           `json:"created_at"`
	ValidUntil   time.Time           `json:"valid_until"`
}

// ExpiredAt reports whether the quotation is past its validity at now.
func (q Quotation) ExpiredAt(now time.Time) bool {
	return now.After(q.ValidUntil)
}

// HasCustomItems reports whether any line needs manual follow-up.
func (q Quotation) HasCustomItems() bool {
	for _, li := range q.LineItems {
		if li.IsCustom {
			return true
		}
	}
	return false
}

// ParseCarpetArea parses a submitted carpet area.
//
// present is false when nothing was submitted. Unparseable or negative
// values yield 0 with present=true: pricing degrades to zero-priced lines
// instead of failing the request.
func ParseCarpetArea(raw string) (area float64, present bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, true
	}
	return v, true
}
