package entities

import (
	"encoding/json"
	"time"
)

// Contact holds the visitor details captured on the last form step.
type Contact struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	PropertyName string `json:"property_name"`
}

// QuotationRequest is the priced part of a submission.
//
// CarpetArea keeps the raw submitted text; it is parsed leniently during
// pricing (see ParseCarpetArea).
type QuotationRequest struct {
	DwellingSize string              `json:"dwelling_size"`
	CarpetArea   string              `json:"carpet_area,omitempty"`
	Selections   map[string][]string `json:"selections"`
	Contact      Contact             `json:"contact"`
}

// Form is a raw submission persisted before any quotation is computed.
//
// Storage model:
//   - PK: id
//
// PayloadRaw keeps the body exactly as the client sent it.
type Form struct {
	ID           string              `json:"id"`
	VisitorKey   string              `json:"visitor_key,omitempty"`
	DwellingSize string              `json:"dwelling_size"`
	Selections   map[string][]string `json:"selections"`
	CarpetArea   string              `json:"carpet_area,omitempty"`
	Contact      Contact             `json:"contact"`
	PayloadRaw   json.RawMessage     `json:"payload_raw,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}
