package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"warsto_quotation/internal/domain/entities"
)

var ErrInvalidCarpetArea = errors.New("carpet area must be a number or a string")

// CarpetArea accepts the area as a JSON number or string and keeps the raw
// text; pricing parses it leniently.
type CarpetArea string

func (a *CarpetArea) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = CarpetArea(strings.TrimSpace(s))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return ErrInvalidCarpetArea
		}
		*a = CarpetArea(n.String())
	}
	return nil
}

func (a CarpetArea) String() string {
	return string(a)
}

// SubmitRequest is the final step of the multi-step form.
type SubmitRequest struct {
	BHKType         string              `json:"bhkType"`
	DwellingSize    string              `json:"dwellingSize"`
	SelectedOptions map[string][]string `json:"selectedOptions"`
	Selections      map[string][]string `json:"selections"`
	CarpetArea      CarpetArea          `json:"carpetArea"`
	Name            string              `json:"name" binding:"required,min=2,max=100"`
	Email           string              `json:"email" binding:"required,email"`
	PhoneNumber     string              `json:"phoneNumber" binding:"required,len=10,numeric"`
	PropertyName    string              `json:"propertyName" binding:"required"`
}

func (r SubmitRequest) ResolveDwellingSize() string {
	return firstNonBlank(r.BHKType, r.DwellingSize)
}

// ResolveSelections prefers selectedOptions and drops blank item names.
// An absent mapping stays nil so the use case can reject it.
func (r SubmitRequest) ResolveSelections() map[string][]string {
	src := r.SelectedOptions
	if src == nil {
		src = r.Selections
	}
	if src == nil {
		return nil
	}
	out := make(map[string][]string, len(src))
	for room, items := range src {
		room = strings.TrimSpace(room)
		if room == "" {
			continue
		}
		kept := make([]string, 0, len(items))
		for _, item := range items {
			if item = strings.TrimSpace(item); item != "" {
				kept = append(kept, item)
			}
		}
		out[room] = kept
	}
	return out
}

// ToForm maps the request to the form entity, keeping raw as the payload
// exactly as received.
func (r SubmitRequest) ToForm(visitorKey string, raw []byte) entities.Form {
	return entities.Form{
		VisitorKey:   visitorKey,
		DwellingSize: r.ResolveDwellingSize(),
		Selections:   r.ResolveSelections(),
		CarpetArea:   strings.TrimSpace(r.CarpetArea.String()),
		Contact: entities.Contact{
			Name:         strings.TrimSpace(r.Name),
			Email:        strings.TrimSpace(r.Email),
			PhoneNumber:  strings.TrimSpace(r.PhoneNumber),
			PropertyName: strings.TrimSpace(r.PropertyName),
		},
		PayloadRaw: append([]byte(nil), raw...),
	}
}
