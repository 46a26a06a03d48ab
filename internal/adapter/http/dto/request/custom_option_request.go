package request

import "strings"

// CustomOptionRequest adds a visitor-specific item to a room category.
//
// Both the form client field names (bhkType, category, customOption) and
// the descriptive ones (dwellingSize, roomCategory, itemName) are accepted;
// the form client names win when both are sent.
type CustomOptionRequest struct {
	BHKType      string `json:"bhkType"`
	DwellingSize string `json:"dwellingSize"`
	Category     string `json:"category"`
	RoomCategory string `json:"roomCategory"`
	CustomOption string `json:"customOption"`
	ItemName     string `json:"itemName"`
}

func (r CustomOptionRequest) ResolveDwellingSize() string {
	return firstNonBlank(r.BHKType, r.DwellingSize)
}

func (r CustomOptionRequest) ResolveRoomCategory() string {
	return firstNonBlank(r.Category, r.RoomCategory)
}

func (r CustomOptionRequest) ResolveItemName() string {
	return firstNonBlank(r.CustomOption, r.ItemName)
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
