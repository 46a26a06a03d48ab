package response

import "warsto_quotation/internal/domain/entities"

const CustomOptionAddedMessage = "Custom option added successfully"

type CustomOptionResponse struct {
	Message        string   `json:"message"`
	UpdatedOptions []string `json:"updatedOptions"`
}

func FromUpdatedOptions(items []string) CustomOptionResponse {
	if items == nil {
		items = []string{}
	}
	return CustomOptionResponse{Message: CustomOptionAddedMessage, UpdatedOptions: items}
}

// OptionsResponse is serialised as a bare room -> items object.
type OptionsResponse map[string][]string

func FromRoomOptions(opts entities.RoomOptions) OptionsResponse {
	out := make(OptionsResponse, len(opts))
	for room, items := range opts {
		if items == nil {
			items = []string{}
		}
		out[room] = items
	}
	return out
}
