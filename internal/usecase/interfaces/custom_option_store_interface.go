package interfaces

import (
	"context"
	"warsto_quotation/internal/domain/entities"
)

// ICustomOptionStore keeps the per-visitor overlay of custom item names.
//
// Implementations must make Add read-modify-write atomic per visitor key:
// the duplicate check against the visitor's overlay and the append happen as
// one step. Different visitors never see each other's entries.
type ICustomOptionStore interface {
	// List returns the visitor's overlay for a dwelling size, room -> items
	// in insertion order. An unknown visitor yields an empty mapping.
	List(ctx context.Context, visitorKey, dwellingSize string) (entities.RoomOptions, error)
	// Add appends item to the visitor's overlay list for (dwellingSize, room).
	// added is false when the overlay already holds item; overlay is the
	// visitor's list for that room after the call.
	Add(ctx context.Context, visitorKey, dwellingSize, room, item string) (added bool, overlay []string, err error)
}
