package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"warsto_quotation/internal/domain/catalog"
	"warsto_quotation/internal/domain/entities"
	"warsto_quotation/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	CustomOptionMinLength = 2
	CustomOptionMaxLength = 50
)

var (
	ErrCustomOptionFieldsRequired = errors.New("dwelling size, room category and item name are required")
	ErrInvalidRoomCategory        = errors.New("invalid dwelling size or room category")
	ErrImmutableRoomCategory      = errors.New("room category does not accept custom options")
	ErrCustomOptionLength         = errors.New("custom option length out of range")
	ErrCustomOptionExists         = errors.New("custom option already exists")
	ErrInvalidVisitorKey          = errors.New("invalid visitor key")
)

// ICatalogUseCase exposes the option catalog as seen by one visitor.
//
//   - GET /options/{bhkType}   => GetOptions()
//   - POST /addCustomOption    => AddCustomOption()
type ICatalogUseCase interface {
	GetOptions(ctx context.Context, visitorKey, dwellingSize string) (entities.RoomOptions, error)
	AddCustomOption(ctx context.Context, visitorKey, dwellingSize, room, item string) ([]string, error)
}

type CatalogUseCase struct {
	catalog *catalog.Catalog
	store   interfaces.ICustomOptionStore
	logger  *zap.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(c *catalog.Catalog, store interfaces.ICustomOptionStore, logger *zap.Logger) *CatalogUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogUseCase{catalog: c, store: store, logger: logger}
}

// GetOptions returns a private copy of the base options for dwellingSize with
// the visitor's custom items appended after the base items of each room.
func (u *CatalogUseCase) GetOptions(ctx context.Context, visitorKey, dwellingSize string) (entities.RoomOptions, error) {
	dwellingSize = strings.TrimSpace(dwellingSize)
	opts, ok := u.catalog.Options(dwellingSize)
	if !ok {
		return nil, ErrInvalidDwellingSize
	}

	visitorKey = strings.TrimSpace(visitorKey)
	if visitorKey == "" || u.store == nil {
		return opts, nil
	}

	overlay, err := u.store.List(ctx, visitorKey, dwellingSize)
	if err != nil {
		return nil, err
	}
	for room, items := range overlay {
		if _, known := opts[room]; !known {
			continue
		}
		opts[room] = append(opts[room], items...)
	}
	return opts, nil
}

// AddCustomOption records item in the visitor's overlay and returns the
// room's combined list. Checks run in a fixed order so each failure maps to
// one stable message.
func (u *CatalogUseCase) AddCustomOption(ctx context.Context, visitorKey, dwellingSize, room, item string) ([]string, error) {
	dwellingSize = strings.TrimSpace(dwellingSize)
	room = strings.TrimSpace(room)
	item = strings.TrimSpace(item)
	if dwellingSize == "" || room == "" || item == "" {
		return nil, ErrCustomOptionFieldsRequired
	}

	base, ok := u.catalog.RoomOptions(dwellingSize, room)
	if !ok {
		return nil, ErrInvalidRoomCategory
	}
	if entities.IsImmutableRoom(room) {
		return nil, ErrImmutableRoomCategory
	}
	if n := utf8.RuneCountInString(item); n < CustomOptionMinLength || n > CustomOptionMaxLength {
		return nil, ErrCustomOptionLength
	}
	for _, existing := range base {
		if existing == item {
			return nil, ErrCustomOptionExists
		}
	}

	visitorKey = strings.TrimSpace(visitorKey)
	if visitorKey == "" {
		return nil, ErrInvalidVisitorKey
	}

	added, overlay, err := u.store.Add(ctx, visitorKey, dwellingSize, room, item)
	if err != nil {
		u.logger.Error("[catalog][usecase] add custom option failed",
			zap.String("dwelling_size", dwellingSize), zap.String("room", room), zap.Error(err))
		return nil, err
	}
	if !added {
		return nil, ErrCustomOptionExists
	}

	u.logger.Info("[catalog][usecase] custom option added",
		zap.String("dwelling_size", dwellingSize), zap.String("room", room), zap.String("item", item))
	return append(base, overlay...), nil
}
