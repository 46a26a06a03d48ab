package repository

import (
	"context"
	"errors"

	"warsto_quotation/internal/domain/entities"
	"warsto_quotation/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// FormGormRepository persists raw submissions in a SQL database
// (postgres in production, sqlite for local runs and tests).
type FormGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IFormRepository = (*FormGormRepository)(nil)

func NewFormGormRepository(db *gorm.DB) *FormGormRepository {
	return &FormGormRepository{db: db}
}

func (r *FormGormRepository) Create(ctx context.Context, f entities.Form) (entities.Form, error) {
	rec := formRecord{
		ID:           f.ID,
		VisitorKey:   f.VisitorKey,
		DwellingSize: f.DwellingSize,
		Selections:   f.Selections,
		CarpetArea:   f.CarpetArea,
		Name:         f.Contact.Name,
		Email:        f.Contact.Email,
		PhoneNumber:  f.Contact.PhoneNumber,
		PropertyName: f.Contact.PropertyName,
		PayloadRaw:   string(f.PayloadRaw),
		CreatedAt:    f.CreatedAt.UTC(),
	}
	if rec.Selections == nil {
		rec.Selections = map[string][]string{}
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.Form{}, err
	}
	return f, nil
}

func (r *FormGormRepository) GetByID(ctx context.Context, id string) (entities.Form, error) {
	var rec formRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Form{}, nil
	}
	if err != nil {
		return entities.Form{}, err
	}

	f := entities.Form{
		ID:           rec.ID,
		VisitorKey:   rec.VisitorKey,
		DwellingSize: rec.DwellingSize,
		Selections:   rec.Selections,
		CarpetArea:   rec.CarpetArea,
		Contact: entities.Contact{
			Name:         rec.Name,
			Email:        rec.Email,
			PhoneNumber:  rec.PhoneNumber,
			PropertyName: rec.PropertyName,
		},
		CreatedAt: rec.CreatedAt.UTC(),
	}
	if rec.PayloadRaw != "" {
		f.PayloadRaw = []byte(rec.PayloadRaw)
	}
	return f, nil
}
