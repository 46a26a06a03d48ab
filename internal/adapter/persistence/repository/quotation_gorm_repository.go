package repository

import (
	"context"
	"errors"

	"warsto_quotation/internal/domain/entities"
	"warsto_quotation/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// QuotationGormRepository persists Quotation entities in a SQL database.
type QuotationGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IQuotationRepository = (*QuotationGormRepository)(nil)

func NewQuotationGormRepository(db *gorm.DB) *QuotationGormRepository {
	return &QuotationGormRepository{db: db}
}

func (r *QuotationGormRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	rec := quotationRecord{
		ID:           q.ID,
		FormID:       q.FormID,
		DwellingSize: q.DwellingSize,
		FinishType:   q.FinishType,
		CoreType:     q.CoreType,
		CarpetArea:   q.CarpetArea,
		CustomerName: q.CustomerName,
		LineItems:    q.LineItems,
		TotalCost:    q.TotalCost,
		CreatedAt:    q.CreatedAt.UTC(),
		ValidUntil:   q.ValidUntil.UTC(),
	}
	if rec.LineItems == nil {
		rec.LineItems = []entities.QuotationLineItem{}
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationGormRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	var rec quotationRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Quotation{}, nil
	}
	if err != nil {
		return entities.Quotation{}, err
	}

	return entities.Quotation{
		ID:           rec.ID,
		FormID:       rec.FormID,
		DwellingSize: rec.DwellingSize,
		FinishType:   rec.FinishType,
		CoreType:     rec.CoreType,
		CarpetArea:   rec.CarpetArea,
		CustomerName: rec.CustomerName,
		LineItems:    rec.LineItems,
		TotalCost:    rec.TotalCost,
		CreatedAt:    rec.CreatedAt.UTC(),
		ValidUntil:   rec.ValidUntil.UTC(),
	}, nil
}
