package interfaces

import (
	"context"
	"warsto_quotation/internal/domain/entities"
)

// IQuotationRepository abstracts document-store persistence for Quotation.
//
// GetByID returns a zero Quotation (empty ID) and a nil error when the id
// does not resolve; callers translate that into a not-found condition.

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
}
