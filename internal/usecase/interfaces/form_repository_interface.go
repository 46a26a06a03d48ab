package interfaces

import (
	"context"
	"warsto_quotation/internal/domain/entities"
)

// IFormRepository abstracts document-store persistence for raw submissions.

type IFormRepository interface {
	Create(ctx context.Context, f entities.Form) (entities.Form, error)
	GetByID(ctx context.Context, id string) (entities.Form, error)
}
