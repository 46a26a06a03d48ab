package interfaces

import (
	"context"
	"time"

	"warsto_quotation/internal/domain/entities"
)

// IEmailSender delivers the quotation link to the visitor.
type IEmailSender interface {
	SendQuotationLink(ctx context.Context, to, customerName, link string, validUntil time.Time) error
}

// ISheetLogger appends one flattened row per submission to an external sheet.
type ISheetLogger interface {
	AppendSubmission(ctx context.Context, f entities.Form) error
}

// IStaffNotifier alerts the team when a quotation has lines that need a
// manual follow-up.
type IStaffNotifier interface {
	NotifyCustomRequirements(ctx context.Context, q entities.Quotation, f entities.Form) error
}
