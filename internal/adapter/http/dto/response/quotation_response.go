package response

import (
	"time"

	"warsto_quotation/internal/domain/entities"
	"warsto_quotation/internal/usecase"
)

const SubmitSuccessMessage = "Form submitted successfully"

type QuotationDetailResponse struct {
	Room        string  `json:"room"`
	Item        string  `json:"item"`
	Size        string  `json:"size"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	IsCustom    bool    `json:"isCustom"`
}

// QuotationResponse is the read-only quotation page payload. bhkType mirrors
// dwellingSize for the form client.
type QuotationResponse struct {
	ID           string                    `json:"id"`
	FormID       string                    `json:"formId"`
	DwellingSize string                    `json:"dwellingSize"`
	BHKType      string                    `json:"bhkType"`
	FinishType   string                    `json:"finishType"`
	CoreType     string                    `json:"coreType"`
	CarpetArea   float64                   `json:"carpetArea"`
	CustomerName string                    `json:"customerName,omitempty"`
	Details      []QuotationDetailResponse `json:"details"`
	TotalCost    float64                   `json:"totalCost"`
	CreatedAt    time.Time                 `json:"createdAt"`
	ValidUntil   time.Time                 `json:"validUntil"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	details := make([]QuotationDetailResponse, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		details = append(details, QuotationDetailResponse{
			Room:        li.Room,
			Item:        li.ItemName,
			Size:        li.SizeLabel,
			Price:       li.Price.InexactFloat64(),
			Description: li.Description,
			IsCustom:    li.IsCustom,
		})
	}
	return QuotationResponse{
		ID:           q.ID,
		FormID:       q.FormID,
		DwellingSize: q.DwellingSize,
		BHKType:      q.DwellingSize,
		FinishType:   q.FinishType,
		CoreType:     q.CoreType,
		CarpetArea:   q.CarpetArea,
		CustomerName: q.CustomerName,
		Details:      details,
		TotalCost:    q.TotalCost.InexactFloat64(),
		CreatedAt:    q.CreatedAt,
		ValidUntil:   q.ValidUntil,
	}
}

type SubmitResponse struct {
	Message       string `json:"message"`
	FormID        string `json:"formId"`
	QuotationID   string `json:"quotationId"`
	EmailSent     bool   `json:"emailSent"`
	QuotationLink string `json:"quotationLink"`
}

func FromSubmission(res usecase.SubmissionResult) SubmitResponse {
	return SubmitResponse{
		Message:       SubmitSuccessMessage,
		FormID:        res.Form.ID,
		QuotationID:   res.Quotation.ID,
		EmailSent:     res.EmailSent,
		QuotationLink: res.QuotationLink,
	}
}
