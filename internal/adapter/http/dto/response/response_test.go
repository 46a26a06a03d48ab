package response

import (
	"encoding/json"
	"testing"
	"time"

	"warsto_quotation/internal/domain/entities"
	"warsto_quotation/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromQuotation(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quotation{
		ID:           "q-1",
		FormID:       "f-1",
		DwellingSize: "1 BHK",
		FinishType:   entities.FinishTypeStandard,
		CoreType:     entities.CoreTypeStandard,
		CarpetArea:   500,
		CustomerName: "Asha",
		LineItems: []entities.QuotationLineItem{
			{Room: "WholeHousePainting", ItemName: "Whole House Painting", SizeLabel: "500 sq ft", Price: decimal.NewFromInt(96250)},
			{Room: "LivingRoom", ItemName: "Bar Counter", SizeLabel: "-", Price: decimal.Zero, IsCustom: true},
		},
		TotalCost:  decimal.NewFromInt(96250),
		CreatedAt:  now,
		ValidUntil: now.Add(entities.QuotationValidity),
	}

	res := FromQuotation(q)
	if res.ID != "q-1" || res.FormID != "f-1" || res.BHKType != "1 BHK" || res.DwellingSize != "1 BHK" {
		t.Fatalf("unexpected header: %+v", res)
	}
	if len(res.Details) != 2 || res.Details[0].Price != 96250 || !res.Details[1].IsCustom || res.Details[1].Size != "-" {
		t.Fatalf("unexpected details: %+v", res.Details)
	}
	if res.TotalCost != 96250 || !res.ValidUntil.Equal(q.ValidUntil) {
		t.Fatalf("unexpected totals: %+v", res)
	}

	body, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	_ = json.Unmarshal(body, &decoded)
	for _, key := range []string{"details", "totalCost", "validUntil", "customerName", "carpetArea"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("missing %s in %s", key, body)
		}
	}
}

func TestFromQuotation_NoLines(t *testing.T) {
	body, _ := json.Marshal(FromQuotation(entities.Quotation{ID: "q-1"}))
	var decoded map[string]any
	_ = json.Unmarshal(body, &decoded)
	if d, ok := decoded["details"].([]any); !ok || len(d) != 0 {
		t.Fatalf("details must be an empty array: %s", body)
	}
}

func TestFromSubmission(t *testing.T) {
	res := FromSubmission(usecase.SubmissionResult{
		Form:          entities.Form{ID: "f-1"},
		Quotation:     entities.Quotation{ID: "q-1"},
		QuotationLink: "https://quotes.example.com/quotation/q-1",
		EmailSent:     true,
	})
	if res.Message != SubmitSuccessMessage || res.FormID != "f-1" || res.QuotationID != "q-1" || !res.EmailSent {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromUpdatedOptions(t *testing.T) {
	res := FromUpdatedOptions(nil)
	if res.Message != CustomOptionAddedMessage || res.UpdatedOptions == nil {
		t.Fatalf("unexpected response: %+v", res)
	}

	opts := FromRoomOptions(entities.RoomOptions{"LivingRoom": {"TV Unit"}, "Empty": nil})
	if len(opts["LivingRoom"]) != 1 || opts["Empty"] == nil {
		t.Fatalf("unexpected options: %v", opts)
	}
}
