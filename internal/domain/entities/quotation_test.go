package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseCarpetArea(t *testing.T) {
	cases := []struct {
		raw     string
		area    float64
		present bool
	}{
		{raw: "", area: 0, present: false},
		{raw: "   ", area: 0, present: false},
		{raw: "500", area: 500, present: true},
		{raw: " 812.5 ", area: 812.5, present: true},
		{raw: "abc", area: 0, present: true},
		{raw: "-20", area: 0, present: true},
		{raw: "NaN", area: 0, present: true},
		{raw: "Inf", area: 0, present: true},
	}
	for _, tc := range cases {
		area, present := ParseCarpetArea(tc.raw)
		if area != tc.area || present != tc.present {
			t.Fatalf("ParseCarpetArea(%q) = (%v, %v), want (%v, %v)", tc.raw, area, present, tc.area, tc.present)
		}
	}
}

func TestQuotation_ExpiredAt(t *testing.T) {
	created := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	q := Quotation{CreatedAt: created, ValidUntil: created.Add(QuotationValidity)}

	if q.ExpiredAt(created.Add(14 * 24 * time.Hour)) {
		t.Fatalf("expected valid on day 14")
	}
	if q.ExpiredAt(q.ValidUntil) {
		t.Fatalf("expected valid exactly at validUntil")
	}
	if !q.ExpiredAt(q.ValidUntil.Add(time.Second)) {
		t.Fatalf("expected expired after validUntil")
	}
}

func TestQuotation_HasCustomItems(t *testing.T) {
	q := Quotation{LineItems: []QuotationLineItem{{Room: "LivingRoom", ItemName: "TV Unit", Price: decimal.NewFromInt(41000)}}}
	if q.HasCustomItems() {
		t.Fatalf("expected no custom items")
	}
	q.LineItems = append(q.LineItems, QuotationLineItem{Room: "LivingRoom", ItemName: "Bar Counter", IsCustom: true})
	if !q.HasCustomItems() {
		t.Fatalf("expected custom items")
	}
}

func TestRoomOptions_Clone(t *testing.T) {
	base := RoomOptions{"LivingRoom": {"TV Unit", "Sofa"}}
	cp := base.Clone()
	cp["LivingRoom"][0] = "changed"
	cp["LivingRoom"] = append(cp["LivingRoom"], "Console")
	if base["LivingRoom"][0] != "TV Unit" || len(base["LivingRoom"]) != 2 {
		t.Fatalf("clone must not share storage: %+v", base)
	}
}

func TestIsImmutableRoom(t *testing.T) {
	if !IsImmutableRoom(RoomKitchen) || !IsImmutableRoom(RoomWholeHousePainting) {
		t.Fatalf("kitchen and painting are immutable")
	}
	if IsImmutableRoom("LivingRoom") {
		t.Fatalf("living room is extensible")
	}
}
