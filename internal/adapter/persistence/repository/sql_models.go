package repository

import (
	"time"

	"warsto_quotation/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Free-text columns are unbounded text: the raw carpet area and contact
// fields are stored as submitted and must never fail the insert.
type formRecord struct {
	ID           string              `gorm:"primaryKey;size:36"`
	VisitorKey   string              `gorm:"size:128;index"`
	DwellingSize string              `gorm:"size:32;not null"`
	Selections   map[string][]string `gorm:"type:text;serializer:json"`
	CarpetArea   string              `gorm:"type:text"`
	Name         string              `gorm:"type:text;not null"`
	Email        string              `gorm:"type:text;not null"`
	PhoneNumber  string              `gorm:"size:20;not null"`
	PropertyName string              `gorm:"type:text;not null"`
	PayloadRaw   string              `gorm:"type:text"`
	CreatedAt    time.Time           `gorm:"not null"`
}

func (formRecord) TableName() string { return "forms" }

type quotationRecord struct {
	ID           string                       `gorm:"primaryKey;size:36"`
	FormID       string                       `gorm:"size:36;not null;index"`
	DwellingSize string                       `gorm:"size:32;not null"`
	FinishType   string                       `gorm:"size:64"`
	CoreType     string                       `gorm:"size:64"`
	CarpetArea   float64                      `gorm:"not null;default:0"`
	CustomerName string                       `gorm:"type:text"`
	LineItems    []entities.QuotationLineItem `gorm:"type:text;serializer:json"`
	TotalCost    decimal.Decimal              `gorm:"type:varchar(32);not null"`
	CreatedAt    time.Time                    `gorm:"not null"`
	ValidUntil   time.Time                    `gorm:"not null;index"`
}

func (quotationRecord) TableName() string { return "quotations" }

// MigrateSQL creates or updates the forms and quotations tables.
func MigrateSQL(db *gorm.DB) error {
	return db.AutoMigrate(&formRecord{}, &quotationRecord{})
}
