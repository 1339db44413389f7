package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category tags assignable to an upload. The tag comes from the uploader,
// not from the spreadsheet contents.
const (
	CategoryFruits     = "fruits"
	CategoryVegetables = "vegetables"
	CategorySpices     = "spices"
	CategoryGrains     = "grains"
	CategorySeafood    = "seafood"
)

// Categories lists every valid category tag.
var Categories = []string{
	CategoryFruits,
	CategoryVegetables,
	CategorySpices,
	CategoryGrains,
	CategorySeafood,
}

// ValidCategory reports whether tag is one of the known category tags.
func ValidCategory(tag string) bool {
	for _, c := range Categories {
		if tag == c {
			return true
		}
	}
	return false
}

// ErrDuplicateShipment is returned by the storage layer when an insert
// violates the shipment deduplication index.
var ErrDuplicateShipment = errors.New("duplicate shipment record")

// ShipmentRecord is one normalized customs shipment row. Records are created
// during import and never mutated afterwards.
//
// The composite unique index idx_shipment_dedup enforces that the tuple
// (identity key, shipment date, product description, HS code, quantity, FOB)
// appears at most once; a violating insert is a duplicate, not an error.
type ShipmentRecord struct {
	ID                   uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	IdentityKey          string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_shipment_dedup,priority:1" json:"identity_key"`
	ExporterName         string          `gorm:"type:varchar(255);index" json:"exporter_name"`
	ConsigneeName        string          `gorm:"type:varchar(255);index" json:"consignee_name"`
	ProductDescription   string          `gorm:"type:text;uniqueIndex:idx_shipment_dedup,priority:3" json:"product_description"`
	Category             string          `gorm:"type:varchar(50);not null;index" json:"category"` // fruits, vegetables, ...
	HsCode               string          `gorm:"type:varchar(20);index;uniqueIndex:idx_shipment_dedup,priority:4" json:"hs_code"`
	Quantity             decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0;uniqueIndex:idx_shipment_dedup,priority:5" json:"quantity"`
	Unit                 string          `gorm:"type:varchar(20);not null;default:'KGS'" json:"unit"`
	FobValue             decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0;uniqueIndex:idx_shipment_dedup,priority:6" json:"fob_value"`
	Currency             string          `gorm:"type:varchar(10);not null;default:'USD'" json:"currency"`
	PortOfLoading        string          `gorm:"type:varchar(100)" json:"port_of_loading"`
	PortOfDischarge      string          `gorm:"type:varchar(100)" json:"port_of_discharge"`
	CountryOfDestination string          `gorm:"type:varchar(100);index" json:"country_of_destination"`
	ShipmentDate         *time.Time      `gorm:"type:date;index;uniqueIndex:idx_shipment_dedup,priority:2" json:"shipment_date"`
	MonthYear            *string         `gorm:"type:varchar(7);index" json:"month_year"` // "YYYY-MM", derived from ShipmentDate
	BatchTag             string          `gorm:"type:varchar(64);not null;index" json:"batch_tag"`
	CreatedAt            time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// UploadBatch records one import run for traceability: who uploaded which
// file, under which tag, and what the run produced.
type UploadBatch struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BatchTag   string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"batch_tag"`
	FileName   string     `gorm:"type:varchar(255)" json:"file_name"`
	Category   string     `gorm:"type:varchar(50);not null" json:"category"`
	TotalRows  int        `gorm:"not null" json:"total_rows"`
	Inserted   int        `gorm:"not null" json:"inserted"`
	Skipped    int        `gorm:"not null" json:"skipped"`
	NoID       int        `gorm:"not null" json:"no_id"`
	UploadedBy *uuid.UUID `gorm:"type:uuid;index" json:"uploaded_by"`
	User       *User      `gorm:"foreignKey:UploadedBy" json:"user,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}
