package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Donation struct {
	BaseModel

	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	DonationDate time.Time       `gorm:"not null" json:"donation_date"`
	DonorID      uint            `gorm:"not null;index" json:"donor_id"`
	ProjectID    uint            `gorm:"not null;index" json:"project_id"`

	// Relationships
	Donor   *Donor   `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
