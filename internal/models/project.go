package models

import "github.com/shopspring/decimal"

type Project struct {
	BaseModel

	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	GoalAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"goal_amount"`

	// Relationships
	Donations         []Donation         `gorm:"foreignKey:ProjectID" json:"donations,omitempty"`
	VolunteerProjects []VolunteerProject `gorm:"foreignKey:ProjectID" json:"volunteer_projects,omitempty"`
}
