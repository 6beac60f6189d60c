package models

type Donor struct {
	BaseModel

	Name  string `gorm:"not null" json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	// Relationships
	Donations []Donation `gorm:"foreignKey:DonorID" json:"donations,omitempty"`
}
