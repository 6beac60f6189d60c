package models

type Volunteer struct {
	BaseModel

	Name  string `gorm:"not null" json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	// Relationships
	VolunteerProjects []VolunteerProject `gorm:"foreignKey:VolunteerID" json:"volunteer_projects,omitempty"`
}
