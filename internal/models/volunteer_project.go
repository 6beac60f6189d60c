package models

// VolunteerProject records the hours a volunteer worked on a project.
type VolunteerProject struct {
	BaseModel

	VolunteerID uint `gorm:"not null;index" json:"volunteer_id"`
	ProjectID   uint `gorm:"not null;index" json:"project_id"`
	HoursWorked int  `gorm:"not null;default:0" json:"hours_worked"`

	// Relationships
	Volunteer *Volunteer `gorm:"foreignKey:VolunteerID" json:"volunteer,omitempty"`
	Project   *Project   `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
