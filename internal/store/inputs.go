package store

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ContactInput carries the fields of a new donor or volunteer.
type ContactInput struct {
	Name  string `validate:"required"`
	Email string
	Phone string
}

func (in ContactInput) normalized() ContactInput {
	return ContactInput{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Phone: strings.TrimSpace(in.Phone),
	}
}

// ContactPatch updates a donor or volunteer. Nil or blank fields are left
// unchanged.
type ContactPatch struct {
	Name  *string
	Email *string
	Phone *string
}

type DonationInput struct {
	Amount    decimal.Decimal
	DonorID   uint `validate:"required" label:"donor id"`
	ProjectID uint `validate:"required" label:"project id"`

	// Date defaults to the store clock when zero.
	Date time.Time
}

type DonationPatch struct {
	Amount    *decimal.Decimal
	DonorID   *uint
	ProjectID *uint
}

type ProjectInput struct {
	Name        string `validate:"required"`
	Description string
	GoalAmount  decimal.Decimal
}

func (in ProjectInput) normalized() ProjectInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

type ProjectPatch struct {
	Name        *string
	Description *string
	GoalAmount  *decimal.Decimal
}

type VolunteerProjectInput struct {
	VolunteerID uint `validate:"required" label:"volunteer id"`
	ProjectID   uint `validate:"required" label:"project id"`
	HoursWorked int  `validate:"gte=0" label:"hours worked"`
}

type VolunteerProjectPatch struct {
	VolunteerID *uint
	ProjectID   *uint
	HoursWorked *int
}
