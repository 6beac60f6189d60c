package types

import (
	"time"

	"github.com/charityfund/charity/internal/store"
	"github.com/shopspring/decimal"
)

// Money travels as a JSON string ("50.00") so no amount passes through a
// float on the way in.

type ContactRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r ContactRequest) ToInput() store.ContactInput {
	return store.ContactInput{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

type ContactPatchRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

func (r ContactPatchRequest) ToPatch() store.ContactPatch {
	return store.ContactPatch{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

type DonationRequest struct {
	Amount       string     `json:"amount" binding:"required"`
	DonorID      uint       `json:"donor_id" binding:"required"`
	ProjectID    uint       `json:"project_id" binding:"required"`
	DonationDate *time.Time `json:"donation_date"`
}

func (r DonationRequest) ToInput() (store.DonationInput, error) {
	amount, err := store.ParseMoney("amount", r.Amount)
	if err != nil {
		return store.DonationInput{}, err
	}

	in := store.DonationInput{
		Amount:    amount,
		DonorID:   r.DonorID,
		ProjectID: r.ProjectID,
	}
	if r.DonationDate != nil {
		in.Date = *r.DonationDate
	}

	return in, nil
}

type DonationPatchRequest struct {
	Amount    *string `json:"amount"`
	DonorID   *uint   `json:"donor_id"`
	ProjectID *uint   `json:"project_id"`
}

func (r DonationPatchRequest) ToPatch() (store.DonationPatch, error) {
	amount, err := optionalMoney("amount", r.Amount)
	if err != nil {
		return store.DonationPatch{}, err
	}

	return store.DonationPatch{Amount: amount, DonorID: r.DonorID, ProjectID: r.ProjectID}, nil
}

type ProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	GoalAmount  string `json:"goal_amount" binding:"required"`
}

func (r ProjectRequest) ToInput() (store.ProjectInput, error) {
	goal, err := store.ParseMoney("goal amount", r.GoalAmount)
	if err != nil {
		return store.ProjectInput{}, err
	}

	return store.ProjectInput{Name: r.Name, Description: r.Description, GoalAmount: goal}, nil
}

type ProjectPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	GoalAmount  *string `json:"goal_amount"`
}

func (r ProjectPatchRequest) ToPatch() (store.ProjectPatch, error) {
	goal, err := optionalMoney("goal amount", r.GoalAmount)
	if err != nil {
		return store.ProjectPatch{}, err
	}

	return store.ProjectPatch{Name: r.Name, Description: r.Description, GoalAmount: goal}, nil
}

type VolunteerProjectRequest struct {
	VolunteerID uint `json:"volunteer_id" binding:"required"`
	ProjectID   uint `json:"project_id" binding:"required"`
	HoursWorked int  `json:"hours_worked"`
}

func (r VolunteerProjectRequest) ToInput() store.VolunteerProjectInput {
	return store.VolunteerProjectInput{VolunteerID: r.VolunteerID, ProjectID: r.ProjectID, HoursWorked: r.HoursWorked}
}

type VolunteerProjectPatchRequest struct {
	VolunteerID *uint `json:"volunteer_id"`
	ProjectID   *uint `json:"project_id"`
	HoursWorked *int  `json:"hours_worked"`
}

func (r VolunteerProjectPatchRequest) ToPatch() store.VolunteerProjectPatch {
	return store.VolunteerProjectPatch{VolunteerID: r.VolunteerID, ProjectID: r.ProjectID, HoursWorked: r.HoursWorked}
}

// optionalMoney treats a missing or blank amount as "leave unchanged".
func optionalMoney(field string, s *string) (*decimal.Decimal, error) {
	if s == nil || *s == "" {
		return nil, nil
	}

	amount, err := store.ParseMoney(field, *s)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}
