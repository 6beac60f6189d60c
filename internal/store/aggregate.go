package store

import (
	"context"

	"github.com/charityfund/charity/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SumDonations returns the total amount over all donations, zero when there
// are none. The sum is taken in decimal, not in SQL, so it stays exact on
// every backend.
func (s *Store) SumDonations(ctx context.Context) (decimal.Decimal, error) {
	var donations []models.Donation

	err := s.read(ctx, func(tx *gorm.DB) error {
		return tx.Select("id", "amount").Find(&donations).Error
	})

	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, donation := range donations {
		total = total.Add(donation.Amount)
	}

	return total, nil
}

type ProjectProgress struct {
	ProjectID      uint            `json:"project_id"`
	Name           string          `json:"name"`
	Goal           decimal.Decimal `json:"goal_amount"`
	Raised         decimal.Decimal `json:"raised"`
	Donations      int             `json:"donations"`
	Volunteers     int             `json:"volunteers"`
	VolunteerHours int             `json:"volunteer_hours"`
}

// Remaining is the part of the goal not yet raised, never below zero.
func (p ProjectProgress) Remaining() decimal.Decimal {
	remaining := p.Goal.Sub(p.Raised)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// ProjectProgress totals donations and volunteer hours per project.
func (s *Store) ProjectProgress(ctx context.Context) ([]ProjectProgress, error) {
	var projects []models.Project

	err := s.read(ctx, func(tx *gorm.DB) error {
		return tx.Preload("Donations").Preload("VolunteerProjects").Order("id").Find(&projects).Error
	})

	if err != nil {
		return nil, err
	}

	progress := make([]ProjectProgress, 0, len(projects))

	for _, project := range projects {
		p := ProjectProgress{
			ProjectID: project.ID,
			Name:      project.Name,
			Goal:      project.GoalAmount,
			Raised:    decimal.Zero,
			Donations: len(project.Donations),
		}

		for _, donation := range project.Donations {
			p.Raised = p.Raised.Add(donation.Amount)
		}

		volunteers := make(map[uint]struct{})
		for _, link := range project.VolunteerProjects {
			p.VolunteerHours += link.HoursWorked
			volunteers[link.VolunteerID] = struct{}{}
		}
		p.Volunteers = len(volunteers)

		progress = append(progress, p)
	}

	return progress, nil
}
