package store

import (
	"context"

	"github.com/charityfund/charity/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListVolunteers returns every volunteer ordered by id with the projects
// they worked on.
func (s *Store) ListVolunteers(ctx context.Context) ([]models.Volunteer, error) {
	var volunteers []models.Volunteer

	err := s.read(ctx, func(tx *gorm.DB) error {
		return tx.Preload("VolunteerProjects", orderByID).
			Preload("VolunteerProjects.Project").
			Order("id").
			Find(&volunteers).Error
	})

	if err != nil {
		return nil, err
	}

	for _, volunteer := range volunteers {
		for _, link := range volunteer.VolunteerProjects {
			if link.Project == nil {
				return nil, &NotFoundError{Kind: KindProject, ID: link.ProjectID, Link: link.ID}
			}
		}
	}

	return volunteers, nil
}

func (s *Store) GetVolunteer(ctx context.Context, id uint) (models.Volunteer, error) {
	var volunteer models.Volunteer

	err := s.read(ctx, func(tx *gorm.DB) error {
		return first(tx, KindVolunteer, id, &volunteer)
	})

	return volunteer, err
}

func (s *Store) CreateVolunteer(ctx context.Context, in ContactInput) (models.Volunteer, error) {
	in = in.normalized()

	if err := validateInput(in); err != nil {
		return models.Volunteer{}, err
	}

	volunteer := models.Volunteer{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}

	err := s.transact(ctx, func(tx *gorm.DB) error {
		return tx.Create(&volunteer).Error
	})

	if err != nil {
		return models.Volunteer{}, err
	}

	s.logger.Info("volunteer created", zap.Uint("id", volunteer.ID))
	return volunteer, nil
}

func (s *Store) UpdateVolunteer(ctx context.Context, id uint, patch ContactPatch) (models.Volunteer, error) {
	var volunteer models.Volunteer

	err := s.transact(ctx, func(tx *gorm.DB) error {
		if err := first(tx, KindVolunteer, id, &volunteer); err != nil {
			return err
		}

		applyText(&volunteer.Name, patch.Name)
		applyText(&volunteer.Email, patch.Email)
		applyText(&volunteer.Phone, patch.Phone)

		return tx.Omit(clause.Associations).Save(&volunteer).Error
	})

	if err != nil {
		return models.Volunteer{}, err
	}

	s.logger.Info("volunteer updated", zap.Uint("id", id))
	return volunteer, nil
}

// DeleteVolunteer removes only the volunteer row. Links that still name the
// volunteer are left in place and surface as not found when listed.
func (s *Store) DeleteVolunteer(ctx context.Context, id uint) error {
	var orphaned int64

	err := s.transact(ctx, func(tx *gorm.DB) error {
		var volunteer models.Volunteer

		if err := first(tx, KindVolunteer, id, &volunteer); err != nil {
			return err
		}

		if err := tx.Model(&models.VolunteerProject{}).Where("volunteer_id = ?", id).Count(&orphaned).Error; err != nil {
			return err
		}

		return tx.Delete(&volunteer).Error
	})

	if err != nil {
		return err
	}

	if orphaned > 0 {
		s.logger.Warn("volunteer deleted with remaining project links", zap.Uint("id", id), zap.Int64("links", orphaned))
	} else {
		s.logger.Info("volunteer deleted", zap.Uint("id", id))
	}

	return nil
}
