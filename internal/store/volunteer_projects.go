package store

import (
	"context"

	"github.com/charityfund/charity/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) ListVolunteerProjects(ctx context.Context) ([]models.VolunteerProject, error) {
	var links []models.VolunteerProject

	err := s.read(ctx, func(tx *gorm.DB) error {
		return tx.Preload("Volunteer").Preload("Project").Order("id").Find(&links).Error
	})

	if err != nil {
		return nil, err
	}

	for _, link := range links {
		if err := checkLinkRefs(link); err != nil {
			return nil, err
		}
	}

	return links, nil
}

func (s *Store) GetVolunteerProject(ctx context.Context, id uint) (models.VolunteerProject, error) {
	var link models.VolunteerProject

	err := s.read(ctx, func(tx *gorm.DB) error {
		if err := first(tx.Preload("Volunteer").Preload("Project"), KindVolunteerProject, id, &link); err != nil {
			return err
		}
		return checkLinkRefs(link)
	})

	return link, err
}

func (s *Store) CreateVolunteerProject(ctx context.Context, in VolunteerProjectInput) (models.VolunteerProject, error) {
	if err := validateInput(in); err != nil {
		return models.VolunteerProject{}, err
	}

	link := models.VolunteerProject{
		VolunteerID: in.VolunteerID,
		ProjectID:   in.ProjectID,
		HoursWorked: in.HoursWorked,
	}

	err := s.transact(ctx, func(tx *gorm.DB) error {
		if err := requireRef(tx, KindVolunteer, &models.Volunteer{}, in.VolunteerID); err != nil {
			return err
		}

		if err := requireRef(tx, KindProject, &models.Project{}, in.ProjectID); err != nil {
			return err
		}

		return tx.Create(&link).Error
	})

	if err != nil {
		return models.VolunteerProject{}, err
	}

	s.logger.Info("volunteer project created",
		zap.Uint("id", link.ID),
		zap.Uint("volunteer_id", link.VolunteerID),
		zap.Uint("project_id", link.ProjectID),
	)

	return link, nil
}

func (s *Store) UpdateVolunteerProject(ctx context.Context, id uint, patch VolunteerProjectPatch) (models.VolunteerProject, error) {
	if patch.HoursWorked != nil && *patch.HoursWorked < 0 {
		return models.VolunteerProject{}, &ValidationError{Field: "hours worked", Reason: "must not be negative"}
	}

	var link models.VolunteerProject

	err := s.transact(ctx, func(tx *gorm.DB) error {
		if err := first(tx, KindVolunteerProject, id, &link); err != nil {
			return err
		}

		if patch.VolunteerID != nil {
			if err := requireRef(tx, KindVolunteer, &models.Volunteer{}, *patch.VolunteerID); err != nil {
				return err
			}
			link.VolunteerID = *patch.VolunteerID
		}

		if patch.ProjectID != nil {
			if err := requireRef(tx, KindProject, &models.Project{}, *patch.ProjectID); err != nil {
				return err
			}
			link.ProjectID = *patch.ProjectID
		}

		if patch.HoursWorked != nil {
			link.HoursWorked = *patch.HoursWorked
		}

		return tx.Omit(clause.Associations).Save(&link).Error
	})

	if err != nil {
		return models.VolunteerProject{}, err
	}

	s.logger.Info("volunteer project updated", zap.Uint("id", id))
	return link, nil
}

func (s *Store) DeleteVolunteerProject(ctx context.Context, id uint) error {
	err := s.transact(ctx, func(tx *gorm.DB) error {
		var link models.VolunteerProject

		if err := first(tx, KindVolunteerProject, id, &link); err != nil {
			return err
		}

		return tx.Delete(&link).Error
	})

	if err != nil {
		return err
	}

	s.logger.Info("volunteer project deleted", zap.Uint("id", id))
	return nil
}

func checkLinkRefs(link models.VolunteerProject) error {
	if link.Volunteer == nil {
		return &NotFoundError{Kind: KindVolunteer, ID: link.VolunteerID, Link: link.ID}
	}
	if link.Project == nil {
		return &NotFoundError{Kind: KindProject, ID: link.ProjectID, Link: link.ID}
	}
	return nil
}
