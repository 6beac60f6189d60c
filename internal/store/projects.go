package store

import (
	"context"

	"github.com/charityfund/charity/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListProjects returns every project ordered by id with its donations and
// volunteer links, each link carrying its volunteer.
func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project

	err := s.read(ctx, func(tx *gorm.DB) error {
		return tx.Preload("Donations", orderByID).
			Preload("VolunteerProjects", orderByID).
			Preload("VolunteerProjects.Volunteer").
			Order("id").
			Find(&projects).Error
	})

	if err != nil {
		return nil, err
	}

	for _, project := range projects {
		for _, link := range project.VolunteerProjects {
			if link.Volunteer == nil {
				return nil, &NotFoundError{Kind: KindVolunteer, ID: link.VolunteerID, Link: link.ID}
			}
		}
	}

	return projects, nil
}

func (s *Store) GetProject(ctx context.Context, id uint) (models.Project, error) {
	var project models.Project

	err := s.read(ctx, func(tx *gorm.DB) error {
		return first(tx, KindProject, id, &project)
	})

	return project, err
}

func (s *Store) CreateProject(ctx context.Context, in ProjectInput) (models.Project, error) {
	in = in.normalized()

	if err := validateInput(in); err != nil {
		return models.Project{}, err
	}

	if err := checkMoney("goal amount", in.GoalAmount); err != nil {
		return models.Project{}, err
	}

	project := models.Project{
		Name:        in.Name,
		Description: in.Description,
		GoalAmount:  in.GoalAmount,
	}

	err := s.transact(ctx, func(tx *gorm.DB) error {
		return tx.Create(&project).Error
	})

	if err != nil {
		return models.Project{}, err
	}

	s.logger.Info("project created", zap.Uint("id", project.ID))
	return project, nil
}

func (s *Store) UpdateProject(ctx context.Context, id uint, patch ProjectPatch) (models.Project, error) {
	if patch.GoalAmount != nil {
		if err := checkMoney("goal amount", *patch.GoalAmount); err != nil {
			return models.Project{}, err
		}
	}

	var project models.Project

	err := s.transact(ctx, func(tx *gorm.DB) error {
		if err := first(tx, KindProject, id, &project); err != nil {
			return err
		}

		applyText(&project.Name, patch.Name)
		applyText(&project.Description, patch.Description)

		if patch.GoalAmount != nil {
			project.GoalAmount = *patch.GoalAmount
		}

		return tx.Omit(clause.Associations).Save(&project).Error
	})

	if err != nil {
		return models.Project{}, err
	}

	s.logger.Info("project updated", zap.Uint("id", id))
	return project, nil
}

// DeleteProject removes the project, its volunteer links and its donations.
func (s *Store) DeleteProject(ctx context.Context, id uint) error {
	var links, donations int64

	err := s.transact(ctx, func(tx *gorm.DB) error {
		var project models.Project

		if err := first(tx, KindProject, id, &project); err != nil {
			return err
		}

		res := tx.Where("project_id = ?", id).Delete(&models.VolunteerProject{})
		if res.Error != nil {
			return res.Error
		}
		links = res.RowsAffected

		res = tx.Where("project_id = ?", id).Delete(&models.Donation{})
		if res.Error != nil {
			return res.Error
		}
		donations = res.RowsAffected

		return tx.Delete(&project).Error
	})

	if err != nil {
		return err
	}

	s.logger.Info("project deleted",
		zap.Uint("id", id),
		zap.Int64("volunteer_projects", links),
		zap.Int64("donations", donations),
	)

	return nil
}
