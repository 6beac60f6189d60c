package store

import (
	"context"

	"github.com/charityfund/charity/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListDonations returns every donation ordered by id with its donor and
// project resolved.
func (s *Store) ListDonations(ctx context.Context) ([]models.Donation, error) {
	var donations []models.Donation

	err := s.read(ctx, func(tx *gorm.DB) error {
		return tx.Preload("Donor").Preload("Project").Order("id").Find(&donations).Error
	})

	if err != nil {
		return nil, err
	}

	for _, donation := range donations {
		if err := checkDonationRefs(donation); err != nil {
			return nil, err
		}
	}

	return donations, nil
}

func (s *Store) GetDonation(ctx context.Context, id uint) (models.Donation, error) {
	var donation models.Donation

	err := s.read(ctx, func(tx *gorm.DB) error {
		if err := first(tx.Preload("Donor").Preload("Project"), KindDonation, id, &donation); err != nil {
			return err
		}
		return checkDonationRefs(donation)
	})

	return donation, err
}

func (s *Store) CreateDonation(ctx context.Context, in DonationInput) (models.Donation, error) {
	if err := validateInput(in); err != nil {
		return models.Donation{}, err
	}

	if err := checkMoney("amount", in.Amount); err != nil {
		return models.Donation{}, err
	}

	donation := models.Donation{
		Amount:       in.Amount,
		DonationDate: in.Date,
		DonorID:      in.DonorID,
		ProjectID:    in.ProjectID,
	}

	if donation.DonationDate.IsZero() {
		donation.DonationDate = s.now()
	}

	err := s.transact(ctx, func(tx *gorm.DB) error {
		if err := requireRef(tx, KindDonor, &models.Donor{}, in.DonorID); err != nil {
			return err
		}

		if err := requireRef(tx, KindProject, &models.Project{}, in.ProjectID); err != nil {
			return err
		}

		return tx.Create(&donation).Error
	})

	if err != nil {
		return models.Donation{}, err
	}

	s.logger.Info("donation created",
		zap.Uint("id", donation.ID),
		zap.Uint("donor_id", donation.DonorID),
		zap.Uint("project_id", donation.ProjectID),
		zap.String("amount", donation.Amount.StringFixed(moneyScale)),
	)

	return donation, nil
}

func (s *Store) UpdateDonation(ctx context.Context, id uint, patch DonationPatch) (models.Donation, error) {
	if patch.Amount != nil {
		if err := checkMoney("amount", *patch.Amount); err != nil {
			return models.Donation{}, err
		}
	}

	var donation models.Donation

	err := s.transact(ctx, func(tx *gorm.DB) error {
		if err := first(tx, KindDonation, id, &donation); err != nil {
			return err
		}

		if patch.Amount != nil {
			donation.Amount = *patch.Amount
		}

		if patch.DonorID != nil {
			if err := requireRef(tx, KindDonor, &models.Donor{}, *patch.DonorID); err != nil {
				return err
			}
			donation.DonorID = *patch.DonorID
		}

		if patch.ProjectID != nil {
			if err := requireRef(tx, KindProject, &models.Project{}, *patch.ProjectID); err != nil {
				return err
			}
			donation.ProjectID = *patch.ProjectID
		}

		return tx.Omit(clause.Associations).Save(&donation).Error
	})

	if err != nil {
		return models.Donation{}, err
	}

	s.logger.Info("donation updated", zap.Uint("id", id))
	return donation, nil
}

func (s *Store) DeleteDonation(ctx context.Context, id uint) error {
	err := s.transact(ctx, func(tx *gorm.DB) error {
		var donation models.Donation

		if err := first(tx, KindDonation, id, &donation); err != nil {
			return err
		}

		return tx.Delete(&donation).Error
	})

	if err != nil {
		return err
	}

	s.logger.Info("donation deleted", zap.Uint("id", id))
	return nil
}

func checkDonationRefs(donation models.Donation) error {
	if donation.Donor == nil {
		return &NotFoundError{Kind: KindDonor, ID: donation.DonorID}
	}
	if donation.Project == nil {
		return &NotFoundError{Kind: KindProject, ID: donation.ProjectID}
	}
	return nil
}
