package store

import (
	"context"

	"github.com/charityfund/charity/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListDonors returns every donor ordered by id, each with its donations.
func (s *Store) ListDonors(ctx context.Context) ([]models.Donor, error) {
	var donors []models.Donor

	err := s.read(ctx, func(tx *gorm.DB) error {
		return tx.Preload("Donations", orderByID).Order("id").Find(&donors).Error
	})

	if err != nil {
		return nil, err
	}

	return donors, nil
}

func (s *Store) GetDonor(ctx context.Context, id uint) (models.Donor, error) {
	var donor models.Donor

	err := s.read(ctx, func(tx *gorm.DB) error {
		return first(tx.Preload("Donations", orderByID), KindDonor, id, &donor)
	})

	return donor, err
}

func (s *Store) CreateDonor(ctx context.Context, in ContactInput) (models.Donor, error) {
	in = in.normalized()

	if err := validateInput(in); err != nil {
		return models.Donor{}, err
	}

	donor := models.Donor{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}

	err := s.transact(ctx, func(tx *gorm.DB) error {
		return tx.Create(&donor).Error
	})

	if err != nil {
		return models.Donor{}, err
	}

	s.logger.Info("donor created", zap.Uint("id", donor.ID))
	return donor, nil
}

func (s *Store) UpdateDonor(ctx context.Context, id uint, patch ContactPatch) (models.Donor, error) {
	var donor models.Donor

	err := s.transact(ctx, func(tx *gorm.DB) error {
		if err := first(tx, KindDonor, id, &donor); err != nil {
			return err
		}

		applyText(&donor.Name, patch.Name)
		applyText(&donor.Email, patch.Email)
		applyText(&donor.Phone, patch.Phone)

		return tx.Omit(clause.Associations).Save(&donor).Error
	})

	if err != nil {
		return models.Donor{}, err
	}

	s.logger.Info("donor updated", zap.Uint("id", id))
	return donor, nil
}

// DeleteDonor removes the donor together with all of its donations.
func (s *Store) DeleteDonor(ctx context.Context, id uint) error {
	var cascaded int64

	err := s.transact(ctx, func(tx *gorm.DB) error {
		var donor models.Donor

		if err := first(tx, KindDonor, id, &donor); err != nil {
			return err
		}

		res := tx.Where("donor_id = ?", id).Delete(&models.Donation{})
		if res.Error != nil {
			return res.Error
		}
		cascaded = res.RowsAffected

		return tx.Delete(&donor).Error
	})

	if err != nil {
		return err
	}

	s.logger.Info("donor deleted", zap.Uint("id", id), zap.Int64("donations", cascaded))
	return nil
}
