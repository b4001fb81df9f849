package reservation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/agendaja/agenda-api/models"
)

// GormRepository implements Repository on a GORM connection.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// ReserveSlot claims the slot with a conditional update and creates the
// hiring inside one transaction. Zero rows affected means the slot is
// missing or already taken; nothing is written in that case.
func (r *GormRepository) ReserveSlot(ctx context.Context, req Request) (models.Hiring, error) {
	var hiring models.Hiring

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claim := tx.Model(&models.ScheduleSlot{}).
			Where("id = ? AND available = ?", req.SlotID, true).
			Update("available", false)
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			return ErrSlotUnavailable
		}

		hiring = models.Hiring{
			ClientID:    req.ClientID,
			VariationID: req.VariationID,
			SlotID:      req.SlotID,
			Status:      models.StatusActive,
		}
		return tx.Create(&hiring).Error
	})
	if err != nil {
		return models.Hiring{}, err
	}

	return hiring, nil
}

// CancelHiring loads the hiring and runs its status transition; the slot
// release happens inside the same transaction.
func (r *GormRepository) CancelHiring(ctx context.Context, hiringID uint) (models.Hiring, error) {
	var hiring models.Hiring

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&hiring, hiringID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHiringNotFound
			}
			return err
		}
		return hiring.UpdateStatus(tx, models.StatusCanceled)
	})
	if err != nil {
		return models.Hiring{}, err
	}

	return hiring, nil
}

// ListByClient returns an empty slice, not nil, so an empty listing
// serializes as [] like the original API.
func (r *GormRepository) ListByClient(ctx context.Context, clientID uint) ([]models.Hiring, error) {
	hirings := []models.Hiring{}
	err := r.db.WithContext(ctx).
		Preload("Variation").
		Preload("Slot").
		Where("client_id = ?", clientID).
		Find(&hirings).Error
	if err != nil {
		return nil, err
	}
	return hirings, nil
}
