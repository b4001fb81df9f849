package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInvalidTransition marks a status change the state machine forbids,
// e.g. canceling an already canceled hiring.
var ErrInvalidTransition = errors.New("transição de status inválida")

type HiringStatus string

const (
	StatusActive    HiringStatus = "ATIVA"
	StatusCanceled  HiringStatus = "CANCELADA"
	StatusCompleted HiringStatus = "CONCLUIDA"
)

// Hiring binds a client, a service variation and a schedule slot.
type Hiring struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Code        string        `json:"codigo" gorm:"size:36"`
	ClientID    uint          `json:"clienteId"`
	Client      *User         `json:"cliente,omitempty" gorm:"foreignKey:ClientID"`
	VariationID uint          `json:"variacaoId"`
	Variation   *Variation    `json:"variacao,omitempty" gorm:"foreignKey:VariationID"`
	SlotID      uint          `json:"agendaId"`
	Slot        *ScheduleSlot `json:"agenda,omitempty" gorm:"foreignKey:SlotID"`
	Status      HiringStatus  `json:"status" gorm:"size:20"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (h *Hiring) BeforeCreate(tx *gorm.DB) error {
	if h.Status == "" {
		h.Status = StatusActive
	}
	if h.Code == "" {
		h.Code = uuid.NewString()
	}
	return nil
}

// UpdateStatus applies a status transition. Cancellation frees the slot in
// the same transaction so that a slot is unavailable iff an active hiring
// references it.
func (h *Hiring) UpdateStatus(tx *gorm.DB, newStatus HiringStatus) error {
	switch h.Status {
	case StatusActive:
		if newStatus != StatusCanceled && newStatus != StatusCompleted {
			return fmt.Errorf("from %s to %s: %w", h.Status, newStatus, ErrInvalidTransition)
		}
	case StatusCanceled, StatusCompleted:
		return fmt.Errorf("no transitions allowed from %s: %w", h.Status, ErrInvalidTransition)
	default:
		return fmt.Errorf("unknown hiring status %s: %w", h.Status, ErrInvalidTransition)
	}

	h.Status = newStatus
	if err := tx.Save(h).Error; err != nil {
		return err
	}

	if newStatus == StatusCanceled {
		return tx.Model(&ScheduleSlot{}).
			Where("id = ?", h.SlotID).
			Update("available", true).Error
	}

	return nil
}
