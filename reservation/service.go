package reservation

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/agendaja/agenda-api/models"
)

var (
	// ErrSlotUnavailable is returned when the schedule slot does not exist
	// or has already been claimed by another hiring.
	ErrSlotUnavailable = errors.New("slot indisponível")
	// ErrHiringNotFound is returned for operations on a hiring id that
	// does not exist.
	ErrHiringNotFound = errors.New("contratação não encontrada")
)

// Request carries the three ids a reservation binds together.
type Request struct {
	ClientID    uint `json:"clienteId"`
	VariationID uint `json:"variacaoId"`
	SlotID      uint `json:"agendaId"`
}

// Repository is the persistence contract the reservation service depends on.
// ReserveSlot must claim the slot and create the hiring atomically: two
// concurrent reservations of the same slot must not both succeed.
type Repository interface {
	ReserveSlot(ctx context.Context, req Request) (models.Hiring, error)
	CancelHiring(ctx context.Context, hiringID uint) (models.Hiring, error)
	ListByClient(ctx context.Context, clientID uint) ([]models.Hiring, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Reserve claims the slot and records the hiring. Failure to claim is the
// only source of ErrSlotUnavailable; there is no separate availability
// pre-check.
func (s *Service) Reserve(ctx context.Context, req Request) (models.Hiring, error) {
	hiring, err := s.repo.ReserveSlot(ctx, req)
	if err != nil {
		if errors.Is(err, ErrSlotUnavailable) {
			return models.Hiring{}, ErrSlotUnavailable
		}
		return models.Hiring{}, fmt.Errorf("reserve slot %d: %w", req.SlotID, err)
	}

	log.Printf("Hiring %d created for client %d on slot %d", hiring.ID, hiring.ClientID, hiring.SlotID)
	return hiring, nil
}

// Cancel transitions an active hiring to CANCELADA and releases its slot.
func (s *Service) Cancel(ctx context.Context, hiringID uint) (models.Hiring, error) {
	hiring, err := s.repo.CancelHiring(ctx, hiringID)
	if err != nil {
		return models.Hiring{}, err
	}

	log.Printf("Hiring %d canceled, slot %d released", hiring.ID, hiring.SlotID)
	return hiring, nil
}

// ListByClient returns all hirings of a client with variation and slot joined.
func (s *Service) ListByClient(ctx context.Context, clientID uint) ([]models.Hiring, error) {
	return s.repo.ListByClient(ctx, clientID)
}
