package practitioner

import (
	"context"
	"fmt"

	practitionerRepo "github.com/bholdsworth/mindful-booking-noushy/database/repository/practitioner"
	"github.com/bholdsworth/mindful-booking-noushy/models"
)

// PractitionerService manages the clinic's treating staff roster.
type PractitionerService interface {
	CreatePractitioner(ctx context.Context, practitioner models.Practitioner) (*models.Practitioner, error)
	GetPractitionerByID(ctx context.Context, id string) (*models.Practitioner, error)
	UpdatePractitioner(ctx context.Context, practitioner models.Practitioner) error
	DeactivatePractitioner(ctx context.Context, id string) error
	DeletePractitioner(ctx context.Context, id string) error
	ListPractitioners(ctx context.Context) ([]models.Practitioner, error)
}

// DefaultPractitionerService is the production implementation.
type DefaultPractitionerService struct {
	Repo practitionerRepo.PractitionerRepository
}

func (s *DefaultPractitionerService) CreatePractitioner(ctx context.Context, practitioner models.Practitioner) (*models.Practitioner, error) {
	if practitioner.Name == "" || practitioner.Email == "" {
		return nil, fmt.Errorf("practitioner name and email are required")
	}
	if err := s.Repo.Create(ctx, practitioner); err != nil {
		return nil, fmt.Errorf("failed to create practitioner: %w", err)
	}
	return &practitioner, nil
}

func (s *DefaultPractitionerService) GetPractitionerByID(ctx context.Context, id string) (*models.Practitioner, error) {
	practitioner, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("practitioner not found: %w", err)
	}
	return practitioner, nil
}

func (s *DefaultPractitionerService) UpdatePractitioner(ctx context.Context, practitioner models.Practitioner) error {
	if practitioner.ID == "" {
		return fmt.Errorf("practitioner id is required")
	}
	if err := s.Repo.Update(ctx, practitioner); err != nil {
		return fmt.Errorf("failed to update practitioner: %w", err)
	}
	return nil
}

// DeactivatePractitioner keeps the record but removes the practitioner from
// active scheduling.
func (s *DefaultPractitionerService) DeactivatePractitioner(ctx context.Context, id string) error {
	practitioner, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("practitioner not found: %w", err)
	}
	practitioner.Status = "Inactive"
	if err := s.Repo.Update(ctx, *practitioner); err != nil {
		return fmt.Errorf("failed to deactivate practitioner: %w", err)
	}
	return nil
}

func (s *DefaultPractitionerService) DeletePractitioner(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete practitioner: %w", err)
	}
	return nil
}

func (s *DefaultPractitionerService) ListPractitioners(ctx context.Context) ([]models.Practitioner, error) {
	practitioners, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list practitioners: %w", err)
	}
	return practitioners, nil
}
