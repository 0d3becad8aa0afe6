package patient

import (
	"context"
	"fmt"

	patientRepo "github.com/bholdsworth/mindful-booking-noushy/database/repository/patient"
	"github.com/bholdsworth/mindful-booking-noushy/models"
)

// PatientService manages clinic patient records and their treatment notes.
type PatientService interface {
	CreatePatient(ctx context.Context, patient models.Patient) (*models.Patient, error)
	GetPatientByID(ctx context.Context, id string) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patient models.Patient) error
	DeletePatient(ctx context.Context, id string) error
	SearchPatients(ctx context.Context, term string) ([]models.Patient, error)
	AddTreatmentNote(ctx context.Context, note models.TreatmentNote) error
	GetTreatmentNotes(ctx context.Context, patientID string) ([]models.TreatmentNote, error)
}

// DefaultPatientService is the production implementation.
type DefaultPatientService struct {
	Repo patientRepo.PatientRepository
}

func (s *DefaultPatientService) CreatePatient(ctx context.Context, patient models.Patient) (*models.Patient, error) {
	if patient.Name == "" {
		return nil, fmt.Errorf("patient name is required")
	}
	if err := s.Repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return &patient, nil
}

func (s *DefaultPatientService) GetPatientByID(ctx context.Context, id string) (*models.Patient, error) {
	patient, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("patient not found: %w", err)
	}
	return patient, nil
}

func (s *DefaultPatientService) UpdatePatient(ctx context.Context, patient models.Patient) error {
	if patient.ID == "" {
		return fmt.Errorf("patient id is required")
	}
	if err := s.Repo.Update(ctx, patient); err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return nil
}

func (s *DefaultPatientService) DeletePatient(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}

func (s *DefaultPatientService) SearchPatients(ctx context.Context, term string) ([]models.Patient, error) {
	patients, err := s.Repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search patients: %w", err)
	}
	return patients, nil
}

func (s *DefaultPatientService) AddTreatmentNote(ctx context.Context, note models.TreatmentNote) error {
	if note.PatientID == "" || note.Content == "" {
		return fmt.Errorf("treatment note needs a patient and content")
	}
	// Reject notes against patients that do not exist.
	if _, err := s.Repo.GetByID(ctx, note.PatientID); err != nil {
		return fmt.Errorf("patient not found: %w", err)
	}
	if err := s.Repo.AddNote(ctx, note); err != nil {
		return fmt.Errorf("failed to add treatment note: %w", err)
	}
	return nil
}

func (s *DefaultPatientService) GetTreatmentNotes(ctx context.Context, patientID string) ([]models.TreatmentNote, error) {
	notes, err := s.Repo.GetNotesByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load treatment notes: %w", err)
	}
	return notes, nil
}
