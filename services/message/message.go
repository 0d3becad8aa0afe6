package message

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	messageRepo "github.com/bholdsworth/mindful-booking-noushy/database/repository/message"
	patientRepo "github.com/bholdsworth/mindful-booking-noushy/database/repository/patient"
	"github.com/bholdsworth/mindful-booking-noushy/models"
)

// MessageService manages per-patient conversation threads with the clinic.
type MessageService interface {
	ListThreads(ctx context.Context) ([]models.MessageThread, error)
	GetThreadMessages(ctx context.Context, threadID string) ([]models.Message, error)
	SendMessage(ctx context.Context, patientID, sender, content string) (*models.Message, error)
	MarkThreadRead(ctx context.Context, threadID string) error
}

// DefaultMessageService is the production implementation.
type DefaultMessageService struct {
	Repo        messageRepo.MessageRepository
	PatientRepo patientRepo.PatientRepository
}

func (s *DefaultMessageService) ListThreads(ctx context.Context) ([]models.MessageThread, error) {
	threads, err := s.Repo.ListThreads(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list message threads: %w", err)
	}
	return threads, nil
}

func (s *DefaultMessageService) GetThreadMessages(ctx context.Context, threadID string) ([]models.Message, error) {
	if _, err := s.Repo.GetThread(ctx, threadID); err != nil {
		return nil, fmt.Errorf("thread not found: %w", err)
	}
	messages, err := s.Repo.ListMessages(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}
	return messages, nil
}

// SendMessage appends to the patient's thread, creating the thread on first
// contact. Staff messages are born read; patient messages flag the thread
// unread for the console.
func (s *DefaultMessageService) SendMessage(ctx context.Context, patientID, sender, content string) (*models.Message, error) {
	if content == "" {
		return nil, fmt.Errorf("message content is required")
	}
	if sender != models.MessageSenderPatient && sender != models.MessageSenderStaff {
		return nil, fmt.Errorf("unknown sender %q", sender)
	}

	thread, err := s.Repo.GetThreadByPatient(ctx, patientID)
	if err == mongo.ErrNoDocuments {
		patient, perr := s.PatientRepo.GetByID(ctx, patientID)
		if perr != nil {
			return nil, fmt.Errorf("patient not found: %w", perr)
		}
		newThread := models.MessageThread{
			PatientID:   patientID,
			PatientName: patient.Name,
		}
		if cerr := s.Repo.CreateThread(ctx, newThread); cerr != nil {
			return nil, fmt.Errorf("failed to create thread: %w", cerr)
		}
		thread, err = s.Repo.GetThreadByPatient(ctx, patientID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve thread: %w", err)
	}

	message := models.Message{
		ID:        uuid.New().String(),
		ThreadID:  thread.ID,
		Sender:    sender,
		Content:   content,
		Read:      sender == models.MessageSenderStaff,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.AddMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return &message, nil
}

func (s *DefaultMessageService) MarkThreadRead(ctx context.Context, threadID string) error {
	if err := s.Repo.MarkThreadRead(ctx, threadID); err != nil {
		return fmt.Errorf("failed to mark thread read: %w", err)
	}
	return nil
}
