package models

import "time"

// Message senders.
const (
	MessageSenderPatient = "patient"
	MessageSenderStaff   = "staff"
)

// Message is one entry in a patient conversation thread.
type Message struct {
	ID        string    `bson:"id" json:"id"`
	ThreadID  string    `bson:"thread_id" json:"thread_id"`
	Sender    string    `bson:"sender" json:"sender"` // "patient" or "staff"
	Content   string    `bson:"content" json:"content"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// MessageThread is a per-patient conversation with the clinic.
type MessageThread struct {
	ID          string    `bson:"id" json:"id"`
	PatientID   string    `bson:"patient_id" json:"patient_id"`
	PatientName string    `bson:"patient_name" json:"patient_name"`
	LastMessage *Message  `bson:"last_message,omitempty" json:"last_message,omitempty"` // denormalized for list views
	Unread      bool      `bson:"unread" json:"unread"`                                 // true while any patient message is unread
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
