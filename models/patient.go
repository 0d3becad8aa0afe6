package models

import "time"

// Patient is one clinic patient record.
type Patient struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	DateOfBirth     string    `bson:"dob" json:"dob"` // "YYYY-MM-DD"
	Email           string    `bson:"email" json:"email"`
	Phone           string    `bson:"phone" json:"phone"`
	Condition       string    `bson:"condition,omitempty" json:"condition,omitempty"` // presenting condition, free text
	LastVisit       string    `bson:"last_visit,omitempty" json:"last_visit,omitempty"`
	NextAppointment string    `bson:"next_appointment,omitempty" json:"next_appointment,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// TreatmentNote is a practitioner's clinical note against a patient.
type TreatmentNote struct {
	ID             string    `bson:"id" json:"id"`
	PatientID      string    `bson:"patient_id" json:"patient_id"`
	PractitionerID string    `bson:"practitioner_id" json:"practitioner_id"`
	Content        string    `bson:"content" json:"content"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
