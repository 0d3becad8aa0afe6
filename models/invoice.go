package models

import "time"

// Invoice statuses.
const (
	InvoiceStatusPaid    = "Paid"
	InvoiceStatusPending = "Pending"
	InvoiceStatusOverdue = "Overdue"
)

// InvoiceItem is one billed line on an invoice.
type InvoiceItem struct {
	Description string  `bson:"description" json:"description"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	Rate        float64 `bson:"rate" json:"rate"`
	Total       float64 `bson:"total" json:"total"`
}

// Invoice represents a bill issued to a patient.
type Invoice struct {
	ID              string        `bson:"id" json:"id"` // e.g., "INV-003"
	PatientID       string        `bson:"patient_id" json:"patient_id"`
	PatientName     string        `bson:"patient_name" json:"patient_name"`
	Date            string        `bson:"date" json:"date"`         // issue date, "YYYY-MM-DD"
	DueDate         string        `bson:"due_date" json:"due_date"` // "YYYY-MM-DD"
	Amount          float64       `bson:"amount" json:"amount"`     // sum of item totals
	Status          string        `bson:"status" json:"status"`
	Items           []InvoiceItem `bson:"items" json:"items"`
	PaymentIntentID string        `bson:"payment_intent_id,omitempty" json:"payment_intent_id,omitempty"` // Stripe reference once online payment starts
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updated_at"`
}
