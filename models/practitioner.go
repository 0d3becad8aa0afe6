package models

import "time"

// Practitioner is a clinic staff member who treats patients.
type Practitioner struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Specialty string    `bson:"specialty" json:"specialty"` // e.g., "Orthopedic Physiotherapy"
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Schedule  string    `bson:"schedule,omitempty" json:"schedule,omitempty"` // e.g., "Mon-Fri, 8:00 AM - 4:00 PM"
	Status    string    `bson:"status" json:"status"`                         // "Active" or "Inactive"
	Color     string    `bson:"color,omitempty" json:"color,omitempty"`       // calendar display colour
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// StaffAccount is a management console login. Passwords are stored as bcrypt hashes.
type StaffAccount struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"` // "staff" or "admin"
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
