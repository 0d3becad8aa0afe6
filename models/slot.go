package models

import "time"

// TimeSlot represents one bookable appointment window within a day.
// Slots are computed on demand from a DayAvailability record and never persisted.
type TimeSlot struct {
	ID            string    `json:"id"`            // deterministic, "YYYY-MM-DD-HH-mm"
	Time          time.Time `json:"time"`          // slot start instant
	FormattedTime string    `json:"formattedTime"` // presentation only, e.g. "9:45 AM"
	Duration      int       `json:"duration"`      // session length in minutes
	BufferTime    int       `json:"bufferTime"`    // minutes reserved after the session
	Available     bool      `json:"available"`
}
