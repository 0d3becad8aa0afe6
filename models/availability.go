package models

// TimeRange is a wall-clock open/close pair within one day.
type TimeRange struct {
	Start string `bson:"start" json:"start"` // "HH:MM", 24-hour
	End   string `bson:"end" json:"end"`     // "HH:MM", exclusive close
}

// DayAvailability is an administrator-authored statement that a calendar
// day is open for bookings. Absence of a record means the day is closed.
type DayAvailability struct {
	Date            string     `bson:"date" json:"date"` // "YYYY-MM-DD", local wall-clock date
	Available       bool       `bson:"available" json:"available"`
	CustomTimeRange *TimeRange `bson:"customTimeRange,omitempty" json:"customTimeRange,omitempty"` // nil means default clinic hours
}
