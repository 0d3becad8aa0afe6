package models

// MedicareCode pairs a billing code with its human description.
type MedicareCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ServiceTypes is the fixed set of services the clinic offers.
var ServiceTypes = []string{
	"General Physiotherapy",
	"Sports Rehabilitation",
	"Manual Therapy",
	"Pain Management",
	"Post-Surgery Recovery",
	"Injury Assessment",
}

// MedicareCodes is the fixed billing code table.
var MedicareCodes = []MedicareCode{
	{Code: "105", Description: "Massage Therapy - 60 minutes"},
	{Code: "110", Description: "Initial Consultation - 45 minutes"},
	{Code: "115", Description: "Follow-up Treatment - 30 minutes"},
	{Code: "120", Description: "Extended Treatment - 90 minutes"},
	{Code: "125", Description: "Rehabilitation Session - 60 minutes"},
	{Code: "130", Description: "Assessment & Planning - 45 minutes"},
	{Code: "135", Description: "Group Therapy Session - 60 minutes"},
	{Code: "140", Description: "Home Visit Treatment - 60 minutes"},
}

// IsValidServiceType reports whether name is one of the clinic's services.
func IsValidServiceType(name string) bool {
	for _, s := range ServiceTypes {
		if s == name {
			return true
		}
	}
	return false
}

// IsValidMedicareCode reports whether code appears in the billing table.
func IsValidMedicareCode(code string) bool {
	for _, mc := range MedicareCodes {
		if mc.Code == code {
			return true
		}
	}
	return false
}
