package reporting

import (
	"github.com/google/uuid"

	"github.com/clinicops/clinic/internal/domain/booking"
	"github.com/clinicops/clinic/internal/domain/identity"
)

// CenterReport is the per-center rollup of the detailed report.
type CenterReport struct {
	CenterID           uuid.UUID           `json:"center_id"`
	CenterName         string              `json:"center_name"`
	Location           string              `json:"location"`
	Verified           bool                `json:"verified"`
	RegistrationCode   string              `json:"registration_code"`
	Practitioners      []*identity.Account `json:"practitioners"`
	PractitionerCount  int                 `json:"practitioner_count"`
	PatientCount       int                 `json:"patient_count"`
	AppointmentCount   int                 `json:"appointment_count"`
	RecentAppointments []*booking.Booking  `json:"recent_appointments"`
}

// Totals is the global rollup across all centers.
type Totals struct {
	TotalCenters       int `json:"total_centers"`
	VerifiedCenters    int `json:"verified_centers"`
	TotalPractitioners int `json:"total_practitioners"`
	UniquePatients     int `json:"unique_patients"`
	TotalBookings      int `json:"total_bookings"`
}

// Report is the detailed cross-entity report.
type Report struct {
	Centers []*CenterReport `json:"centers"`
	Totals  Totals          `json:"totals"`
}

// Summary is the overview card of the dashboard.
type Summary struct {
	Centers             int `json:"centers"`
	VerifiedCenters     int `json:"verified_centers"`
	ActivePractitioners int `json:"active_practitioners"`
	Patients            int `json:"patients"`
}
