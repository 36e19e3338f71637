package reporting

import (
	"sort"

	"github.com/google/uuid"

	"github.com/clinicops/clinic/internal/domain/booking"
	"github.com/clinicops/clinic/internal/domain/center"
	"github.com/clinicops/clinic/internal/domain/identity"
)

// recentLimit caps the recent-appointments list per center.
const recentLimit = 5

// Aggregate builds the detailed report from entity snapshots. It is pure:
// a fixed input always yields the same output. Practitioners attach to a
// center through their stored center reference; bookings join by center id
// when present, otherwise by exact center-name match.
func Aggregate(centers []*center.Center, practitioners []*identity.Account, bookings []*booking.Booking) *Report {
	report := &Report{Centers: make([]*CenterReport, 0, len(centers))}

	byID := make(map[uuid.UUID]*CenterReport, len(centers))
	byName := make(map[string]*CenterReport, len(centers))
	patientSets := make(map[uuid.UUID]map[uuid.UUID]bool, len(centers))

	for _, c := range centers {
		cr := &CenterReport{
			CenterID:           c.ID,
			CenterName:         c.Name,
			Location:           c.Location,
			Verified:           c.Verified,
			RegistrationCode:   c.RegistrationCode,
			Practitioners:      []*identity.Account{},
			RecentAppointments: []*booking.Booking{},
		}
		byID[c.ID] = cr
		byName[c.Name] = cr
		patientSets[c.ID] = make(map[uuid.UUID]bool)
		report.Centers = append(report.Centers, cr)

		report.Totals.TotalCenters++
		if c.Verified {
			report.Totals.VerifiedCenters++
		}
	}

	for _, p := range practitioners {
		report.Totals.TotalPractitioners++
		if p.Practitioner == nil {
			continue
		}
		if cr, ok := byID[p.Practitioner.CenterID]; ok {
			cr.Practitioners = append(cr.Practitioners, p)
			cr.PractitionerCount++
		}
	}

	globalPatients := make(map[uuid.UUID]bool)
	for _, b := range bookings {
		report.Totals.TotalBookings++
		globalPatients[b.PatientID] = true

		cr := joinCenter(b, byID, byName)
		if cr == nil {
			continue
		}
		cr.AppointmentCount++
		patientSets[cr.CenterID][b.PatientID] = true
		cr.RecentAppointments = append(cr.RecentAppointments, b)
	}
	report.Totals.UniquePatients = len(globalPatients)

	for _, cr := range report.Centers {
		cr.PatientCount = len(patientSets[cr.CenterID])

		sort.SliceStable(cr.RecentAppointments, func(i, j int) bool {
			return cr.RecentAppointments[i].CreatedAt.After(cr.RecentAppointments[j].CreatedAt)
		})
		if len(cr.RecentAppointments) > recentLimit {
			cr.RecentAppointments = cr.RecentAppointments[:recentLimit]
		}
	}

	return report
}

// joinCenter resolves the center a booking belongs to. The stored center id
// wins; the name match exists for rows created before the id column did.
func joinCenter(b *booking.Booking, byID map[uuid.UUID]*CenterReport, byName map[string]*CenterReport) *CenterReport {
	if b.CenterID != nil {
		if cr, ok := byID[*b.CenterID]; ok {
			return cr
		}
		return nil
	}
	return byName[b.CenterName]
}
