package reporting

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/clinicops/clinic/internal/domain/booking"
	"github.com/clinicops/clinic/internal/domain/center"
	"github.com/clinicops/clinic/internal/domain/identity"
)

func testCenter(name string) *center.Center {
	return &center.Center{ID: uuid.New(), Name: name, Location: "Pune", Verified: false}
}

func practitionerAt(centerID uuid.UUID) *identity.Account {
	return &identity.Account{
		ID:           uuid.New(),
		Role:         identity.RolePractitioner,
		Status:       identity.StatusActive,
		Practitioner: &identity.PractitionerProfile{CenterID: centerID},
	}
}

func bookingAt(c *center.Center, patientID uuid.UUID, createdAt time.Time) *booking.Booking {
	id := c.ID
	return &booking.Booking{
		ID:        uuid.New(),
		PatientID: patientID,
		CenterID:  &id,
		CenterName: c.Name,
		Status:    booking.StatusConfirmed,
		CreatedAt: createdAt,
	}
}

func TestAggregate_PatientDedupPerCenter(t *testing.T) {
	centerA := testCenter("Center A")
	p1 := uuid.New()
	p2 := uuid.New()
	now := time.Now()

	report := Aggregate(
		[]*center.Center{centerA},
		nil,
		[]*booking.Booking{
			bookingAt(centerA, p1, now),
			bookingAt(centerA, p1, now.Add(time.Minute)),
			bookingAt(centerA, p2, now.Add(2*time.Minute)),
		},
	)

	if len(report.Centers) != 1 {
		t.Fatalf("expected 1 center rollup, got %d", len(report.Centers))
	}
	cr := report.Centers[0]
	if cr.AppointmentCount != 3 {
		t.Errorf("expected 3 appointments, got %d", cr.AppointmentCount)
	}
	if cr.PatientCount != 2 {
		t.Errorf("expected 2 distinct patients, got %d", cr.PatientCount)
	}
}

func TestAggregate_PractitionersViaStoredReference(t *testing.T) {
	centerA := testCenter("Center A")
	centerB := testCenter("Center B")

	report := Aggregate(
		[]*center.Center{centerA, centerB},
		[]*identity.Account{
			practitionerAt(centerA.ID),
			practitionerAt(centerA.ID),
			practitionerAt(centerB.ID),
			practitionerAt(uuid.New()), // center no longer listed
		},
		nil,
	)

	if got := report.Centers[0].PractitionerCount; got != 2 {
		t.Errorf("center A: expected 2 practitioners, got %d", got)
	}
	if got := report.Centers[1].PractitionerCount; got != 1 {
		t.Errorf("center B: expected 1 practitioner, got %d", got)
	}
	if report.Totals.TotalPractitioners != 4 {
		t.Errorf("expected 4 practitioners in totals, got %d", report.Totals.TotalPractitioners)
	}
}

func TestAggregate_PractitionerListPerCenter(t *testing.T) {
	centerA := testCenter("Center A")
	centerB := testCenter("Center B")

	drMeera := practitionerAt(centerA.ID)
	drMeera.Name = "Dr. Meera Nair"
	drMeera.Email = "meera@clinic.example"
	drVikram := practitionerAt(centerA.ID)
	drVikram.Name = "Dr. Vikram Rao"

	report := Aggregate(
		[]*center.Center{centerA, centerB},
		[]*identity.Account{drMeera, drVikram},
		nil,
	)

	got := report.Centers[0].Practitioners
	if len(got) != 2 {
		t.Fatalf("center A: expected 2 practitioners listed, got %d", len(got))
	}
	if got[0].Name != "Dr. Meera Nair" || got[0].Email != "meera@clinic.example" {
		t.Errorf("expected practitioner details carried through, got %+v", got[0])
	}
	if got[1].Name != "Dr. Vikram Rao" {
		t.Errorf("expected second practitioner listed, got %+v", got[1])
	}
	if len(report.Centers[0].Practitioners) != report.Centers[0].PractitionerCount {
		t.Error("expected practitioner count to match the listed practitioners")
	}
	if other := report.Centers[1].Practitioners; len(other) != 0 {
		t.Errorf("center B: expected no practitioners listed, got %d", len(other))
	}
}

func TestAggregate_CenterIDWinsOverName(t *testing.T) {
	centerA := testCenter("Shared Name")
	centerB := testCenter("Other")
	patient := uuid.New()

	// Booking carries centerB's id but centerA's name: id must win.
	idB := centerB.ID
	b := &booking.Booking{
		ID: uuid.New(), PatientID: patient, CenterID: &idB,
		CenterName: "Shared Name", CreatedAt: time.Now(),
	}

	report := Aggregate([]*center.Center{centerA, centerB}, nil, []*booking.Booking{b})

	if report.Centers[0].AppointmentCount != 0 {
		t.Error("expected no appointments joined by name when an id is present")
	}
	if report.Centers[1].AppointmentCount != 1 {
		t.Error("expected the booking joined to the id-referenced center")
	}
}

func TestAggregate_NameFallbackIsExact(t *testing.T) {
	centerA := testCenter("Center A")
	patient := uuid.New()

	exact := &booking.Booking{ID: uuid.New(), PatientID: patient,
		CenterName: "Center A", CreatedAt: time.Now()}
	wrongCase := &booking.Booking{ID: uuid.New(), PatientID: patient,
		CenterName: "center a", CreatedAt: time.Now()}

	report := Aggregate([]*center.Center{centerA}, nil, []*booking.Booking{exact, wrongCase})

	if report.Centers[0].AppointmentCount != 1 {
		t.Errorf("expected only the exact-name booking joined, got %d", report.Centers[0].AppointmentCount)
	}
	// Unjoined bookings still count globally.
	if report.Totals.TotalBookings != 2 {
		t.Errorf("expected 2 bookings in totals, got %d", report.Totals.TotalBookings)
	}
}

func TestAggregate_RecentAppointmentsTopFiveByCreatedAt(t *testing.T) {
	centerA := testCenter("Center A")
	patient := uuid.New()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// Insert out of chronological order.
	var bookings []*booking.Booking
	for _, offset := range []int{3, 0, 6, 1, 5, 2, 4} {
		bookings = append(bookings, bookingAt(centerA, patient, base.Add(time.Duration(offset)*time.Hour)))
	}

	report := Aggregate([]*center.Center{centerA}, nil, bookings)

	recent := report.Centers[0].RecentAppointments
	if len(recent) != 5 {
		t.Fatalf("expected 5 recent appointments, got %d", len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].CreatedAt.After(recent[i-1].CreatedAt) {
			t.Fatal("expected recent appointments in descending created_at order")
		}
	}
	if !recent[0].CreatedAt.Equal(base.Add(6 * time.Hour)) {
		t.Errorf("expected newest booking first, got %v", recent[0].CreatedAt)
	}
	if !recent[4].CreatedAt.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("expected the two oldest bookings dropped, got %v", recent[4].CreatedAt)
	}
}

func TestAggregate_GlobalTotals(t *testing.T) {
	centerA := testCenter("Center A")
	centerB := testCenter("Center B")
	centerB.Verified = true
	p1 := uuid.New()
	p2 := uuid.New()
	now := time.Now()

	report := Aggregate(
		[]*center.Center{centerA, centerB},
		[]*identity.Account{practitionerAt(centerA.ID)},
		[]*booking.Booking{
			bookingAt(centerA, p1, now),
			bookingAt(centerB, p1, now),
			bookingAt(centerB, p2, now),
		},
	)

	want := Totals{
		TotalCenters:       2,
		VerifiedCenters:    1,
		TotalPractitioners: 1,
		UniquePatients:     2,
		TotalBookings:      3,
	}
	if !reflect.DeepEqual(report.Totals, want) {
		t.Errorf("totals = %+v, want %+v", report.Totals, want)
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	report := Aggregate(nil, nil, nil)
	if len(report.Centers) != 0 {
		t.Errorf("expected no center rollups, got %d", len(report.Centers))
	}
	if report.Totals != (Totals{}) {
		t.Errorf("expected zero totals, got %+v", report.Totals)
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	centerA := testCenter("Center A")
	centerB := testCenter("Center B")
	p1 := uuid.New()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	centers := []*center.Center{centerA, centerB}
	practitioners := []*identity.Account{practitionerAt(centerA.ID)}
	bookings := []*booking.Booking{
		bookingAt(centerA, p1, base),
		bookingAt(centerB, p1, base.Add(time.Hour)),
	}

	first := Aggregate(centers, practitioners, bookings)
	second := Aggregate(centers, practitioners, bookings)

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical output for identical input")
	}
}
