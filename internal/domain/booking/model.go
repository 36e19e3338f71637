package booking

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
)

var validStatuses = map[Status]bool{
	StatusPending: true, StatusConfirmed: true, StatusCompleted: true,
}

func (s Status) Valid() bool { return validStatuses[s] }

// statusOrder ranks the forward-only booking progression.
var statusOrder = map[Status]int{
	StatusPending:   0,
	StatusConfirmed: 1,
	StatusCompleted: 2,
}

// CanProgress reports whether a booking may move from one status to the
// next. Only single forward steps are allowed.
func CanProgress(from, to Status) bool {
	return statusOrder[to] == statusOrder[from]+1
}

// Booking maps to the booking table.
type Booking struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	PatientID      uuid.UUID  `db:"patient_id" json:"patient_id"`
	PractitionerID *uuid.UUID `db:"practitioner_id" json:"practitioner_id,omitempty"`
	PatientName    string     `db:"patient_name" json:"patient_name"`

	// Therapy is the canonical service label. Older clients send and read
	// it as "treatment"; the JSON codec keeps both names in sync.
	Therapy string `db:"therapy" json:"therapy"`

	CenterID        *uuid.UUID `db:"center_id" json:"center_id,omitempty"`
	CenterName      string     `db:"center_name" json:"center_name"`
	Date            time.Time  `db:"date" json:"date"`
	TimeOfDay       string     `db:"time_of_day" json:"time"`
	DurationMinutes int        `db:"duration_minutes" json:"duration_minutes"`
	Cost            float64    `db:"cost" json:"cost"`
	Requirements    string     `db:"requirements" json:"requirements,omitempty"`
	Status          Status     `db:"status" json:"status"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

type bookingAlias Booking

type bookingJSON struct {
	bookingAlias
	Treatment string `json:"treatment"`
}

// MarshalJSON emits the canonical therapy label under both "therapy" and the
// legacy "treatment" key.
func (b Booking) MarshalJSON() ([]byte, error) {
	return json.Marshal(bookingJSON{
		bookingAlias: bookingAlias(b),
		Treatment:    b.Therapy,
	})
}

// UnmarshalJSON accepts either label; "therapy" wins when both are present.
func (b *Booking) UnmarshalJSON(data []byte) error {
	var raw bookingJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = Booking(raw.bookingAlias)
	if b.Therapy == "" {
		b.Therapy = raw.Treatment
	}
	return nil
}
