package identity

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin        Role = "admin"
	RolePractitioner Role = "practitioner"
	RolePatient      Role = "patient"
)

var validRoles = map[Role]bool{
	RoleAdmin: true, RolePractitioner: true, RolePatient: true,
}

func (r Role) Valid() bool { return validRoles[r] }

type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusRejected Status = "rejected"
	StatusInactive Status = "inactive"
)

var validStatuses = map[Status]bool{
	StatusPending: true, StatusActive: true, StatusRejected: true, StatusInactive: true,
}

func (s Status) Valid() bool { return validStatuses[s] }

// statusEdges defines the legal practitioner status transitions. Anything
// not listed is rejected.
var statusEdges = map[Status][]Status{
	StatusPending:  {StatusActive, StatusRejected},
	StatusActive:   {StatusInactive},
	StatusInactive: {StatusActive},
	StatusRejected: {StatusActive},
}

// CanTransition reports whether a practitioner account may move from one
// status to another.
func CanTransition(from, to Status) bool {
	for _, next := range statusEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// DayHours is the working window for a single weekday.
type DayHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WorkingHours holds the weekly availability of a practitioner. Days without
// hours stay nil. Persisted as a single jsonb column.
type WorkingHours struct {
	Monday    *DayHours `json:"monday,omitempty"`
	Tuesday   *DayHours `json:"tuesday,omitempty"`
	Wednesday *DayHours `json:"wednesday,omitempty"`
	Thursday  *DayHours `json:"thursday,omitempty"`
	Friday    *DayHours `json:"friday,omitempty"`
	Saturday  *DayHours `json:"saturday,omitempty"`
	Sunday    *DayHours `json:"sunday,omitempty"`
}

// PractitionerProfile carries the fields that only exist for practitioner
// accounts.
type PractitionerProfile struct {
	CenterID       uuid.UUID     `db:"center_id" json:"center_id"`
	Specialization string        `db:"specialization" json:"specialization"`
	WorkingHours   *WorkingHours `db:"working_hours" json:"working_hours,omitempty"`
}

// Account maps to the account table.
type Account struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	Role         Role      `db:"role" json:"role"`
	Status       Status    `db:"status" json:"status"`

	// Practitioner is set only when Role is practitioner.
	Practitioner *PractitionerProfile `json:"practitioner,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// IsPractitioner reports whether the account carries a practitioner profile.
func (a *Account) IsPractitioner() bool { return a.Role == RolePractitioner }
