package ticket

import (
	"fmt"
	"strings"
	"time"
)

// State is the lifecycle state of a ticket. Transitions are one-directional:
// waiting -> in_service -> served.
type State string

const (
	StateWaiting   State = "waiting"
	StateInService State = "in_service"
	StateServed    State = "served"
)

// Valid reports whether s is one of the known lifecycle states.
func (s State) Valid() bool {
	switch s {
	case StateWaiting, StateInService, StateServed:
		return true
	}
	return false
}

// Open reports whether a ticket in this state still blocks new admissions
// for the same document.
func (s State) Open() bool {
	return s == StateWaiting || s == StateInService
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s State) CanTransitionTo(next State) bool {
	switch s {
	case StateWaiting:
		return next == StateInService
	case StateInService:
		return next == StateServed
	}
	return false
}

// DefaultCategory is the category intake admissions are issued under.
const DefaultCategory = "A"

// Categories maps category codes to their display labels.
var Categories = map[string]string{
	"A": "Atención General",
	"L": "Libranzas",
	"P": "Pagos",
	"C": "Consultas",
	"S": "Soporte Técnico",
}

// CategoryName returns the display label for a category code,
// or "General" for unknown codes.
func CategoryName(code string) string {
	if name, ok := Categories[code]; ok {
		return name
	}
	return "General"
}

// FormatLabel builds the externally visible ticket label: the category code
// followed by the zero-padded sequence number, e.g. "A007".
func FormatLabel(category string, sequence int) string {
	return fmt.Sprintf("%s%03d", category, sequence)
}

// Ticket is a numbered service request held by one person for one day.
type Ticket struct {
	ID            int64      `json:"id"`
	Category      string     `json:"category"`
	Sequence      int        `json:"sequence"`
	Label         string     `json:"label"`
	State         State      `json:"state"`
	Window        string     `json:"window,omitempty"`
	HolderName    string     `json:"holder_name"`
	Document      string     `json:"document"`
	CategoryLabel string     `json:"category_label"`
	CreatedAt     time.Time  `json:"created_at"`
	CalledAt      *time.Time `json:"called_at,omitempty"`
}

// IntakeRecord is one observation from the external intake feed.
// The feed is read-only and append-only for the current day.
type IntakeRecord struct {
	FirstName     string
	MiddleName    string
	FirstSurname  string
	SecondSurname string
	Document      string
	CategoryLabel string
	ArrivedAt     time.Time
}

// HolderName builds the display name stored on issued tickets. Only the
// first given name and first surname are used.
func (r *IntakeRecord) HolderName() string {
	return strings.TrimSpace(strings.TrimSpace(r.FirstName) + " " + strings.TrimSpace(r.FirstSurname))
}

// Validate checks the minimum the ledger requires of a feed record.
func (r *IntakeRecord) Validate() error {
	if strings.TrimSpace(r.Document) == "" {
		return fmt.Errorf("intake record has no document")
	}
	return nil
}

// LedgerEntry is the durable mirror of one IntakeRecord, used to drive
// at-most-once ticket issuance. Entries are never deleted.
type LedgerEntry struct {
	ID             int64      `json:"id"`
	FirstName      string     `json:"first_name"`
	MiddleName     string     `json:"middle_name,omitempty"`
	FirstSurname   string     `json:"first_surname"`
	SecondSurname  string     `json:"second_surname,omitempty"`
	Document       string     `json:"document"`
	CategoryLabel  string     `json:"category_label"`
	ReadAt         time.Time  `json:"read_at"`
	Processed      bool       `json:"processed"`
	AssignedTicket *int64     `json:"assigned_ticket,omitempty"`
	ProcessedAt    *time.Time `json:"processed_at,omitempty"`
	PassID         string     `json:"pass_id,omitempty"`
}

// HolderName mirrors IntakeRecord.HolderName for ledger entries.
func (e *LedgerEntry) HolderName() string {
	return strings.TrimSpace(strings.TrimSpace(e.FirstName) + " " + strings.TrimSpace(e.FirstSurname))
}
