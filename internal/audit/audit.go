package audit

import (
	"time"

	"github.com/google/uuid"
)

// Action is the kind of mutation an entry records.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionReset  Action = "RESET"
)

// Entry is one immutable line of the audit trail. EntityID is a string
// rather than a uuid because some actions target a whole collection
// ("all") instead of a single record.
type Entry struct {
	ID          uuid.UUID
	ActionType  Action
	EntityType  string
	EntityID    string
	Description string
	Details     map[string]any
	Timestamp   time.Time
}
