package entity

import "time"

// Reception plan statuses. The happy path walks them in order; cancelled is
// reachable from any non-terminal status.
const (
	PlanStatusPlanning         = "planning"
	PlanStatusProformaReceived = "proforma_received"
	PlanStatusFinalized        = "finalized"
	PlanStatusLocked           = "locked"
	PlanStatusInProgress       = "in_progress"
	PlanStatusCompleted        = "completed"
	PlanStatusCancelled        = "cancelled"
)

// Reception plan sources.
const (
	PlanSourceExcel  = "excel"
	PlanSourceManual = "manual"
)

// Reception item statuses. received and cancelled are terminal: an item never
// goes back to planned.
const (
	ItemStatusPlanned   = "planned"
	ItemStatusReceived  = "received"
	ItemStatusCancelled = "cancelled"
)

// ReceptionPlan tracks expected incoming fish from planning until every item
// is physically received. Once locked (or later), items can no longer be
// added or edited.
type ReceptionPlan struct {
	ID                string
	FarmID            string
	ExpectedDate      time.Time
	Source            string // excel, manual
	Status            string
	CountryOfOrigin   string
	SupplierName      string
	TargetRoom        string
	ShipmentReference string // generated when the caller supplies none
	ItemCount         int
	ReceivedCount     int
	IsLocked          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
	CreatedBy         string
}

// ReceptionItem is one planned fish line within a reception plan, targeting a
// specific aquarium.
type ReceptionItem struct {
	ID                   string
	PlanID               string
	HebrewName           string
	ScientificName       string
	Size                 string
	BoxNumber            *int
	Code                 string
	TargetAquariumID     string
	TargetAquariumNumber string
	TargetRoom           string
	Quantity             int
	Status               string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
