package entity

import "time"

// Farm is the top-level tenant: it owns aquariums, shipments and reception plans.
type Farm struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Room is one physical room of the farm, as configured by the operator.
type Room struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// StatusDef is one operator-defined aquarium status (label + display color).
type StatusDef struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// FarmSettings holds the farm-level vocabularies referenced by aquariums and
// reception plans. Validated when written, so readers can trust the shape.
type FarmSettings struct {
	FarmID    string
	Rooms     []Room
	Statuses  []StatusDef
	UpdatedAt time.Time
}

// HasRoom reports whether label names a configured room.
func (s *FarmSettings) HasRoom(label string) bool {
	for _, r := range s.Rooms {
		if r.Label == label {
			return true
		}
	}
	return false
}

// HasStatus reports whether id names a configured aquarium status.
func (s *FarmSettings) HasStatus(id string) bool {
	for _, st := range s.Statuses {
		if st.ID == id {
			return true
		}
	}
	return false
}
