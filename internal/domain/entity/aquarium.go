package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shelf levels for an aquarium rack.
const (
	ShelfBottom = "bottom"
	ShelfMiddle = "middle"
	ShelfTop    = "top"
)

// Built-in aquarium statuses. Farms may extend the vocabulary via FarmSettings.
const (
	AquariumStatusEmpty       = "empty"
	AquariumStatusOccupied    = "occupied"
	AquariumStatusInTransfer  = "in-transfer"
	AquariumStatusMaintenance = "maintenance"
)

// Aquarium is one physical tank of the farm.
// Invariants: Volume > 0, Number and Room non-empty (see validation.ValidateAquarium).
type Aquarium struct {
	ID            string
	FarmID        string
	Number        string          // user-facing tank number
	ShelfLevel    string          // bottom, middle, top
	Volume        decimal.Decimal // liters, must be > 0
	Room          string          // farm-defined room label
	Status        string
	OccupancyRate decimal.Decimal // 0..1
	TotalFish     int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
