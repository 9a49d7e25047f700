package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PhaseReception is the phase every fish instance starts in. Later phases
// (quarantine, aquarium, sold) are set by collaborators outside the import.
const PhaseReception = "reception"

// FishCosts tracks per-fish cost figures. At import time the three per-fish
// costs are mirrored from the invoice price: no mortality-driven reallocation
// has happened yet.
type FishCosts struct {
	InvoiceCostPerFish decimal.Decimal `json:"invoiceCostPerFish"`
	ArrivalCostPerFish decimal.Decimal `json:"arrivalCostPerFish"`
	CurrentCostPerFish decimal.Decimal `json:"currentCostPerFish"`
	TotalInvoiceCost   decimal.Decimal `json:"totalInvoiceCost"`
	Currency           string          `json:"currency"`
}

// Mortality counters per fish instance. Zeroed at creation; incremented later
// by the mortality-tracking flow.
type Mortality struct {
	Arrival    int `json:"arrival"`
	Quarantine int `json:"quarantine"`
	Total      int `json:"total"`
}

// FishInstance is one countable inventory unit created from one shipment line
// item. Never created outside a shipment import. CurrentQuantity only moves
// downward (mortality, consumption); AquariumID stays nil until the fish are
// placed in a tank.
type FishInstance struct {
	ID               string
	FarmID           string
	ShipmentID       string
	ScientificName   string
	CommonName       string
	Size             string
	Code             string
	OriginalQuantity int
	CurrentQuantity  int
	Costs            FishCosts
	Mortality        Mortality
	AquariumID       *string
	Phase            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
