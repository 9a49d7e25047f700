package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShipmentStatusReceived is the only status a shipment is ever created with:
// imports record deliveries that already arrived at the farm.
const ShipmentStatusReceived = "received"

// Shipment is one batch delivery of fish from a supplier, imported together
// with its fish instances as a single transaction.
//
// Invariants: TotalFishCount = sum of each instance's OriginalQuantity;
// TotalCost = sum of quantity x invoice price across instances.
type Shipment struct {
	ID             string
	FarmID         string
	Supplier       string
	DateReceived   time.Time
	TotalItemTypes int
	TotalFishCount int
	TotalCost      decimal.Decimal
	Currency       string
	Status         string
	CreatedAt      time.Time
	CreatedBy      string
}
