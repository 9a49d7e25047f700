package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
)

// ShipmentMetadata caller-supplied header data for an import.
type ShipmentMetadata struct {
	Supplier     string    `json:"supplier"`
	DateReceived time.Time `json:"dateReceived"`
	Currency     string    `json:"currency"`
}

// ImportShipmentRequest HTTP input for the shipment import.
type ImportShipmentRequest struct {
	Metadata ShipmentMetadata         `json:"metadata"`
	Items    []entity.CandidateRecord `json:"items" validate:"required,min=1"`
}

// ImportShipmentResponse result of a committed import.
type ImportShipmentResponse struct {
	ShipmentID string `json:"shipmentId"`
	// FishCount is the number of line items (instance documents) created.
	FishCount int `json:"fishCount"`
	// TotalFish is the summed head count across all items.
	TotalFish int `json:"totalFish"`
}

// ShipmentResponse shipment header output.
type ShipmentResponse struct {
	ID             string          `json:"id"`
	FarmID         string          `json:"farm_id"`
	Supplier       string          `json:"supplier"`
	DateReceived   time.Time       `json:"date_received"`
	TotalItemTypes int             `json:"total_item_types"`
	TotalFishCount int             `json:"total_fish_count"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	CreatedBy      string          `json:"created_by"`
}

// ShipmentListResponse paginated shipment list.
type ShipmentListResponse struct {
	Items []ShipmentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
