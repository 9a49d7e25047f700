package dto

import "time"

// CreatePlanRequest input for starting a reception plan.
type CreatePlanRequest struct {
	ExpectedDate      time.Time `json:"expected_date" validate:"required"`
	Source            string    `json:"source" validate:"required,oneof=excel manual"`
	CountryOfOrigin   string    `json:"country_of_origin" validate:"required"`
	SupplierName      string    `json:"supplier_name" validate:"required"`
	TargetRoom        string    `json:"target_room" validate:"required"`
	ShipmentReference string    `json:"shipment_reference"` // generated when empty
}

// PlanResponse reception plan output.
type PlanResponse struct {
	ID                string    `json:"id"`
	FarmID            string    `json:"farm_id"`
	ExpectedDate      time.Time `json:"expected_date"`
	Source            string    `json:"source"`
	Status            string    `json:"status"`
	CountryOfOrigin   string    `json:"country_of_origin"`
	SupplierName      string    `json:"supplier_name"`
	TargetRoom        string    `json:"target_room"`
	ShipmentReference string    `json:"shipment_reference"`
	ItemCount         int       `json:"item_count"`
	ReceivedCount     int       `json:"received_count"`
	IsLocked          bool      `json:"is_locked"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// PlanListResponse paginated plan list.
type PlanListResponse struct {
	Items []PlanResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// AddItemRequest input for adding one fish line to a plan.
type AddItemRequest struct {
	HebrewName           string `json:"hebrew_name" validate:"required"`
	ScientificName       string `json:"scientific_name"`
	Size                 string `json:"size" validate:"required"`
	BoxNumber            *int   `json:"box_number"`
	Code                 string `json:"code"`
	TargetAquariumID     string `json:"target_aquarium_id" validate:"required"`
	TargetAquariumNumber string `json:"target_aquarium_number"`
	TargetRoom           string `json:"target_room"`
	Quantity             int    `json:"quantity" validate:"omitempty,gt=0"`
}

// ItemResponse reception item output.
type ItemResponse struct {
	ID                   string    `json:"id"`
	PlanID               string    `json:"plan_id"`
	HebrewName           string    `json:"hebrew_name"`
	ScientificName       string    `json:"scientific_name"`
	Size                 string    `json:"size"`
	BoxNumber            *int      `json:"box_number"`
	Code                 string    `json:"code"`
	TargetAquariumID     string    `json:"target_aquarium_id"`
	TargetAquariumNumber string    `json:"target_aquarium_number"`
	TargetRoom           string    `json:"target_room"`
	Quantity             int       `json:"quantity"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// TransitionRequest input for moving a plan to another status.
type TransitionRequest struct {
	Status string `json:"status" validate:"required"`
}

// AssignAquariumRequest assigns a destination tank to a planned item.
type AssignAquariumRequest struct {
	AquariumID     string `json:"aquarium_id" validate:"required"`
	AquariumNumber string `json:"aquarium_number"`
}

// AttachCandidatesRequest attaches extracted document rows to a plan.
type AttachCandidatesRequest struct {
	Records []ExtractedRecord `json:"records" validate:"required,min=1"`
}

// AttachCandidatesResponse reports how many rows became plan items.
type AttachCandidatesResponse struct {
	Attached int `json:"attached"`
	Skipped  int `json:"skipped"`
}
