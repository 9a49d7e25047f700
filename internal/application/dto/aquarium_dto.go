package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
)

// CreateAquariumRequest input for creating a tank.
type CreateAquariumRequest struct {
	Number     string          `json:"number" validate:"required"`
	ShelfLevel string          `json:"shelf_level" validate:"required,oneof=bottom middle top"`
	Volume     decimal.Decimal `json:"volume" validate:"required"`
	Room       string          `json:"room" validate:"required"`
}

// UpdateAquariumRequest partial update for a tank.
type UpdateAquariumRequest struct {
	Number     *string          `json:"number"`
	ShelfLevel *string          `json:"shelf_level"`
	Volume     *decimal.Decimal `json:"volume"`
	Room       *string          `json:"room"`
	Status     *string          `json:"status"`
	TotalFish  *int             `json:"total_fish"`
}

// AquariumResponse tank output.
type AquariumResponse struct {
	ID            string          `json:"id"`
	FarmID        string          `json:"farm_id"`
	Number        string          `json:"number"`
	ShelfLevel    string          `json:"shelf_level"`
	Volume        decimal.Decimal `json:"volume"`
	Room          string          `json:"room"`
	Status        string          `json:"status"`
	OccupancyRate decimal.Decimal `json:"occupancy_rate"`
	TotalFish     int             `json:"total_fish"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// AquariumListResponse paginated tank list.
type AquariumListResponse struct {
	Items []AquariumResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// FarmSettingsRequest replaces the farm's room/status vocabularies.
type FarmSettingsRequest struct {
	Rooms    []entity.Room      `json:"rooms"`
	Statuses []entity.StatusDef `json:"statuses"`
}

// FarmSettingsResponse current vocabularies.
type FarmSettingsResponse struct {
	FarmID    string             `json:"farm_id"`
	Rooms     []entity.Room      `json:"rooms"`
	Statuses  []entity.StatusDef `json:"statuses"`
	UpdatedAt time.Time          `json:"updated_at"`
}
