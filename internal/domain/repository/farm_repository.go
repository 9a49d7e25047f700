package repository

import "github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"

// FarmRepository defines the persistence port for Farm and its settings blob.
type FarmRepository interface {
	Create(farm *entity.Farm) error
	GetByID(id string) (*entity.Farm, error)
	List(limit, offset int) ([]*entity.Farm, error)
	// GetSettings returns the farm's room/status vocabularies. Never nil for an
	// existing farm: a farm with no saved settings gets empty slices.
	GetSettings(farmID string) (*entity.FarmSettings, error)
	// SaveSettings replaces the vocabularies. Callers validate before writing.
	SaveSettings(settings *entity.FarmSettings) error
}
