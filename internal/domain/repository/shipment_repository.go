package repository

import "github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"

// ShipmentRepository defines the persistence port for Shipment headers.
type ShipmentRepository interface {
	Create(shipment *entity.Shipment) error
	GetByID(id string) (*entity.Shipment, error)
	ListByFarm(farmID string, limit, offset int) ([]*entity.Shipment, error)
}

// FishInstanceRepository defines the persistence port for fish inventory
// units. Instances are only ever created inside a shipment import
// transaction.
type FishInstanceRepository interface {
	Create(instance *entity.FishInstance) error
	GetByID(id string) (*entity.FishInstance, error)
	ListByShipment(shipmentID string) ([]*entity.FishInstance, error)
	ListByAquarium(aquariumID string) ([]*entity.FishInstance, error)
	Update(instance *entity.FishInstance) error
}

// FarmFishRepository is the legacy flat inventory collection, still written in
// parallel with fish_instances during imports. Neither collection supersedes
// the other yet; aggregations over "fish currently in an aquarium" query both.
type FarmFishRepository interface {
	Create(instance *entity.FishInstance) error
	ListByAquarium(aquariumID string) ([]*entity.FishInstance, error)
}
