package repository

import "github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"

// AquariumRepository defines the persistence port for Aquarium (DIP).
type AquariumRepository interface {
	Create(aquarium *entity.Aquarium) error
	GetByID(id string) (*entity.Aquarium, error)
	Update(aquarium *entity.Aquarium) error
	ListByFarm(farmID string, limit, offset int) ([]*entity.Aquarium, error)
	ListByRoom(farmID, room string) ([]*entity.Aquarium, error)
	Delete(id string) error
}
