package repository

import "github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"

// ReceptionPlanRepository defines the persistence port for reception plans.
type ReceptionPlanRepository interface {
	Create(plan *entity.ReceptionPlan) error
	GetByID(id string) (*entity.ReceptionPlan, error)
	Update(plan *entity.ReceptionPlan) error
	ListByFarm(farmID string, limit, offset int) ([]*entity.ReceptionPlan, error)
}

// ReceptionItemRepository defines the persistence port for reception items.
type ReceptionItemRepository interface {
	Create(item *entity.ReceptionItem) error
	GetByID(id string) (*entity.ReceptionItem, error)
	Update(item *entity.ReceptionItem) error
	ListByPlan(planID string) ([]*entity.ReceptionItem, error)
}
