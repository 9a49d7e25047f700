package shipment

import (
	"github.com/aquafarm-pro/aquafarm-api/internal/application/dto"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/repository"
)

// QueryUseCase is the read side of shipments: headers and the instances an
// import created. Reads go straight through the pool, no transaction.
type QueryUseCase struct {
	shipmentRepo repository.ShipmentRepository
	instanceRepo repository.FishInstanceRepository
}

// NewQueryUseCase builds the shipment read use case.
func NewQueryUseCase(shipmentRepo repository.ShipmentRepository, instanceRepo repository.FishInstanceRepository) *QueryUseCase {
	return &QueryUseCase{shipmentRepo: shipmentRepo, instanceRepo: instanceRepo}
}

// Get returns one shipment header.
func (uc *QueryUseCase) Get(id string) (*dto.ShipmentResponse, error) {
	s, err := uc.shipmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toShipmentResponse(s), nil
}

// List lists a farm's shipments, newest delivery first.
func (uc *QueryUseCase) List(farmID string, limit, offset int) (*dto.ShipmentListResponse, error) {
	list, err := uc.shipmentRepo.ListByFarm(farmID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShipmentResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toShipmentResponse(s))
	}
	return &dto.ShipmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Instances returns the fish instances one import created.
func (uc *QueryUseCase) Instances(shipmentID string) ([]*entity.FishInstance, error) {
	s, err := uc.shipmentRepo.GetByID(shipmentID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return uc.instanceRepo.ListByShipment(shipmentID)
}

func toShipmentResponse(s *entity.Shipment) *dto.ShipmentResponse {
	return &dto.ShipmentResponse{
		ID:             s.ID,
		FarmID:         s.FarmID,
		Supplier:       s.Supplier,
		DateReceived:   s.DateReceived,
		TotalItemTypes: s.TotalItemTypes,
		TotalFishCount: s.TotalFishCount,
		TotalCost:      s.TotalCost,
		Currency:       s.Currency,
		Status:         s.Status,
		CreatedAt:      s.CreatedAt,
		CreatedBy:      s.CreatedBy,
	}
}
