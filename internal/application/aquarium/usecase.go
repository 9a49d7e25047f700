package aquarium

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aquafarm-pro/aquafarm-api/internal/application/dto"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/repository"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/validation"
)

// UseCase covers aquarium CRUD and the farm-level room/status vocabularies.
type UseCase struct {
	repo     repository.AquariumRepository
	farmRepo repository.FarmRepository
}

// NewUseCase builds the aquarium use case.
func NewUseCase(repo repository.AquariumRepository, farmRepo repository.FarmRepository) *UseCase {
	return &UseCase{repo: repo, farmRepo: farmRepo}
}

// Create registers a new tank for the farm. New tanks start empty.
func (uc *UseCase) Create(farmID string, in dto.CreateAquariumRequest) (*dto.AquariumResponse, error) {
	now := time.Now()
	aq := &entity.Aquarium{
		ID:         uuid.New().String(),
		FarmID:     farmID,
		Number:     in.Number,
		ShelfLevel: in.ShelfLevel,
		Volume:     in.Volume,
		Room:       in.Room,
		Status:     entity.AquariumStatusEmpty,
		TotalFish:  0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if v := validation.ValidateAquarium(*aq); !v.IsValid {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, v.Errors[0].Message)
	}
	if err := uc.repo.Create(aq); err != nil {
		return nil, err
	}
	return toResponse(aq), nil
}

// GetByID returns one tank.
func (uc *UseCase) GetByID(id string) (*dto.AquariumResponse, error) {
	aq, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if aq == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(aq), nil
}

// Update applies a partial update to a tank.
func (uc *UseCase) Update(id string, in dto.UpdateAquariumRequest) (*dto.AquariumResponse, error) {
	aq, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if aq == nil {
		return nil, domain.ErrNotFound
	}
	if in.Number != nil {
		aq.Number = *in.Number
	}
	if in.ShelfLevel != nil {
		aq.ShelfLevel = *in.ShelfLevel
	}
	if in.Volume != nil {
		aq.Volume = *in.Volume
	}
	if in.Room != nil {
		aq.Room = *in.Room
	}
	if in.Status != nil {
		if err := uc.checkStatus(aq.FarmID, *in.Status); err != nil {
			return nil, err
		}
		aq.Status = *in.Status
	}
	if in.TotalFish != nil {
		aq.TotalFish = *in.TotalFish
	}
	if v := validation.ValidateAquarium(*aq); !v.IsValid {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, v.Errors[0].Message)
	}
	aq.UpdatedAt = time.Now()
	if err := uc.repo.Update(aq); err != nil {
		return nil, err
	}
	return toResponse(aq), nil
}

// checkStatus accepts the built-in statuses plus whatever the farm defined in
// its settings vocabulary.
func (uc *UseCase) checkStatus(farmID, status string) error {
	switch status {
	case entity.AquariumStatusEmpty, entity.AquariumStatusOccupied,
		entity.AquariumStatusInTransfer, entity.AquariumStatusMaintenance:
		return nil
	}
	settings, err := uc.farmRepo.GetSettings(farmID)
	if err != nil {
		return err
	}
	for _, st := range settings.Statuses {
		if st.ID == status {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
}

// List lists a farm's tanks with pagination.
func (uc *UseCase) List(farmID string, limit, offset int) (*dto.AquariumListResponse, error) {
	list, err := uc.repo.ListByFarm(farmID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AquariumResponse, 0, len(list))
	for _, aq := range list {
		items = append(items, *toResponse(aq))
	}
	return &dto.AquariumListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByRoom lists the tanks of one room, for the reception assignment screen.
func (uc *UseCase) ListByRoom(farmID, room string) ([]dto.AquariumResponse, error) {
	list, err := uc.repo.ListByRoom(farmID, room)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AquariumResponse, 0, len(list))
	for _, aq := range list {
		items = append(items, *toResponse(aq))
	}
	return items, nil
}

// Delete removes a tank.
func (uc *UseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// GetSettings returns the farm's room/status vocabularies.
func (uc *UseCase) GetSettings(farmID string) (*dto.FarmSettingsResponse, error) {
	s, err := uc.farmRepo.GetSettings(farmID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.FarmSettingsResponse{
		FarmID:    s.FarmID,
		Rooms:     s.Rooms,
		Statuses:  s.Statuses,
		UpdatedAt: s.UpdatedAt,
	}, nil
}

// SaveSettings replaces the farm's vocabularies. Labels must be non-empty and
// unique within their list.
func (uc *UseCase) SaveSettings(farmID string, in dto.FarmSettingsRequest) (*dto.FarmSettingsResponse, error) {
	seen := make(map[string]bool, len(in.Rooms))
	for _, r := range in.Rooms {
		if r.Label == "" {
			return nil, fmt.Errorf("%w: room label cannot be empty", domain.ErrInvalidInput)
		}
		if seen[r.Label] {
			return nil, fmt.Errorf("%w: duplicate room label %q", domain.ErrInvalidInput, r.Label)
		}
		seen[r.Label] = true
	}
	seenStatus := make(map[string]bool, len(in.Statuses))
	for _, st := range in.Statuses {
		if st.ID == "" || st.Label == "" {
			return nil, fmt.Errorf("%w: status id and label are required", domain.ErrInvalidInput)
		}
		if seenStatus[st.ID] {
			return nil, fmt.Errorf("%w: duplicate status id %q", domain.ErrInvalidInput, st.ID)
		}
		seenStatus[st.ID] = true
	}
	settings := &entity.FarmSettings{
		FarmID:    farmID,
		Rooms:     in.Rooms,
		Statuses:  in.Statuses,
		UpdatedAt: time.Now(),
	}
	if err := uc.farmRepo.SaveSettings(settings); err != nil {
		return nil, err
	}
	return &dto.FarmSettingsResponse{
		FarmID:    settings.FarmID,
		Rooms:     settings.Rooms,
		Statuses:  settings.Statuses,
		UpdatedAt: settings.UpdatedAt,
	}, nil
}

func toResponse(a *entity.Aquarium) *dto.AquariumResponse {
	return &dto.AquariumResponse{
		ID:            a.ID,
		FarmID:        a.FarmID,
		Number:        a.Number,
		ShelfLevel:    a.ShelfLevel,
		Volume:        a.Volume,
		Room:          a.Room,
		Status:        a.Status,
		OccupancyRate: a.OccupancyRate,
		TotalFish:     a.TotalFish,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
