package reception

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aquafarm-pro/aquafarm-api/internal/application/dto"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
	domainreception "github.com/aquafarm-pro/aquafarm-api/internal/domain/reception"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/repository"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/validation"
)

// UseCase drives the reception plan lifecycle: create a plan, fill it with
// items (by hand or from an extraction run), walk it through the status
// machine and receive the fish.
//
// Item-count and received-count updates are read-modify-write without an
// optimistic-concurrency check; two operators editing the same plan race with
// later-write-wins semantics. Known gap, matches the current product
// behavior.
type UseCase struct {
	planRepo repository.ReceptionPlanRepository
	itemRepo repository.ReceptionItemRepository
	pdf      WorksheetGenerator
}

// NewUseCase builds the reception use case. pdf may be nil when worksheet
// rendering is not wired (e.g. tests).
func NewUseCase(planRepo repository.ReceptionPlanRepository, itemRepo repository.ReceptionItemRepository, pdf WorksheetGenerator) *UseCase {
	return &UseCase{planRepo: planRepo, itemRepo: itemRepo, pdf: pdf}
}

// CreatePlan starts a new reception plan in the planning state. When the
// caller supplies no shipment reference one is generated from the clock.
func (uc *UseCase) CreatePlan(farmID, userID string, in dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	now := time.Now()
	plan := &entity.ReceptionPlan{
		ID:                uuid.New().String(),
		FarmID:            farmID,
		ExpectedDate:      in.ExpectedDate,
		Source:            in.Source,
		Status:            entity.PlanStatusPlanning,
		CountryOfOrigin:   in.CountryOfOrigin,
		SupplierName:      in.SupplierName,
		TargetRoom:        in.TargetRoom,
		ShipmentReference: in.ShipmentReference,
		ItemCount:         0,
		ReceivedCount:     0,
		IsLocked:          false,
		CreatedAt:         now,
		UpdatedAt:         now,
		CreatedBy:         userID,
	}
	if v := validation.ValidatePlan(*plan); !v.IsValid {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, v.Errors[0].Message)
	}
	if plan.ShipmentReference == "" {
		plan.ShipmentReference = domainreception.GenerateShipmentReference(now)
	}
	if err := uc.planRepo.Create(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// GetPlan returns one plan.
func (uc *UseCase) GetPlan(id string) (*dto.PlanResponse, error) {
	plan, err := uc.planRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	return toPlanResponse(plan), nil
}

// ListPlans lists a farm's plans, newest first.
func (uc *UseCase) ListPlans(farmID string, limit, offset int) (*dto.PlanListResponse, error) {
	plans, err := uc.planRepo.ListByFarm(farmID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		items = append(items, *toPlanResponse(p))
	}
	return &dto.PlanListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// ListItems returns a plan's items.
func (uc *UseCase) ListItems(planID string) ([]dto.ItemResponse, error) {
	items, err := uc.itemRepo.ListByPlan(planID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// AddItem appends one fish line to a plan. Target aquarium may still be
// unassigned at this point; ValidatePlanComplete closes that hole before any
// receiving starts. Locked and later plans reject item mutation.
func (uc *UseCase) AddItem(planID string, in dto.AddItemRequest) (*dto.ItemResponse, error) {
	plan, err := uc.mutablePlan(planID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	item := &entity.ReceptionItem{
		ID:                   uuid.New().String(),
		PlanID:               plan.ID,
		HebrewName:           in.HebrewName,
		ScientificName:       in.ScientificName,
		Size:                 in.Size,
		BoxNumber:            in.BoxNumber,
		Code:                 in.Code,
		TargetAquariumID:     in.TargetAquariumID,
		TargetAquariumNumber: in.TargetAquariumNumber,
		TargetRoom:           in.TargetRoom,
		Quantity:             in.Quantity,
		Status:               entity.ItemStatusPlanned,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := validateItemForAdd(*item); err != nil {
		return nil, err
	}
	if item.TargetRoom == "" {
		item.TargetRoom = plan.TargetRoom
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	plan.ItemCount++
	plan.UpdatedAt = now
	if err := uc.planRepo.Update(plan); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// AttachCandidates converts validated extraction rows into planned items on
// an excel-sourced plan. Invalid rows are skipped (they stay on the operator's
// correction screen); the number of attached items is returned.
func (uc *UseCase) AttachCandidates(planID string, records []dto.ExtractedRecord) (int, error) {
	plan, err := uc.mutablePlan(planID)
	if err != nil {
		return 0, err
	}
	now := time.Now()
	attached := 0
	for _, rec := range records {
		if !rec.Verdict.IsValid {
			continue
		}
		item := &entity.ReceptionItem{
			ID:             uuid.New().String(),
			PlanID:         plan.ID,
			HebrewName:     rec.CommonName,
			ScientificName: rec.ScientificName,
			Size:           rec.Size,
			BoxNumber:      rec.BoxNumber,
			Code:           rec.Code,
			TargetRoom:     plan.TargetRoom,
			Quantity:       rec.EffectiveQuantity(),
			Status:         entity.ItemStatusPlanned,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if item.HebrewName == "" {
			item.HebrewName = rec.ScientificName
		}
		if err := uc.itemRepo.Create(item); err != nil {
			return attached, err
		}
		attached++
	}
	if attached > 0 {
		plan.ItemCount += attached
		plan.UpdatedAt = now
		if err := uc.planRepo.Update(plan); err != nil {
			return attached, err
		}
	}
	return attached, nil
}

// AssignAquarium sets the target aquarium of a planned item.
func (uc *UseCase) AssignAquarium(itemID, aquariumID, aquariumNumber string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.Status != entity.ItemStatusPlanned {
		return nil, domain.ErrConflict
	}
	if _, err := uc.mutablePlan(item.PlanID); err != nil {
		return nil, err
	}
	item.TargetAquariumID = aquariumID
	item.TargetAquariumNumber = aquariumNumber
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Transition moves a plan one step along the status machine (or cancels it).
// Moving to completed additionally requires every non-cancelled item to be
// received. Moving to locked freezes the item list.
func (uc *UseCase) Transition(planID, to string) (*dto.PlanResponse, error) {
	plan, err := uc.planRepo.GetByID(planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	if !domainreception.CanTransition(plan.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, plan.Status, to)
	}
	if to == entity.PlanStatusCompleted {
		items, err := uc.loadItems(planID)
		if err != nil {
			return nil, err
		}
		if !domainreception.AllItemsSettled(items) {
			return nil, fmt.Errorf("%w: not every item is received or cancelled", domain.ErrInvalidTransition)
		}
	}
	if to == entity.PlanStatusLocked {
		items, err := uc.loadItems(planID)
		if err != nil {
			return nil, err
		}
		if err := domainreception.ValidatePlanComplete(items); err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
		}
		plan.IsLocked = true
	}
	plan.Status = to
	plan.UpdatedAt = time.Now()
	if err := uc.planRepo.Update(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// ReceiveItem confirms physical receipt of one item. The flip to received is
// terminal. The plan auto-advances: locked becomes in_progress on the first
// receive, and once every item is settled the plan completes.
func (uc *UseCase) ReceiveItem(itemID string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	switch item.Status {
	case entity.ItemStatusReceived:
		return nil, domain.ErrItemAlreadyReceived
	case entity.ItemStatusCancelled:
		return nil, domain.ErrConflict
	}
	if item.TargetAquariumID == "" {
		return nil, fmt.Errorf("%w: item has no target aquarium", domain.ErrInvalidInput)
	}

	plan, err := uc.planRepo.GetByID(item.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	switch plan.Status {
	case entity.PlanStatusLocked, entity.PlanStatusInProgress:
		// receiving allowed
	default:
		return nil, fmt.Errorf("%w: plan is %s, receiving requires locked or in_progress", domain.ErrInvalidTransition, plan.Status)
	}

	now := time.Now()
	item.Status = entity.ItemStatusReceived
	item.UpdatedAt = now
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}

	plan.ReceivedCount++
	if plan.Status == entity.PlanStatusLocked {
		plan.Status = entity.PlanStatusInProgress
	}
	items, err := uc.loadItems(plan.ID)
	if err != nil {
		return nil, err
	}
	if domainreception.AllItemsSettled(items) {
		plan.Status = entity.PlanStatusCompleted
	}
	plan.UpdatedAt = now
	if err := uc.planRepo.Update(plan); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// CancelItem marks a planned item cancelled (terminal). Received items cannot
// be cancelled.
func (uc *UseCase) CancelItem(itemID string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.Status == entity.ItemStatusReceived {
		return nil, domain.ErrItemAlreadyReceived
	}
	if item.Status == entity.ItemStatusCancelled {
		return toItemResponse(item), nil // already cancelled, idempotent
	}

	plan, err := uc.planRepo.GetByID(item.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	if domainreception.IsTerminal(plan.Status) {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	item.Status = entity.ItemStatusCancelled
	item.UpdatedAt = now
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}

	// Cancelling the last open item can complete an in-progress plan.
	if plan.Status == entity.PlanStatusInProgress {
		items, err := uc.loadItems(plan.ID)
		if err != nil {
			return nil, err
		}
		if domainreception.AllItemsSettled(items) {
			plan.Status = entity.PlanStatusCompleted
			plan.UpdatedAt = now
			if err := uc.planRepo.Update(plan); err != nil {
				return nil, err
			}
		}
	}
	return toItemResponse(item), nil
}

// WorkRequirements returns the per-size and per-room rollup of a plan's items.
func (uc *UseCase) WorkRequirements(planID string) (*domainreception.WorkRequirements, error) {
	if _, err := uc.GetPlan(planID); err != nil {
		return nil, err
	}
	items, err := uc.loadItems(planID)
	if err != nil {
		return nil, err
	}
	req := domainreception.CalculateWorkRequirements(items)
	return &req, nil
}

// Worksheet renders the printable PDF worksheet for a plan.
func (uc *UseCase) Worksheet(planID string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("worksheet rendering is not configured")
	}
	plan, err := uc.planRepo.GetByID(planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.loadItems(planID)
	if err != nil {
		return nil, err
	}
	req := domainreception.CalculateWorkRequirements(items)
	return uc.pdf.Generate(plan, items, req)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// mutablePlan loads a plan and rejects item mutation on locked/terminal plans.
func (uc *UseCase) mutablePlan(planID string) (*entity.ReceptionPlan, error) {
	plan, err := uc.planRepo.GetByID(planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	if domainreception.LocksItems(plan.Status) {
		return nil, domain.ErrPlanLocked
	}
	return plan, nil
}

func (uc *UseCase) loadItems(planID string) ([]entity.ReceptionItem, error) {
	ptrs, err := uc.itemRepo.ListByPlan(planID)
	if err != nil {
		return nil, err
	}
	items := make([]entity.ReceptionItem, 0, len(ptrs))
	for _, p := range ptrs {
		items = append(items, *p)
	}
	return items, nil
}

// validateItemForAdd applies the add-time subset of the item rules: the
// target aquarium may still be missing here, ValidatePlanComplete enforces it
// before the plan can be locked for receiving.
func validateItemForAdd(item entity.ReceptionItem) error {
	v := validation.ValidateItem(item)
	for _, e := range v.Errors {
		if e.Field == "targetAquariumId" {
			continue
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, e.Message)
	}
	return nil
}

func toPlanResponse(p *entity.ReceptionPlan) *dto.PlanResponse {
	return &dto.PlanResponse{
		ID:                p.ID,
		FarmID:            p.FarmID,
		ExpectedDate:      p.ExpectedDate,
		Source:            p.Source,
		Status:            p.Status,
		CountryOfOrigin:   p.CountryOfOrigin,
		SupplierName:      p.SupplierName,
		TargetRoom:        p.TargetRoom,
		ShipmentReference: p.ShipmentReference,
		ItemCount:         p.ItemCount,
		ReceivedCount:     p.ReceivedCount,
		IsLocked:          p.IsLocked,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toItemResponse(it *entity.ReceptionItem) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:                   it.ID,
		PlanID:               it.PlanID,
		HebrewName:           it.HebrewName,
		ScientificName:       it.ScientificName,
		Size:                 it.Size,
		BoxNumber:            it.BoxNumber,
		Code:                 it.Code,
		TargetAquariumID:     it.TargetAquariumID,
		TargetAquariumNumber: it.TargetAquariumNumber,
		TargetRoom:           it.TargetRoom,
		Quantity:             it.Quantity,
		Status:               it.Status,
		CreatedAt:            it.CreatedAt,
		UpdatedAt:            it.UpdatedAt,
	}
}
