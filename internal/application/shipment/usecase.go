package shipment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aquafarm-pro/aquafarm-api/internal/application/dto"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/repository"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/validation"
)

// ImportUseCase persists one supplier delivery: a shipment header plus one
// fish instance per line item, committed as a single transaction. A partially
// imported shipment is never observable: any write failure rolls back the
// whole batch.
type ImportUseCase struct {
	txRunner TxRunner
	farmRepo repository.FarmRepository
}

// NewImportUseCase builds the use case.
func NewImportUseCase(txRunner TxRunner, farmRepo repository.FarmRepository) *ImportUseCase {
	return &ImportUseCase{txRunner: txRunner, farmRepo: farmRepo}
}

// Import validates preconditions, computes the aggregate totals and commits
// shipment + instances atomically.
//
// Each precondition has its own error so the handler can answer precisely:
// ErrUnauthenticated (no caller), ErrMissingFarm, ErrEmptyImport, and
// ErrInvalidInput when any row fails candidate validation. All of them are
// checked before any write.
func (uc *ImportUseCase) Import(
	ctx context.Context,
	userID, farmID string,
	meta dto.ShipmentMetadata,
	items []entity.CandidateRecord,
) (*dto.ImportShipmentResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if farmID == "" {
		return nil, domain.ErrMissingFarm
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyImport
	}

	// Every row must pass validation before anything is written. One bad
	// row rejects the whole batch, mirroring the transaction semantics.
	for i, it := range items {
		if v := validation.ValidateCandidate(it); !v.IsValid {
			return nil, fmt.Errorf("%w: row %d: %s", domain.ErrInvalidInput, i, joinFieldErrors(v.Errors))
		}
	}

	farm, err := uc.farmRepo.GetByID(farmID)
	if err != nil {
		return nil, err
	}
	if farm == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	currency := meta.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}
	dateReceived := meta.DateReceived
	if dateReceived.IsZero() {
		dateReceived = now
	}

	// Aggregate totals over the line items. Quantity falls back through
	// totalQuantity -> bags x perBag -> 1; a missing price counts as zero.
	totalFish := 0
	totalCost := decimal.Zero
	for _, it := range items {
		qty := it.EffectiveQuantity()
		totalFish += qty
		if it.UnitPrice != nil {
			totalCost = totalCost.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(qty))))
		}
	}

	ship := &entity.Shipment{
		ID:             uuid.New().String(),
		FarmID:         farmID,
		Supplier:       meta.Supplier,
		DateReceived:   dateReceived,
		TotalItemTypes: len(items),
		TotalFishCount: totalFish,
		TotalCost:      totalCost,
		Currency:       currency,
		Status:         entity.ShipmentStatusReceived,
		CreatedAt:      now,
		CreatedBy:      userID,
	}

	instances := make([]*entity.FishInstance, 0, len(items))
	for _, it := range items {
		instances = append(instances, newInstance(ship, it, now))
	}

	// One transaction for the header and all N instances. The store never
	// shows a reader a partial batch.
	err = uc.txRunner.Run(ctx, func(
		shipmentRepo repository.ShipmentRepository,
		instanceRepo repository.FishInstanceRepository,
		farmFishRepo repository.FarmFishRepository,
	) error {
		if err := shipmentRepo.Create(ship); err != nil {
			return err
		}
		for _, inst := range instances {
			if err := instanceRepo.Create(inst); err != nil {
				return err
			}
			// Legacy parallel inventory: farm_fish is still dual-written
			// until the migration question is settled.
			if err := farmFishRepo.Create(inst); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("shipment import transaction: %w", err)
	}

	return &dto.ImportShipmentResponse{
		ShipmentID: ship.ID,
		FishCount:  len(instances),
		TotalFish:  totalFish,
	}, nil
}

func joinFieldErrors(errs []validation.FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// newInstance seeds one inventory unit from a line item. The three per-fish
// cost figures all mirror the invoice price: mortality-driven reallocation
// happens later, outside the import.
func newInstance(ship *entity.Shipment, it entity.CandidateRecord, now time.Time) *entity.FishInstance {
	qty := it.EffectiveQuantity()
	price := decimal.Zero
	if it.UnitPrice != nil {
		price = *it.UnitPrice
	}
	currency := it.Currency
	if currency == "" {
		currency = ship.Currency
	}
	return &entity.FishInstance{
		ID:               uuid.New().String(),
		FarmID:           ship.FarmID,
		ShipmentID:       ship.ID,
		ScientificName:   it.ScientificName,
		CommonName:       it.CommonName,
		Size:             it.Size,
		Code:             it.Code,
		OriginalQuantity: qty,
		CurrentQuantity:  qty,
		Costs: entity.FishCosts{
			InvoiceCostPerFish: price,
			ArrivalCostPerFish: price,
			CurrentCostPerFish: price,
			TotalInvoiceCost:   price.Mul(decimal.NewFromInt(int64(qty))),
			Currency:           currency,
		},
		Mortality:  entity.Mortality{},
		AquariumID: nil,
		Phase:      entity.PhaseReception,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
