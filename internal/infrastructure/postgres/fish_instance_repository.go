package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/repository"
)

var _ repository.FishInstanceRepository = (*FishInstanceRepo)(nil)

// FishInstanceRepo implements the FishInstanceRepository port on PostgreSQL.
// Cost and mortality sub-structs are flattened into columns.
type FishInstanceRepo struct {
	q Querier
}

// NewFishInstanceRepository builds the fish instance persistence adapter.
// Accepts a pool or tx; imports always pass the tx.
func NewFishInstanceRepository(q Querier) *FishInstanceRepo {
	return &FishInstanceRepo{q: q}
}

const fishInstanceColumns = `id, farm_id, shipment_id, scientific_name, common_name, size, code,
	original_quantity, current_quantity,
	invoice_cost_per_fish, arrival_cost_per_fish, current_cost_per_fish, total_invoice_cost, currency,
	mortality_arrival, mortality_quarantine, mortality_total,
	aquarium_id, phase, created_at, updated_at`

// Create persists a fish instance.
func (r *FishInstanceRepo) Create(fi *entity.FishInstance) error {
	query := `
		INSERT INTO fish_instances (` + fishInstanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(context.Background(), query, instanceArgs(fi)...)
	if err != nil {
		return fmt.Errorf("insert fish instance: %w", err)
	}
	return nil
}

// GetByID fetches one fish instance by ID.
func (r *FishInstanceRepo) GetByID(id string) (*entity.FishInstance, error) {
	query := `SELECT ` + fishInstanceColumns + ` FROM fish_instances WHERE id = $1`
	fi, err := scanInstance(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fish instance: %w", err)
	}
	return fi, nil
}

// ListByShipment lists the instances created by one shipment import.
func (r *FishInstanceRepo) ListByShipment(shipmentID string) ([]*entity.FishInstance, error) {
	query := `SELECT ` + fishInstanceColumns + ` FROM fish_instances WHERE shipment_id = $1 ORDER BY created_at`
	return r.list(query, shipmentID)
}

// ListByAquarium lists the instances currently placed in one tank.
func (r *FishInstanceRepo) ListByAquarium(aquariumID string) ([]*entity.FishInstance, error) {
	query := `SELECT ` + fishInstanceColumns + ` FROM fish_instances WHERE aquarium_id = $1 ORDER BY created_at`
	return r.list(query, aquariumID)
}

// Update updates a fish instance.
func (r *FishInstanceRepo) Update(fi *entity.FishInstance) error {
	query := `
		UPDATE fish_instances SET
			current_quantity = $2, current_cost_per_fish = $3,
			mortality_arrival = $4, mortality_quarantine = $5, mortality_total = $6,
			aquarium_id = $7, phase = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		fi.ID, fi.CurrentQuantity, fi.Costs.CurrentCostPerFish,
		fi.Mortality.Arrival, fi.Mortality.Quarantine, fi.Mortality.Total,
		fi.AquariumID, fi.Phase, fi.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update fish instance: %w", err)
	}
	return nil
}

func (r *FishInstanceRepo) list(query string, arg any) ([]*entity.FishInstance, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list fish instances: %w", err)
	}
	defer rows.Close()
	var list []*entity.FishInstance
	for rows.Next() {
		fi, err := scanInstance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fish instance: %w", err)
		}
		list = append(list, fi)
	}
	return list, rows.Err()
}

func instanceArgs(fi *entity.FishInstance) []any {
	return []any{
		fi.ID, fi.FarmID, fi.ShipmentID, fi.ScientificName, fi.CommonName, fi.Size, fi.Code,
		fi.OriginalQuantity, fi.CurrentQuantity,
		fi.Costs.InvoiceCostPerFish, fi.Costs.ArrivalCostPerFish, fi.Costs.CurrentCostPerFish,
		fi.Costs.TotalInvoiceCost, fi.Costs.Currency,
		fi.Mortality.Arrival, fi.Mortality.Quarantine, fi.Mortality.Total,
		fi.AquariumID, fi.Phase, fi.CreatedAt, fi.UpdatedAt,
	}
}

func scanInstance(row pgx.Row) (*entity.FishInstance, error) {
	var fi entity.FishInstance
	err := row.Scan(
		&fi.ID, &fi.FarmID, &fi.ShipmentID, &fi.ScientificName, &fi.CommonName, &fi.Size, &fi.Code,
		&fi.OriginalQuantity, &fi.CurrentQuantity,
		&fi.Costs.InvoiceCostPerFish, &fi.Costs.ArrivalCostPerFish, &fi.Costs.CurrentCostPerFish,
		&fi.Costs.TotalInvoiceCost, &fi.Costs.Currency,
		&fi.Mortality.Arrival, &fi.Mortality.Quarantine, &fi.Mortality.Total,
		&fi.AquariumID, &fi.Phase, &fi.CreatedAt, &fi.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &fi, nil
}
