package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/repository"
)

var (
	_ repository.ReceptionPlanRepository = (*ReceptionPlanRepo)(nil)
	_ repository.ReceptionItemRepository = (*ReceptionItemRepo)(nil)
)

// ReceptionPlanRepo implements the ReceptionPlanRepository port on PostgreSQL.
type ReceptionPlanRepo struct {
	q Querier
}

// NewReceptionPlanRepository builds the plan persistence adapter. Accepts a
// pool or tx.
func NewReceptionPlanRepository(q Querier) *ReceptionPlanRepo {
	return &ReceptionPlanRepo{q: q}
}

const planColumns = `id, farm_id, expected_date, source, status, country_of_origin, supplier_name,
	target_room, shipment_reference, item_count, received_count, is_locked, created_at, updated_at, created_by`

// Create persists a new reception plan.
func (r *ReceptionPlanRepo) Create(p *entity.ReceptionPlan) error {
	query := `
		INSERT INTO reception_plans (` + planColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.FarmID, p.ExpectedDate, p.Source, p.Status, p.CountryOfOrigin, p.SupplierName,
		p.TargetRoom, p.ShipmentReference, p.ItemCount, p.ReceivedCount, p.IsLocked,
		p.CreatedAt, p.UpdatedAt, p.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert reception plan: %w", err)
	}
	return nil
}

// GetByID fetches one plan by ID.
func (r *ReceptionPlanRepo) GetByID(id string) (*entity.ReceptionPlan, error) {
	query := `SELECT ` + planColumns + ` FROM reception_plans WHERE id = $1`
	p, err := scanPlan(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reception plan: %w", err)
	}
	return p, nil
}

// Update updates a plan.
func (r *ReceptionPlanRepo) Update(p *entity.ReceptionPlan) error {
	query := `
		UPDATE reception_plans SET
			expected_date = $2, source = $3, status = $4, country_of_origin = $5,
			supplier_name = $6, target_room = $7, shipment_reference = $8,
			item_count = $9, received_count = $10, is_locked = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ExpectedDate, p.Source, p.Status, p.CountryOfOrigin,
		p.SupplierName, p.TargetRoom, p.ShipmentReference,
		p.ItemCount, p.ReceivedCount, p.IsLocked, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update reception plan: %w", err)
	}
	return nil
}

// ListByFarm lists a farm's plans, newest first.
func (r *ReceptionPlanRepo) ListByFarm(farmID string, limit, offset int) ([]*entity.ReceptionPlan, error) {
	query := `
		SELECT ` + planColumns + ` FROM reception_plans
		WHERE farm_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, farmID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reception plans: %w", err)
	}
	defer rows.Close()
	var list []*entity.ReceptionPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reception plan: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPlan(row pgx.Row) (*entity.ReceptionPlan, error) {
	var p entity.ReceptionPlan
	err := row.Scan(
		&p.ID, &p.FarmID, &p.ExpectedDate, &p.Source, &p.Status, &p.CountryOfOrigin, &p.SupplierName,
		&p.TargetRoom, &p.ShipmentReference, &p.ItemCount, &p.ReceivedCount, &p.IsLocked,
		&p.CreatedAt, &p.UpdatedAt, &p.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ReceptionItemRepo implements the ReceptionItemRepository port on PostgreSQL.
type ReceptionItemRepo struct {
	q Querier
}

// NewReceptionItemRepository builds the item persistence adapter. Accepts a
// pool or tx.
func NewReceptionItemRepository(q Querier) *ReceptionItemRepo {
	return &ReceptionItemRepo{q: q}
}

const itemColumns = `id, plan_id, hebrew_name, scientific_name, size, box_number, code,
	target_aquarium_id, target_aquarium_number, target_room, quantity, status, created_at, updated_at`

// Create persists a new reception item.
func (r *ReceptionItemRepo) Create(it *entity.ReceptionItem) error {
	query := `
		INSERT INTO reception_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		it.ID, it.PlanID, it.HebrewName, it.ScientificName, it.Size, it.BoxNumber, it.Code,
		it.TargetAquariumID, it.TargetAquariumNumber, it.TargetRoom, it.Quantity, it.Status,
		it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reception item: %w", err)
	}
	return nil
}

// GetByID fetches one item by ID.
func (r *ReceptionItemRepo) GetByID(id string) (*entity.ReceptionItem, error) {
	query := `SELECT ` + itemColumns + ` FROM reception_items WHERE id = $1`
	it, err := scanItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reception item: %w", err)
	}
	return it, nil
}

// Update updates an item.
func (r *ReceptionItemRepo) Update(it *entity.ReceptionItem) error {
	query := `
		UPDATE reception_items SET
			hebrew_name = $2, scientific_name = $3, size = $4, box_number = $5, code = $6,
			target_aquarium_id = $7, target_aquarium_number = $8, target_room = $9,
			quantity = $10, status = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		it.ID, it.HebrewName, it.ScientificName, it.Size, it.BoxNumber, it.Code,
		it.TargetAquariumID, it.TargetAquariumNumber, it.TargetRoom,
		it.Quantity, it.Status, it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update reception item: %w", err)
	}
	return nil
}

// ListByPlan lists a plan's items in insertion order.
func (r *ReceptionItemRepo) ListByPlan(planID string) ([]*entity.ReceptionItem, error) {
	query := `SELECT ` + itemColumns + ` FROM reception_items WHERE plan_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, planID)
	if err != nil {
		return nil, fmt.Errorf("list reception items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ReceptionItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reception item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func scanItem(row pgx.Row) (*entity.ReceptionItem, error) {
	var it entity.ReceptionItem
	err := row.Scan(
		&it.ID, &it.PlanID, &it.HebrewName, &it.ScientificName, &it.Size, &it.BoxNumber, &it.Code,
		&it.TargetAquariumID, &it.TargetAquariumNumber, &it.TargetRoom, &it.Quantity, &it.Status,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
