package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implements the ShipmentRepository port on PostgreSQL.
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository builds the shipment persistence adapter. Accepts a
// pool or tx; imports always pass the tx.
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

const shipmentColumns = `id, farm_id, supplier, date_received, total_item_types, total_fish_count, total_cost, currency, status, created_at, created_by`

// Create persists a shipment header.
func (r *ShipmentRepo) Create(s *entity.Shipment) error {
	query := `
		INSERT INTO shipments (` + shipmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.FarmID, s.Supplier, s.DateReceived, s.TotalItemTypes, s.TotalFishCount,
		s.TotalCost, s.Currency, s.Status, s.CreatedAt, s.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

// GetByID fetches one shipment by ID.
func (r *ShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = $1`
	var s entity.Shipment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.FarmID, &s.Supplier, &s.DateReceived, &s.TotalItemTypes, &s.TotalFishCount,
		&s.TotalCost, &s.Currency, &s.Status, &s.CreatedAt, &s.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return &s, nil
}

// ListByFarm lists a farm's shipments, newest delivery first.
func (r *ShipmentRepo) ListByFarm(farmID string, limit, offset int) ([]*entity.Shipment, error) {
	query := `
		SELECT ` + shipmentColumns + ` FROM shipments
		WHERE farm_id = $1 ORDER BY date_received DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, farmID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shipment
	for rows.Next() {
		var s entity.Shipment
		if err := rows.Scan(
			&s.ID, &s.FarmID, &s.Supplier, &s.DateReceived, &s.TotalItemTypes, &s.TotalFishCount,
			&s.TotalCost, &s.Currency, &s.Status, &s.CreatedAt, &s.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
