package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aquafarm-pro/aquafarm-api/internal/domain"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/repository"
)

var _ repository.AquariumRepository = (*AquariumRepo)(nil)

// AquariumRepo implements the AquariumRepository port on PostgreSQL.
type AquariumRepo struct {
	q Querier
}

// NewAquariumRepository builds the aquarium persistence adapter. Accepts a
// pool or tx.
func NewAquariumRepository(q Querier) *AquariumRepo {
	return &AquariumRepo{q: q}
}

const aquariumColumns = `id, farm_id, number, shelf_level, volume, room, status, occupancy_rate, total_fish, created_at, updated_at`

// Create persists a new tank. Tank numbers are unique within a farm.
func (r *AquariumRepo) Create(aq *entity.Aquarium) error {
	query := `
		INSERT INTO aquariums (` + aquariumColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		aq.ID, aq.FarmID, aq.Number, aq.ShelfLevel, aq.Volume, aq.Room, aq.Status,
		aq.OccupancyRate, aq.TotalFish, aq.CreatedAt, aq.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert aquarium: %w", err)
	}
	return nil
}

// GetByID fetches one tank by ID.
func (r *AquariumRepo) GetByID(id string) (*entity.Aquarium, error) {
	query := `SELECT ` + aquariumColumns + ` FROM aquariums WHERE id = $1`
	var a entity.Aquarium
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.FarmID, &a.Number, &a.ShelfLevel, &a.Volume, &a.Room, &a.Status,
		&a.OccupancyRate, &a.TotalFish, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get aquarium: %w", err)
	}
	return &a, nil
}

// Update updates a tank.
func (r *AquariumRepo) Update(aq *entity.Aquarium) error {
	query := `
		UPDATE aquariums SET number = $2, shelf_level = $3, volume = $4, room = $5,
			status = $6, occupancy_rate = $7, total_fish = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		aq.ID, aq.Number, aq.ShelfLevel, aq.Volume, aq.Room, aq.Status,
		aq.OccupancyRate, aq.TotalFish, aq.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update aquarium: %w", err)
	}
	return nil
}

// ListByFarm lists a farm's tanks with pagination.
func (r *AquariumRepo) ListByFarm(farmID string, limit, offset int) ([]*entity.Aquarium, error) {
	query := `
		SELECT ` + aquariumColumns + ` FROM aquariums
		WHERE farm_id = $1 ORDER BY room, number LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, farmID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list aquariums: %w", err)
	}
	defer rows.Close()
	return scanAquariums(rows)
}

// ListByRoom lists one room's tanks.
func (r *AquariumRepo) ListByRoom(farmID, room string) ([]*entity.Aquarium, error) {
	query := `
		SELECT ` + aquariumColumns + ` FROM aquariums
		WHERE farm_id = $1 AND room = $2 ORDER BY number`
	rows, err := r.q.Query(context.Background(), query, farmID, room)
	if err != nil {
		return nil, fmt.Errorf("list aquariums by room: %w", err)
	}
	defer rows.Close()
	return scanAquariums(rows)
}

// Delete removes a tank by ID.
func (r *AquariumRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM aquariums WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete aquarium: %w", err)
	}
	return nil
}

func scanAquariums(rows pgx.Rows) ([]*entity.Aquarium, error) {
	var list []*entity.Aquarium
	for rows.Next() {
		var a entity.Aquarium
		if err := rows.Scan(
			&a.ID, &a.FarmID, &a.Number, &a.ShelfLevel, &a.Volume, &a.Room, &a.Status,
			&a.OccupancyRate, &a.TotalFish, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan aquarium: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
