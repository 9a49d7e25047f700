package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/repository"
)

var _ repository.FarmRepository = (*FarmRepo)(nil)

// FarmRepo implements the FarmRepository port on PostgreSQL. The room/status
// vocabularies live in a one-row-per-farm settings table as JSONB.
type FarmRepo struct {
	q Querier
}

// NewFarmRepository builds the farm persistence adapter. Accepts a pool or tx.
func NewFarmRepository(q Querier) *FarmRepo {
	return &FarmRepo{q: q}
}

// Create persists a new farm.
func (r *FarmRepo) Create(farm *entity.Farm) error {
	query := `
		INSERT INTO farms (id, name, address, phone, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		farm.ID, farm.Name, farm.Address, farm.Phone, farm.Email, farm.Status,
		farm.CreatedAt, farm.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert farm: %w", err)
	}
	return nil
}

// GetByID fetches one farm by ID.
func (r *FarmRepo) GetByID(id string) (*entity.Farm, error) {
	query := `
		SELECT id, name, address, phone, email, status, created_at, updated_at
		FROM farms WHERE id = $1`
	var f entity.Farm
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Name, &f.Address, &f.Phone, &f.Email, &f.Status, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get farm: %w", err)
	}
	return &f, nil
}

// List lists farms with pagination.
func (r *FarmRepo) List(limit, offset int) ([]*entity.Farm, error) {
	query := `
		SELECT id, name, address, phone, email, status, created_at, updated_at
		FROM farms ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list farms: %w", err)
	}
	defer rows.Close()
	var list []*entity.Farm
	for rows.Next() {
		var f entity.Farm
		if err := rows.Scan(&f.ID, &f.Name, &f.Address, &f.Phone, &f.Email, &f.Status, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan farm: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// GetSettings returns the farm's room/status vocabularies. A farm that never
// saved settings gets empty slices, not nil.
func (r *FarmRepo) GetSettings(farmID string) (*entity.FarmSettings, error) {
	query := `SELECT rooms, statuses, updated_at FROM farm_settings WHERE farm_id = $1`
	var roomsJSON, statusesJSON []byte
	var updatedAt time.Time
	err := r.q.QueryRow(context.Background(), query, farmID).Scan(&roomsJSON, &statusesJSON, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.FarmSettings{
				FarmID:   farmID,
				Rooms:    []entity.Room{},
				Statuses: []entity.StatusDef{},
			}, nil
		}
		return nil, fmt.Errorf("get farm settings: %w", err)
	}
	settings := &entity.FarmSettings{FarmID: farmID, UpdatedAt: updatedAt}
	if err := json.Unmarshal(roomsJSON, &settings.Rooms); err != nil {
		return nil, fmt.Errorf("decode rooms: %w", err)
	}
	if err := json.Unmarshal(statusesJSON, &settings.Statuses); err != nil {
		return nil, fmt.Errorf("decode statuses: %w", err)
	}
	return settings, nil
}

// SaveSettings upserts the farm's vocabularies.
func (r *FarmRepo) SaveSettings(settings *entity.FarmSettings) error {
	roomsJSON, err := json.Marshal(settings.Rooms)
	if err != nil {
		return fmt.Errorf("encode rooms: %w", err)
	}
	statusesJSON, err := json.Marshal(settings.Statuses)
	if err != nil {
		return fmt.Errorf("encode statuses: %w", err)
	}
	query := `
		INSERT INTO farm_settings (farm_id, rooms, statuses, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (farm_id) DO UPDATE SET rooms = $2, statuses = $3, updated_at = $4`
	_, err = r.q.Exec(context.Background(), query,
		settings.FarmID, roomsJSON, statusesJSON, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save farm settings: %w", err)
	}
	return nil
}
