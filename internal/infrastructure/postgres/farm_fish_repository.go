package postgres

import (
	"context"
	"fmt"

	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/repository"
)

var _ repository.FarmFishRepository = (*FarmFishRepo)(nil)

// FarmFishRepo is the legacy flat inventory table, still dual-written during
// shipment imports. Same column layout as fish_instances; reads of "fish in an
// aquarium" union both tables until the migration completes.
type FarmFishRepo struct {
	q Querier
}

// NewFarmFishRepository builds the legacy inventory adapter. Accepts a pool
// or tx; imports always pass the tx.
func NewFarmFishRepository(q Querier) *FarmFishRepo {
	return &FarmFishRepo{q: q}
}

// Create persists the legacy mirror row of a fish instance.
func (r *FarmFishRepo) Create(fi *entity.FishInstance) error {
	query := `
		INSERT INTO farm_fish (` + fishInstanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(context.Background(), query, instanceArgs(fi)...)
	if err != nil {
		return fmt.Errorf("insert farm fish: %w", err)
	}
	return nil
}

// ListByAquarium lists the legacy rows of one tank.
func (r *FarmFishRepo) ListByAquarium(aquariumID string) ([]*entity.FishInstance, error) {
	query := `SELECT ` + fishInstanceColumns + ` FROM farm_fish WHERE aquarium_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, aquariumID)
	if err != nil {
		return nil, fmt.Errorf("list farm fish: %w", err)
	}
	defer rows.Close()
	var list []*entity.FishInstance
	for rows.Next() {
		fi, err := scanInstance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan farm fish: %w", err)
		}
		list = append(list, fi)
	}
	return list, rows.Err()
}
