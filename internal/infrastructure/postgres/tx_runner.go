package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aquafarm-pro/aquafarm-api/internal/application/shipment"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/repository"
)

var _ shipment.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside one PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner on top of the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, hands fn repositories bound to it, and commits.
// Any error from fn (or the commit) rolls everything back.
func (r *TxRunner) Run(ctx context.Context, fn func(
	shipmentRepo repository.ShipmentRepository,
	instanceRepo repository.FishInstanceRepository,
	farmFishRepo repository.FarmFishRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	shipmentRepo := NewShipmentRepository(tx)
	instanceRepo := NewFishInstanceRepository(tx)
	farmFishRepo := NewFarmFishRepository(tx)

	if err := fn(shipmentRepo, instanceRepo, farmFishRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
