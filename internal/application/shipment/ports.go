package shipment

import (
	"context"

	"github.com/aquafarm-pro/aquafarm-api/internal/domain/repository"
)

// TxRunner executes fn inside one database transaction, handing it
// repositories bound to that transaction. This is what makes the import
// all-or-nothing: either every document the callback writes is committed, or
// none is.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		shipmentRepo repository.ShipmentRepository,
		instanceRepo repository.FishInstanceRepository,
		farmFishRepo repository.FarmFishRepository,
	) error) error
}
