package reception

import (
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
	domainreception "github.com/aquafarm-pro/aquafarm-api/internal/domain/reception"
)

// WorksheetGenerator renders a printable work-requirements sheet for one
// reception day: the per-room and per-size rollup the crew takes to the
// unloading area.
type WorksheetGenerator interface {
	Generate(plan *entity.ReceptionPlan, items []entity.ReceptionItem, req domainreception.WorkRequirements) ([]byte, error)
}
