package reception

import (
	"fmt"

	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
)

// planTransitions encodes the allowed forward edges of the plan state machine:
//
//	planning → proforma_received → finalized → locked → in_progress → completed
//
// cancelled is reachable from every non-terminal state and is handled
// separately in CanTransition.
var planTransitions = map[string]string{
	entity.PlanStatusPlanning:         entity.PlanStatusProformaReceived,
	entity.PlanStatusProformaReceived: entity.PlanStatusFinalized,
	entity.PlanStatusFinalized:        entity.PlanStatusLocked,
	entity.PlanStatusLocked:           entity.PlanStatusInProgress,
	entity.PlanStatusInProgress:       entity.PlanStatusCompleted,
}

// IsTerminal reports whether a plan status admits no further transitions.
func IsTerminal(status string) bool {
	return status == entity.PlanStatusCompleted || status == entity.PlanStatusCancelled
}

// CanTransition reports whether a plan may move from one status to another.
// Only single forward steps are allowed; cancelled is allowed from any
// non-terminal status.
func CanTransition(from, to string) bool {
	if IsTerminal(from) {
		return false
	}
	if to == entity.PlanStatusCancelled {
		return true
	}
	return planTransitions[from] == to
}

// LocksItems reports whether a plan status forbids item mutation. Locked and
// every later state freeze the item list.
func LocksItems(status string) bool {
	switch status {
	case entity.PlanStatusLocked, entity.PlanStatusInProgress,
		entity.PlanStatusCompleted, entity.PlanStatusCancelled:
		return true
	}
	return false
}

// AllItemsSettled reports whether every non-cancelled item is received.
// This is the invariant behind completing a plan:
// completed ⇒ every item status is received or cancelled.
func AllItemsSettled(items []entity.ReceptionItem) bool {
	for _, it := range items {
		if it.Status != entity.ItemStatusReceived && it.Status != entity.ItemStatusCancelled {
			return false
		}
	}
	return true
}

// ValidatePlanComplete gates the receive flow: a plan is only workable when it
// has items and every item targets an aquarium. The error message carries the
// count of unassigned items so the operator knows how much is left.
func ValidatePlanComplete(items []entity.ReceptionItem) error {
	if len(items) == 0 {
		return fmt.Errorf("plan has no items")
	}
	unassigned := 0
	for _, it := range items {
		if it.TargetAquariumID == "" {
			unassigned++
		}
	}
	if unassigned > 0 {
		return fmt.Errorf("%d item(s) have no target aquarium assigned", unassigned)
	}
	return nil
}
