package reception

import "github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"

// SizeBucket aggregates reception items of one size.
type SizeBucket struct {
	Count int      `json:"count"`
	Names []string `json:"names"`
}

// RoomBucket aggregates reception items targeting one room, with a nested
// per-size breakdown.
type RoomBucket struct {
	Count  int            `json:"count"`
	BySize map[string]int `json:"bySize"`
}

// WorkRequirements is the operational rollup an operator reads before a
// reception day: how many lines per size, how many per room.
type WorkRequirements struct {
	BySize               map[string]SizeBucket `json:"bySize"`
	ByRoom               map[string]RoomBucket `json:"byRoom"`
	TotalItems           int                   `json:"totalItems"`
	TotalAquariumsNeeded int                   `json:"totalAquariumsNeeded"`
}

// CalculateWorkRequirements folds the item list into per-size and per-room
// buckets. Deterministic and pure; empty input yields empty buckets, never an
// error.
//
// TotalAquariumsNeeded equals the item count, i.e. one aquarium per line item.
// That over-counts when lines share a tank, but it is the established behavior
// the reception screens were built around.
func CalculateWorkRequirements(items []entity.ReceptionItem) WorkRequirements {
	req := WorkRequirements{
		BySize: make(map[string]SizeBucket),
		ByRoom: make(map[string]RoomBucket),
	}
	for _, it := range items {
		name := it.HebrewName
		if name == "" {
			name = it.ScientificName
		}

		sb := req.BySize[it.Size]
		sb.Count++
		sb.Names = append(sb.Names, name)
		req.BySize[it.Size] = sb

		rb, ok := req.ByRoom[it.TargetRoom]
		if !ok {
			rb.BySize = make(map[string]int)
		}
		rb.Count++
		rb.BySize[it.Size]++
		req.ByRoom[it.TargetRoom] = rb
	}
	req.TotalItems = len(items)
	req.TotalAquariumsNeeded = len(items)
	return req
}
