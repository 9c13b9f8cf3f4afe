package amenity

import "github.com/google/uuid"

const MaxPerListing = 50

// NormalizeSelection drops duplicates while keeping the first-seen order.
func NormalizeSelection(ids []uuid.UUID) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return nil, ErrUnknownAmenity
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) > MaxPerListing {
		return nil, ErrTooManyAmenities
	}
	return out, nil
}
