package amenity

import (
	"time"

	"github.com/google/uuid"
)

// Amenity is an admin-managed feature that listings can advertise.
type Amenity struct {
	id        uuid.UUID
	name      Name
	createdAt time.Time
	updatedAt time.Time
}

func NewAmenity(name string, now time.Time) (*Amenity, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Amenity{
		id:        uuid.New(),
		name:      n,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAmenity(id uuid.UUID, name Name, createdAt, updatedAt time.Time) *Amenity {
	return &Amenity{id: id, name: name, createdAt: createdAt, updatedAt: updatedAt}
}

func (a *Amenity) Rename(name string, now time.Time) error {
	n, err := NewName(name)
	if err != nil {
		return err
	}
	a.name = n
	a.updatedAt = now
	return nil
}

func (a *Amenity) ID() uuid.UUID        { return a.id }
func (a *Amenity) Name() Name           { return a.name }
func (a *Amenity) CreatedAt() time.Time { return a.createdAt }
func (a *Amenity) UpdatedAt() time.Time { return a.updatedAt }
