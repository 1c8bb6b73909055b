package item

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("item name cannot be blank")
	ErrEmptyDescription = errors.New("item description cannot be blank")
)

// Item is a rentable thing owned by one user. The booking engine reads it for
// availability and ownership; last/next booking annotations are computed per
// request, never stored here.
type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	description string
	available   bool
}

func NewItem(ownerID uuid.UUID, name, description string, available bool) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	return &Item{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
	}, nil
}

func ReconstructItem(id, ownerID uuid.UUID, name, description string, available bool) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
	}
}

// Patch applies a partial update; nil fields keep their value. Present but
// blank name or description is rejected.
func (i *Item) Patch(name, description *string, available *bool) error {
	if name != nil && strings.TrimSpace(*name) == "" {
		return ErrEmptyName
	}
	if description != nil && strings.TrimSpace(*description) == "" {
		return ErrEmptyDescription
	}

	if name != nil {
		i.name = *name
	}
	if description != nil {
		i.description = *description
	}
	if available != nil {
		i.available = *available
	}
	return nil
}

func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return i.ownerID == userID
}

func (i *Item) ID() uuid.UUID      { return i.id }
func (i *Item) OwnerID() uuid.UUID { return i.ownerID }
func (i *Item) Name() string       { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Available() bool    { return i.available }
