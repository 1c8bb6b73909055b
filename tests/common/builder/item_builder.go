//go:build unit || e2e

package builder

import (
	domitem "shareit/internal/domain/item"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		OwnerID:     uuid.New(),
		Name:        "Cordless Drill",
		Description: "18V drill with two batteries",
		Available:   true,
	}
}

func (i *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(i)
	return i
}

// Build methods
func (i *ItemBuilder) BuildDomain() (*domitem.Item, error) {
	return domitem.NewItem(i.OwnerID, i.Name, i.Description, i.Available)
}

func (i *ItemBuilder) BuildView() *usecase.ItemView {
	return &usecase.ItemView{
		ID:          uuid.New(),
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
	}
}

func (i *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	available := i.Available
	return reqdto.CreateItemRequest{
		Name:        i.Name,
		Description: i.Description,
		Available:   &available,
	}
}
