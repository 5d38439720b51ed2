package repository

import "github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"

// ItemFilter narrows item listings. Zero values mean "no filter".
type ItemFilter struct {
	ProductID      string
	WarehouseID    string
	Status         string
	IncludeDeleted bool
	Limit          int
	Offset         int
}

// ItemRepository defines the persistence port for serialized items.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetBySN(sn string) (*entity.Item, error)
	Update(item *entity.Item) error
	SetDeleted(id string, deleted bool) error
	List(filter ItemFilter) ([]*entity.Item, error)
}
