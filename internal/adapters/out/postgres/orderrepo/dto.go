// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database rows.
package orderrepo

import (
	"encoding/json"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status column is indexed for the driver-pool queries and driver_id for
// per-driver listings.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;index"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index"`
	DriverID     *uuid.UUID `gorm:"type:uuid;index"`
	Total        int64
	Status       string     `gorm:"index"`
	Items        []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. Selections are stored as a JSON array
// of {option, choice} objects, the same shape the read side decodes.
type ItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	DishID     uuid.UUID `gorm:"type:uuid"`
	Price      int64
	Selections []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for order item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

type selectionDTO struct {
	Option string `json:"option"`
	Choice string `json:"choice,omitempty"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		dto, err := itemFromDomain(aggregate.ID(), item)
		if err != nil {
			return OrderDTO{}, err
		}
		items = append(items, dto)
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		DriverID:     driverID,
		Total:        aggregate.Total().Amount(),
		Status:       aggregate.Status().String(),
		Items:        items,
	}, nil
}

func itemFromDomain(orderID kernel.UUID, item *order.Item) (ItemDTO, error) {
	selections := make([]selectionDTO, 0, len(item.Selections()))
	for _, s := range item.Selections() {
		selections = append(selections, selectionDTO{
			Option: s.OptionName(),
			Choice: s.ChoiceName(),
		})
	}

	selectionsJSON, err := json.Marshal(selections)
	if err != nil {
		return ItemDTO{}, err
	}

	return ItemDTO{
		ID:         item.ID().Bytes(),
		OrderID:    orderID.Bytes(),
		DishID:     item.DishID().Bytes(),
		Price:      item.Price().Amount(),
		Selections: selectionsJSON,
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, validating the stored status and identifiers on the way.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		converted, idErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if idErr != nil {
			return nil, idErr
		}
		driverID = &converted
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewPrice(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, restaurantID, customerID, items, total, status, driverID)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	dishID, err := kernel.UUIDFromBytes(dto.DishID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	var selectionDTOs []selectionDTO
	if len(dto.Selections) > 0 {
		if err = json.Unmarshal(dto.Selections, &selectionDTOs); err != nil {
			return nil, err
		}
	}

	selections := make([]order.Selection, 0, len(selectionDTOs))
	for _, s := range selectionDTOs {
		selection, selErr := order.NewSelection(s.Option, s.Choice)
		if selErr != nil {
			return nil, selErr
		}
		selections = append(selections, selection)
	}

	return order.NewItem(id, dishID, price, selections)
}
