// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the repository layer and read the database directly
// with raw SQL, returning plain response structs shaped for the transport.
package queries

import (
	"context"
	"encoding/json"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItemResponse is one order line as returned by the order queries.
type OrderItemResponse struct {
	ID         kernel.UUID
	DishID     kernel.UUID
	Price      int64
	Selections []SelectionResponse
}

// SelectionResponse is a customer's option pick on an order item.
type SelectionResponse struct {
	Option string `json:"option"`
	Choice string `json:"choice,omitempty"`
}

// OrderResponse represents one order as returned by the order queries.
type OrderResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	CustomerID   kernel.UUID
	DriverID     *kernel.UUID
	Status       string
	Total        int64
	Items        []OrderItemResponse
}

type orderRow struct {
	id           uuid.UUID
	restaurantID uuid.UUID
	customerID   uuid.UUID
	driverID     *uuid.UUID
	status       string
	total        int64
	ownerID      uuid.UUID
}

const orderColumns = `
	o.id,
	o.restaurant_id,
	o.customer_id,
	o.driver_id,
	o.status,
	o.total,
	r.owner_id
`

// scanOrderRows drains rows produced by a SELECT over orderColumns.
func scanOrderRows(rows *gorm.DB) ([]orderRow, error) {
	raw, err := rows.Rows()
	if err != nil {
		return nil, err
	}
	defer raw.Close()

	var result []orderRow
	for raw.Next() {
		var row orderRow
		if err = raw.Scan(
			&row.id,
			&row.restaurantID,
			&row.customerID,
			&row.driverID,
			&row.status,
			&row.total,
			&row.ownerID,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err = raw.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// loadItems fetches and decodes the items of one order.
func loadItems(ctx context.Context, db *gorm.DB, orderID uuid.UUID) ([]OrderItemResponse, error) {
	raw, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			dish_id,
			price,
			selections
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer raw.Close()

	items := make([]OrderItemResponse, 0)
	for raw.Next() {
		var id, dishID uuid.UUID
		var price int64
		var selectionsJSON []byte

		if err = raw.Scan(&id, &dishID, &price, &selectionsJSON); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		itemDishID, idErr := kernel.UUIDFromBytes(dishID[:])
		if idErr != nil {
			return nil, idErr
		}

		var selections []SelectionResponse
		if len(selectionsJSON) > 0 {
			if err = json.Unmarshal(selectionsJSON, &selections); err != nil {
				return nil, err
			}
		}

		items = append(items, OrderItemResponse{
			ID:         itemID,
			DishID:     itemDishID,
			Price:      price,
			Selections: selections,
		})
	}
	if err = raw.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// toOrderResponse assembles a full response for one scanned order row.
func toOrderResponse(ctx context.Context, db *gorm.DB, row orderRow) (OrderResponse, error) {
	id, err := kernel.UUIDFromBytes(row.id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	restaurantID, err := kernel.UUIDFromBytes(row.restaurantID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	customerID, err := kernel.UUIDFromBytes(row.customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	var driverID *kernel.UUID
	if row.driverID != nil {
		converted, idErr := kernel.UUIDFromBytes(row.driverID[:])
		if idErr != nil {
			return OrderResponse{}, idErr
		}
		driverID = &converted
	}

	if _, err = order.StatusFromString(row.status); err != nil {
		return OrderResponse{}, err
	}

	items, err := loadItems(ctx, db, row.id)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:           id,
		RestaurantID: restaurantID,
		CustomerID:   customerID,
		DriverID:     driverID,
		Status:       row.status,
		Total:        row.total,
		Items:        items,
	}, nil
}
