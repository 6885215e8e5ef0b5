package queries

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCookedUnassignedOrdersQueryHandler retrieves cooked orders without a
// driver. Used by the driver notification job to re-announce orders the
// pool has not picked up.
type GetCookedUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCookedUnassignedOrdersQueryHandler creates a handler for the
// cooked-unassigned listing. Requires a GORM database connection for query
// execution.
func NewGetCookedUnassignedOrdersQueryHandler(db *gorm.DB) GetCookedUnassignedOrdersQueryHandler {
	return GetCookedUnassignedOrdersQueryHandler{db: db}
}

// Handle executes the listing, oldest order first.
func (h GetCookedUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCookedUnassignedOrdersQuery,
) ([]CookedOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := scanOrderRows(h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.status = ? AND o.driver_id IS NULL
		ORDER BY o.id
	`, order.Cooked.String()))
	if err != nil {
		return nil, err
	}

	orders := make([]CookedOrderResponse, 0, len(rows))
	for _, row := range rows {
		response, respErr := toOrderResponse(ctx, h.db, row)
		if respErr != nil {
			return nil, respErr
		}

		ownerID, idErr := kernel.UUIDFromBytes(row.ownerID[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, CookedOrderResponse{
			Order:             response,
			RestaurantOwnerID: ownerID,
		})
	}

	return orders, nil
}
