package queries

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order, enforcing the participation
// check before returning anything: only the customer, the assigned driver,
// the restaurant's owner, or an admin may see an order.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the read. Returns an ObjectNotFoundError when the order
// does not exist and an UnauthorizedError when the actor is not a
// participant.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := scanOrderRows(h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()))
	if err != nil {
		return OrderResponse{}, err
	}
	if len(rows) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	row := rows[0]

	customerID, err := kernel.UUIDFromBytes(row.customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(row.ownerID[:])
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

	policy := services.NewAuthorizationPolicy()
	if err = policy.CanSeeOrder(query.Actor(), customerID, driverID, ownerID); err != nil {
		return OrderResponse{}, err
	}

	return toOrderResponse(ctx, h.db, row)
}
