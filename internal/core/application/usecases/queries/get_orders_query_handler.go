package queries

import (
	"context"

	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders visible to the actor. The role scope
// is applied in SQL, so an actor can never receive another tenant's rows.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the role-scoped listing.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	policy := services.NewAuthorizationPolicy()
	if err := policy.Authorize(query.Actor(), services.GetOrders); err != nil {
		return nil, err
	}

	baseQuery := `
		SELECT ` + orderColumns + `
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
	`

	var scope string
	args := []any{}
	switch query.Actor().Role() {
	case user.Client:
		scope = "WHERE o.customer_id = ?"
		args = append(args, query.Actor().ID().Bytes())
	case user.Delivery:
		scope = "WHERE o.driver_id = ?"
		args = append(args, query.Actor().ID().Bytes())
	case user.Owner:
		scope = "WHERE r.owner_id = ?"
		args = append(args, query.Actor().ID().Bytes())
	case user.Admin:
		scope = "WHERE TRUE"
	default:
		return nil, errs.NewUnauthorizedError("role not permitted")
	}

	if query.Status() != nil {
		scope += " AND o.status = ?"
		args = append(args, query.Status().String())
	}

	rows, err := scanOrderRows(h.db.WithContext(ctx).Raw(baseQuery+scope+" ORDER BY o.id", args...))
	if err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		response, respErr := toOrderResponse(ctx, h.db, row)
		if respErr != nil {
			return nil, respErr
		}
		orders = append(orders, response)
	}

	return orders, nil
}
