package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantQueryHandler reads a restaurant and its menu from the
// database. Options are stored as JSON and decoded into their closed
// flat-surcharge or choice-list form.
type GetRestaurantQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantQueryHandler creates a handler for restaurant reads.
// Requires a GORM database connection for query execution.
func NewGetRestaurantQueryHandler(db *gorm.DB) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{db: db}
}

// Handle executes the read. Returns an ObjectNotFoundError when the
// restaurant does not exist.
func (h GetRestaurantQueryHandler) Handle(ctx context.Context, query GetRestaurantQuery) (GetRestaurantQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			name,
			address
		FROM restaurants
		WHERE id = ?
	`, query.RestaurantID().Bytes()).Row()

	var id, rawOwnerID uuid.UUID
	var name, address string
	if err := row.Scan(&id, &rawOwnerID, &name, &address); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetRestaurantQueryResponse{}, errs.NewObjectNotFoundError("restaurantID", query.RestaurantID())
		}
		return GetRestaurantQueryResponse{}, err
	}

	restaurantID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetRestaurantQueryResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(rawOwnerID[:])
	if err != nil {
		return GetRestaurantQueryResponse{}, err
	}

	menu, err := h.loadMenu(ctx, id)
	if err != nil {
		return GetRestaurantQueryResponse{}, err
	}

	return GetRestaurantQueryResponse{
		ID:      restaurantID,
		OwnerID: ownerID,
		Name:    name,
		Address: address,
		Menu:    menu,
	}, nil
}

func (h *GetRestaurantQueryHandler) loadMenu(ctx context.Context, restaurantID uuid.UUID) ([]DishResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			options
		FROM dishes
		WHERE restaurant_id = ?
		ORDER BY name
	`, restaurantID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menu := make([]DishResponse, 0)
	for rows.Next() {
		var id uuid.UUID
		var name, description string
		var price int64
		var optionsJSON []byte

		if err = rows.Scan(&id, &name, &description, &price, &optionsJSON); err != nil {
			return nil, err
		}

		dishID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		var options []OptionResponse
		if len(optionsJSON) > 0 {
			if err = json.Unmarshal(optionsJSON, &options); err != nil {
				return nil, err
			}
		}

		menu = append(menu, DishResponse{
			ID:          dishID,
			Name:        name,
			Description: description,
			Price:       price,
			Options:     options,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return menu, nil
}
