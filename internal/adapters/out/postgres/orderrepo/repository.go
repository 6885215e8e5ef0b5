package orderrepo

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// The guarded writes (UpdateStatus, AssignDriver) are single UPDATE
// statements with the expected state in the WHERE clause, so concurrent
// requests racing on the same order resolve at the database rather than
// in application memory.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order with its items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order's mutable columns. Items are immutable
// once placed and are never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "driver_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an order with its items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus moves the stored status from one value to another in a single
// guarded write. When the stored status is no longer the expected one the
// UPDATE matches no row and an InvalidTransitionError is returned.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id kernel.UUID, from, to order.Status) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), from.String()).
		Update("status", to.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewInvalidTransitionError(from.String(), to.String(), "")
	}

	return nil
}

// AssignDriver records the driver on the order only if no driver is
// currently assigned. The loser of a concurrent take-order race matches no
// row and receives an AlreadyAssignedError.
func (r *GormOrderRepository) AssignDriver(ctx context.Context, id, driverID kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := driverID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND driver_id IS NULL", id.Bytes()).
		Update("driver_id", driverID.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewAlreadyAssignedError(id.String())
	}

	return nil
}

// GetAllForCustomer retrieves the orders a customer has placed, optionally
// narrowed to one status.
func (r *GormOrderRepository) GetAllForCustomer(
	ctx context.Context, customerID kernel.UUID, status *order.Status,
) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Preload("Items").Where("customer_id = ?", customerID.Bytes())
	return r.findAll(withStatus(query, status))
}

// GetAllForDriver retrieves the orders assigned to a driver, optionally
// narrowed to one status.
func (r *GormOrderRepository) GetAllForDriver(
	ctx context.Context, driverID kernel.UUID, status *order.Status,
) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Preload("Items").Where("driver_id = ?", driverID.Bytes())
	return r.findAll(withStatus(query, status))
}

// GetAllForOwner retrieves the orders placed against any restaurant the
// owner owns, optionally narrowed to one status.
func (r *GormOrderRepository) GetAllForOwner(
	ctx context.Context, ownerID kernel.UUID, status *order.Status,
) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Preload("Items").
		Joins("JOIN restaurants ON restaurants.id = orders.restaurant_id").
		Where("restaurants.owner_id = ?", ownerID.Bytes())
	return r.findAll(withStatus(query, status))
}

// GetAllCookedUnassigned retrieves cooked orders still waiting for a driver.
func (r *GormOrderRepository) GetAllCookedUnassigned(ctx context.Context) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Preload("Items").
		Where("orders.status = ? AND orders.driver_id IS NULL", order.Cooked.String())
	return r.findAll(query)
}

func withStatus(query *gorm.DB, status *order.Status) *gorm.DB {
	if status == nil {
		return query
	}
	return query.Where("orders.status = ?", status.String())
}

func (r *GormOrderRepository) findAll(query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Order("orders.id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
