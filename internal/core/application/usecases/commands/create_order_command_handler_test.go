package commands_test

import (
	"errors"
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customer := mustActor(t, user.Client)
	ownerID := kernel.NewUUID()
	rest, dish := restaurantWithDish(t, ownerID)

	request, err := services.NewItemRequest(dish.ID(), nil)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(customer, kernel.NewUUID(), rest.ID(), []services.ItemRequest{request})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, rest.ID()).Return(rest, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ports.TopicPendingOrders, mock.MatchedBy(func(e ports.OrderEvent) bool {
		return e.RestaurantOwnerID.IsEqual(ownerID) && e.Order.Total().Amount() == 1000
	})).Once()

	h := commands.NewCreateOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	restaurantRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DishNotFound(t *testing.T) {
	ctx := t.Context()
	customer := mustActor(t, user.Client)
	rest, _ := restaurantWithDish(t, kernel.NewUUID())

	request, err := services.NewItemRequest(kernel.NewUUID(), nil)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(customer, kernel.NewUUID(), rest.ID(), []services.ItemRequest{request})
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, rest.ID()).Return(rest, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_NonClientDenied(t *testing.T) {
	ctx := t.Context()
	owner := mustActor(t, user.Owner)
	rest, dish := restaurantWithDish(t, owner.ID())

	request, err := services.NewItemRequest(dish.ID(), nil)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(owner, kernel.NewUUID(), rest.ID(), []services.ItemRequest{request})
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	publisher := new(MockEventPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	publisher := new(MockEventPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	customer := mustActor(t, user.Client)
	rest, dish := restaurantWithDish(t, kernel.NewUUID())

	request, err := services.NewItemRequest(dish.ID(), nil)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(customer, kernel.NewUUID(), rest.ID(), []services.ItemRequest{request})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, rest.ID()).Return(rest, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
