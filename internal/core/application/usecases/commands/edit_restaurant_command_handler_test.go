package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEditRestaurantCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := mustActor(t, user.Owner)
	rest, _ := restaurantWithDish(t, owner.ID())

	cmd, err := commands.NewEditRestaurantCommand(owner, rest.ID(), "New Name", "New Address")
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, rest.ID()).Return(rest, nil).Once(),
		restaurantRepo.On("Update", mock.Anything, rest).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEditRestaurantCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, "New Name", rest.Name())
	require.Equal(t, "New Address", rest.Address())
	restaurantRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestEditRestaurantCommandHandler_Handle_NotOwnerDenied(t *testing.T) {
	ctx := t.Context()
	intruder := mustActor(t, user.Owner)
	rest, _ := restaurantWithDish(t, kernel.NewUUID())

	cmd, err := commands.NewEditRestaurantCommand(intruder, rest.ID(), "Hijacked", "Nowhere")
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, rest.ID()).Return(rest, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEditRestaurantCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	require.Equal(t, "Noodle House", rest.Name())
	restaurantRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestEditRestaurantCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	owner := mustActor(t, user.Owner)
	missingID := kernel.NewUUID()

	cmd, err := commands.NewEditRestaurantCommand(owner, missingID, "New Name", "New Address")
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, missingID).
			Return(nil, errs.NewObjectNotFoundError("restaurantID", missingID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEditRestaurantCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
