package commands_test

import (
	"testing"

	"zapship/internal/core/application/usecases/commands"
	"zapship/internal/core/domain/model/parcel"
	"zapship/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateDeliveryStatusCommand(t *testing.T) {
	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := commands.NewUpdateDeliveryStatusCommand(
			riderCaller(t), newParcelFixture(t, parcel.NotCollected).ID(), parcel.DeliveryStatusUnknown,
		)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var cmd commands.UpdateDeliveryStatusCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateDeliveryStatusCommandIsNotConstructed)
	})
}

func TestUpdateDeliveryStatusCommandHandler_Handle_StampsPickup(t *testing.T) {
	ctx := t.Context()
	target := newParcelFixture(t, parcel.RiderAssigned)
	cmd, err := commands.NewUpdateDeliveryStatusCommand(riderCaller(t), target.ID(), parcel.InTransit)
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		repo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, parcel.InTransit, target.DeliveryStatus())
	assert.NotNil(t, target.PickedUpAt())
	assert.Nil(t, target.DeliveredAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_AdminMayDrive(t *testing.T) {
	ctx := t.Context()
	target := newParcelFixture(t, parcel.InTransit)
	cmd, err := commands.NewUpdateDeliveryStatusCommand(adminCaller(t), target.ID(), parcel.Delivered)
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		repo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.NotNil(t, target.DeliveredAt())
}

func TestUpdateDeliveryStatusCommandHandler_Handle_ForbiddenForPlainUser(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		plainCaller(t), newParcelFixture(t, parcel.NotCollected).ID(), parcel.InTransit,
	)
	require.NoError(t, err)

	factory := new(MockParcelUoWFactory)
	h := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}
