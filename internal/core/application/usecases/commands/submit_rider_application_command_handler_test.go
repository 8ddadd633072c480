package commands_test

import (
	"testing"

	"zapship/internal/core/application/usecases/commands"
	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/core/domain/model/rider"
	"zapship/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitRiderApplicationCommand(t *testing.T) {
	dhaka := mustRegion(t, "Dhaka")

	t.Run("phone_is_optional", func(t *testing.T) {
		cmd, err := commands.NewSubmitRiderApplicationCommand(
			kernel.NewUUID(), "Rahim", "rahim@example.com", "", "Mirpur", dhaka,
		)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("missing_district", func(t *testing.T) {
		_, err := commands.NewSubmitRiderApplicationCommand(
			kernel.NewUUID(), "Rahim", "rahim@example.com", "+880170000000", "", dhaka,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing_name_and_email_join", func(t *testing.T) {
		_, err := commands.NewSubmitRiderApplicationCommand(
			kernel.NewUUID(), "", "", "", "Mirpur", dhaka,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSubmitRiderApplicationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitRiderApplicationCommand(
		kernel.NewUUID(), "Rahim", "rahim@example.com", "+880170000000", "Mirpur", mustRegion(t, "Dhaka"),
	)
	require.NoError(t, err)

	repo := new(MockRiderApplicationRepository)
	uow := new(MockApplicationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderApplicationRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(a *rider.RiderApplication) bool {
			return a.ApplicationStatus() == rider.ApplicationPending &&
				a.WorkStatus() == rider.WorkAvailable &&
				a.Email() == "rahim@example.com"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockApplicationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitRiderApplicationCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
