package errs_test

import (
	"errors"
	"testing"

	"zapship/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("parcelId", "b2a1")

		assert.Equal(t, "parcelId", err.ParamName)
		assert.Equal(t, "b2a1", err.ID)
		assert.Equal(t, "object not found: b2a1", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewObjectNotFoundErrorWithCause("parcelId", "b2a1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "param is: parcelId")
		assert.Contains(t, err.Error(), "(cause: connection refused)")
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("riderEmail")

	assert.Equal(t, "value is invalid: riderEmail", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	withCause := errs.NewValueIsInvalidErrorWithCause("riderEmail", errors.New("bad format"))
	assert.Equal(t, "value is invalid: riderEmail (cause: bad format)", withCause.Error())
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("riderName")

	assert.Equal(t, "value is required: riderName", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("deliveryCost", -10, 0, 100000)

	assert.Equal(t, -10, err.Value)
	assert.Contains(t, err.Error(), "-10 is deliveryCost")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	t.Run("sanitizes_newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("label", "a\nb", 0, 1)
		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "a b")
	})
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("CashOutParcel", "rider")

	assert.Contains(t, err.Error(), `CashOutParcel is not permitted for role "rider"`)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestPartialWriteError(t *testing.T) {
	cause := errors.New("ledger insert failed")
	err := errs.NewPartialWriteError("MarkParcelPaid", cause)

	assert.Contains(t, err.Error(), "partial write: MarkParcelPaid")
	assert.Contains(t, err.Error(), "(cause: ledger insert failed)")
	require.ErrorIs(t, err, errs.ErrPartialWrite)
	require.ErrorIs(t, err, cause, "the underlying write error must stay matchable")
}

func TestPartialWriteError_JoinedCausesStayMatchable(t *testing.T) {
	writeErr := errors.New("ledger insert failed")
	rollbackErr := errors.New("rollback failed")

	err := errs.NewPartialWriteError("MarkParcelPaid", errors.Join(writeErr, rollbackErr))

	require.ErrorIs(t, err, errs.ErrPartialWrite)
	require.ErrorIs(t, err, writeErr)
	require.ErrorIs(t, err, rollbackErr)
}

func TestErrorsClassifyWithErrorsIs(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("id", "x"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("v"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsRequiredError("v"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("v", 2, 0, 1), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewForbiddenError("op", "user"), errs.ErrForbidden)
	require.ErrorIs(t, errs.NewPartialWriteError("op", nil), errs.ErrPartialWrite)
}
