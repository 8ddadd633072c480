package parcel_test

import (
	"fmt"
	"testing"

	"zapship/internal/core/domain/model/parcel"
	"zapship/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryStatus_Parse(t *testing.T) {
	t.Run("accepts_every_known_status", func(t *testing.T) {
		cases := map[string]parcel.DeliveryStatus{
			"not_collected":            parcel.NotCollected,
			"rider_assigned":           parcel.RiderAssigned,
			"in_transit":               parcel.InTransit,
			"delivered":                parcel.Delivered,
			"service_center_delivered": parcel.ServiceCenterDelivered,
		}

		for raw, want := range cases {
			t.Run(raw, func(t *testing.T) {
				got, err := parcel.ParseDeliveryStatus(raw)
				require.NoError(t, err)
				assert.Equal(t, want, got)
				assert.Equal(t, raw, got.String())
			})
		}
	})

	t.Run("accepts_hyphenated_legacy_spelling", func(t *testing.T) {
		got, err := parcel.ParseDeliveryStatus("in-transit")
		require.NoError(t, err)
		assert.Equal(t, parcel.InTransit, got)
	})

	t.Run("rejects_empty_status", func(t *testing.T) {
		_, err := parcel.ParseDeliveryStatus("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := parcel.ParseDeliveryStatus("teleported")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDeliveryStatus_Validate(t *testing.T) {
	t.Run("valid_statuses_pass", func(t *testing.T) {
		for _, status := range []parcel.DeliveryStatus{
			parcel.NotCollected,
			parcel.RiderAssigned,
			parcel.InTransit,
			parcel.Delivered,
			parcel.ServiceCenterDelivered,
		} {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("invalid_values_fail", func(t *testing.T) {
		for _, status := range []parcel.DeliveryStatus{
			parcel.DeliveryStatusUnknown,
			parcel.DeliveryStatus(-1),
			parcel.DeliveryStatus(42),
		} {
			t.Run(fmt.Sprintf("value_%d", int(status)), func(t *testing.T) {
				err := status.Validate()
				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestDeliveryStatus_TimestampSideEffects(t *testing.T) {
	assert.True(t, parcel.InTransit.StampsPickup())
	assert.True(t, parcel.Delivered.StampsDelivery())

	for _, status := range []parcel.DeliveryStatus{
		parcel.NotCollected,
		parcel.RiderAssigned,
		parcel.ServiceCenterDelivered,
	} {
		assert.False(t, status.StampsPickup(), status.String())
		assert.False(t, status.StampsDelivery(), status.String())
	}
}

func TestDeliveryStatus_ValidateCashOut(t *testing.T) {
	require.NoError(t, parcel.Delivered.ValidateCashOut())

	for _, status := range []parcel.DeliveryStatus{
		parcel.NotCollected,
		parcel.RiderAssigned,
		parcel.InTransit,
		parcel.ServiceCenterDelivered,
	} {
		t.Run(status.String(), func(t *testing.T) {
			require.ErrorIs(t, status.ValidateCashOut(), errs.ErrValueIsInvalid)
		})
	}
}

func TestPaymentStatus(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		paid, err := parcel.ParsePaymentStatus("paid")
		require.NoError(t, err)
		assert.Equal(t, parcel.Paid, paid)

		unpaid, err := parcel.ParsePaymentStatus("unpaid")
		require.NoError(t, err)
		assert.Equal(t, parcel.Unpaid, unpaid)

		_, err = parcel.ParsePaymentStatus("maybe")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, parcel.Paid.Validate())
		require.NoError(t, parcel.Unpaid.Validate())
		require.Error(t, parcel.PaymentStatusUnknown.Validate())
	})
}

func TestCashoutStatus(t *testing.T) {
	require.NoError(t, parcel.CashoutPending.Validate())
	require.NoError(t, parcel.CashedOut.Validate())
	require.Error(t, parcel.CashoutStatusUnknown.Validate())

	assert.Equal(t, "pending", parcel.CashoutPending.String())
	assert.Equal(t, "cashed_out", parcel.CashedOut.String())
}
