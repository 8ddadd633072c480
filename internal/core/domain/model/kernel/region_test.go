package kernel_test

import (
	"testing"

	"zapship/internal/core/domain/model/kernel"
	"zapship/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegion_NewRegion(t *testing.T) {
	t.Run("named_region_is_valid", func(t *testing.T) {
		region, err := kernel.NewRegion("Dhaka")

		require.NoError(t, err)
		require.NoError(t, region.Validate())
		assert.Equal(t, "Dhaka", region.String())
	})

	t.Run("empty_name_is_rejected", func(t *testing.T) {
		_, err := kernel.NewRegion("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRegion_IsEqual(t *testing.T) {
	dhaka, err := kernel.NewRegion("Dhaka")
	require.NoError(t, err)
	sylhet, err := kernel.NewRegion("Sylhet")
	require.NoError(t, err)
	dhakaAgain, err := kernel.NewRegion("Dhaka")
	require.NoError(t, err)

	assert.True(t, dhaka.IsEqual(dhakaAgain))
	assert.False(t, dhaka.IsEqual(sylhet))
}

func TestRegion_ZeroValueFailsValidation(t *testing.T) {
	var zero kernel.Region
	require.Error(t, zero.Validate())
}
