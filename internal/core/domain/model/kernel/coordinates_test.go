package kernel_test

import (
	"testing"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	t.Run("valid_coordinates", func(t *testing.T) {
		coords, err := kernel.NewCoordinates(10.0, 10.0)

		require.NoError(t, err)
		assert.InDelta(t, 10.0, coords.Latitude(), 0)
		assert.InDelta(t, 10.0, coords.Longitude(), 0)
		require.NoError(t, coords.Validate())
	})

	t.Run("boundary_values", func(t *testing.T) {
		for _, tc := range []struct {
			name     string
			lat, lng float64
		}{
			{"min_latitude", -90, 0},
			{"max_latitude", 90, 0},
			{"min_longitude", 0, -180},
			{"max_longitude", 0, 180},
		} {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewCoordinates(tc.lat, tc.lng)
				require.NoError(t, err)
			})
		}
	})

	t.Run("latitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewCoordinates(90.5, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("longitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewCoordinates(0, -180.1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "longitude")
	})

	t.Run("both_out_of_range_joins_errors", func(t *testing.T) {
		_, err := kernel.NewCoordinates(-91, 181)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestCoordinates_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var coords kernel.Coordinates

		err := coords.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrCoordinatesAreNotConstructed, err)
	})
}

func TestCoordinates_IsEqual(t *testing.T) {
	a, err := kernel.NewCoordinates(10.0, 11.0)
	require.NoError(t, err)
	b, err := kernel.NewCoordinates(10.0, 11.0)
	require.NoError(t, err)
	c, err := kernel.NewCoordinates(10.0, 12.0)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
