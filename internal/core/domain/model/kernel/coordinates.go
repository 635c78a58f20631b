package kernel

import (
	"errors"
	"fmt"

	"assistance/internal/pkg/errs"
	"assistance/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin float64 = -90
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax float64 = 90
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin float64 = -180
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax float64 = 180
)

// ErrCoordinatesAreNotConstructed is returned when attempting to use an improperly
// initialized Coordinates value. Coordinates must be created via NewCoordinates.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates constructor")

// Coordinates represents a geographic point with validated latitude and longitude.
// It is an immutable value object: the zero value is invalid and fails validation,
// so instances must be obtained through NewCoordinates.
//
// Example:
//
//	incident, err := kernel.NewCoordinates(10.0, 10.0)
//	if err != nil {
//	    // latitude or longitude out of range
//	}
//	fmt.Println(incident) // Output: (10.000000,10.000000)
type Coordinates struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinates creates a Coordinates value with the specified latitude and longitude.
// Latitude must lie within [LatitudeMin, LatitudeMax] and longitude within
// [LongitudeMin, LongitudeMax]; out-of-range values produce a validation error
// naming the offending component.
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	coords := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		coords.setLatitude(latitude),
		coords.setLongitude(longitude),
	); err != nil {
		return Coordinates{}, err
	}

	return coords, nil
}

// Validate checks that the Coordinates value was properly constructed.
// Returns ErrCoordinatesAreNotConstructed for zero-value instances.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

// Latitude returns the latitude component in degrees.
func (c Coordinates) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude component in degrees.
func (c Coordinates) Longitude() float64 {
	return c.longitude
}

// IsEqual compares two coordinate pairs component-wise.
func (c Coordinates) IsEqual(other Coordinates) bool {
	return c.latitude == other.latitude && c.longitude == other.longitude
}

// String returns the coordinate pair formatted as "(lat,lng)".
func (c Coordinates) String() string {
	return fmt.Sprintf("(%f,%f)", c.latitude, c.longitude)
}

func (c *Coordinates) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	c.latitude = latitude
	return nil
}

func (c *Coordinates) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	c.longitude = longitude
	return nil
}
