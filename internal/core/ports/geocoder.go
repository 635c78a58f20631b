package ports

import (
	"context"

	"assistance/internal/core/domain/model/kernel"
)

// Geocoder resolves a street address to geographic coordinates.
// Consumed only at order-creation time.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (kernel.Coordinates, error)
}
