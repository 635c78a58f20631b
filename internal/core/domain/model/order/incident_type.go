package order

import (
	"fmt"

	"assistance/internal/pkg/errs"
)

// IncidentType identifies the category of roadside incident an order was
// opened for. The recognized categories form the fixed service catalog;
// both the constructors and the HTTP layer validate against this one set.
type IncidentType int

const (
	// IncidentTypeUnknown represents an invalid or undefined incident type.
	IncidentTypeUnknown IncidentType = iota

	// IncidentTypeAccident covers collision and crash assistance.
	IncidentTypeAccident

	// IncidentTypeBrakeFailure covers brake system failures.
	IncidentTypeBrakeFailure

	// IncidentTypeBatteryFailure covers dead or faulty batteries.
	IncidentTypeBatteryFailure

	// IncidentTypeEngineFailure covers engine breakdowns.
	IncidentTypeEngineFailure

	// IncidentTypeFlatTire covers punctured or flat tires.
	IncidentTypeFlatTire

	// IncidentTypeOutOfFuel covers fuel depletion on the road.
	IncidentTypeOutOfFuel

	// IncidentTypeStuckVehicle covers vehicles stuck off-road or in obstacles.
	IncidentTypeStuckVehicle
)

// Catalog literals match the service names used by the operators, so they are
// stored and transported verbatim.
func getIncidentTypeStrings() map[IncidentType]string {
	return map[IncidentType]string{
		IncidentTypeAccident:       "Accidente",
		IncidentTypeBrakeFailure:   "Fallo de Frenos",
		IncidentTypeBatteryFailure: "Fallo de Bateria",
		IncidentTypeEngineFailure:  "Fallo de Motor",
		IncidentTypeFlatTire:       "Neumatico Pinchado",
		IncidentTypeOutOfFuel:      "Falta de Combustible",
		IncidentTypeStuckVehicle:   "Vehiculo Atascado",
	}
}

// IncidentTypeFromString resolves a catalog literal to its IncidentType.
// Unrecognized names produce a validation error naming the offending value.
func IncidentTypeFromString(s string) (IncidentType, error) {
	for incidentType, name := range getIncidentTypeStrings() {
		if name == s {
			return incidentType, nil
		}
	}
	return IncidentTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"incidentType",
		fmt.Errorf("%q is not a recognized incident type", s),
	)
}

// Validate checks that the IncidentType belongs to the catalog.
func (t IncidentType) Validate() error {
	if _, ok := getIncidentTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"incidentType",
			fmt.Errorf("%d is not a valid incident type", t),
		)
	}
	return nil
}

// String returns the catalog literal, or "Unknown" for invalid values.
func (t IncidentType) String() string {
	if str, ok := getIncidentTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
