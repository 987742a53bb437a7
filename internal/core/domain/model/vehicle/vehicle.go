package vehicle

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// LabelPrefix is shared by all vehicle ids.
const LabelPrefix = "Moto-"

var (
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrIDIsRequired is returned when attempting to create a vehicle without an id.
	ErrIDIsRequired = errs.NewValueIsRequiredError("vehicle id")
)

// Label returns the id of the n-th vehicle of a fleet, counting from 1.
func Label(n int) string {
	return fmt.Sprintf("%s%d", LabelPrefix, n)
}

// Vehicle is one unit of the fleet.
//
// A Vehicle is handed out by pointer and must be handed back as the same
// pointer; two vehicles with equal ids from different fleets are different
// vehicles. Vehicle is not safe for concurrent use.
type Vehicle struct {
	id    string
	inUse bool
	guard guard.ConstructorGuard
}

// NewVehicle creates a free vehicle.
func NewVehicle(id string) (*Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrIDIsRequired
	}

	return &Vehicle{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Vehicle instance was properly constructed through NewVehicle.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

func (v *Vehicle) ID() string {
	return v.id
}

func (v *Vehicle) InUse() bool {
	return v.inUse
}

// Take marks a free vehicle as in use.
func (v *Vehicle) Take() error {
	if v.inUse {
		return errs.NewPreconditionIsNotMetErrorWithCause(
			"vehicle "+v.id,
			errors.New("vehicle is already in use"),
		)
	}
	v.inUse = true
	return nil
}

// Return marks an in-use vehicle as free again.
func (v *Vehicle) Return() error {
	if !v.inUse {
		return errs.NewPreconditionIsNotMetErrorWithCause(
			"vehicle "+v.id,
			errors.New("vehicle is not in use"),
		)
	}
	v.inUse = false
	return nil
}
