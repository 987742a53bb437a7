package services

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/vehicle"
	"restaurant/internal/pkg/errs"
)

// DefaultVehicleCapacity is the size of the fleet when nothing else is configured.
const DefaultVehicleCapacity = 2

// VehicleState is a read-only view of one vehicle.
type VehicleState struct {
	ID    string
	InUse bool
}

// VehiclePool owns a fixed fleet. Free vehicles are handed out oldest-returned
// first. It is not safe for concurrent use.
type VehiclePool struct {
	fleet []*vehicle.Vehicle
	byID  map[string]*vehicle.Vehicle
	free  []*vehicle.Vehicle
}

// NewVehiclePool builds Moto-1..Moto-capacity, all free.
func NewVehiclePool(capacity int) (*VehiclePool, error) {
	if capacity <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("vehicle capacity", capacity, 1, "unbounded")
	}

	p := &VehiclePool{
		fleet: make([]*vehicle.Vehicle, 0, capacity),
		byID:  make(map[string]*vehicle.Vehicle, capacity),
		free:  make([]*vehicle.Vehicle, 0, capacity),
	}
	for n := 1; n <= capacity; n++ {
		v, err := vehicle.NewVehicle(vehicle.Label(n))
		if err != nil {
			return nil, err
		}
		p.fleet = append(p.fleet, v)
		p.byID[v.ID()] = v
		p.free = append(p.free, v)
	}
	return p, nil
}

// Acquire marks the first free vehicle as in use.
func (p *VehiclePool) Acquire() (*vehicle.Vehicle, bool) {
	if len(p.free) == 0 {
		return nil, false
	}

	v := p.free[0]
	if err := v.Take(); err != nil {
		// A vehicle on the free list must be free.
		return nil, false
	}
	p.free[0] = nil
	p.free = p.free[1:]
	return v, true
}

// Release returns v to the free list. It fails without side effects when v is
// not a unit of this pool or is not currently in use.
func (p *VehiclePool) Release(v *vehicle.Vehicle) error {
	if v == nil || p.byID[v.ID()] != v {
		return errs.NewInvariantIsViolatedErrorWithCause(
			"vehicle pool",
			errors.New("released vehicle does not belong to this pool"),
		)
	}
	if err := v.Return(); err != nil {
		return errs.NewInvariantIsViolatedErrorWithCause(
			"vehicle pool",
			fmt.Errorf("release without acquire: %w", err),
		)
	}

	p.free = append(p.free, v)
	return nil
}

func (p *VehiclePool) Available() int {
	return len(p.free)
}

func (p *VehiclePool) Capacity() int {
	return len(p.fleet)
}

// Snapshot lists the fleet in label order.
func (p *VehiclePool) Snapshot() []VehicleState {
	states := make([]VehicleState, 0, len(p.fleet))
	for _, v := range p.fleet {
		states = append(states, VehicleState{ID: v.ID(), InUse: v.InUse()})
	}
	return states
}
