package queries

import (
	"errors"

	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/guard"
)

var ErrGetFleetStatusQueryIsNotConstructed = errors.New(
	"GetFleetStatusQuery must be created via NewGetFleetStatusQuery constructor",
)

// GetFleetStatusQuery asks for the state of the queue, the vehicles and the
// deliveries in progress. It is used by operators and by the metrics job.
type GetFleetStatusQuery struct {
	guard guard.ConstructorGuard
}

func NewGetFleetStatusQuery() GetFleetStatusQuery {
	return GetFleetStatusQuery{guard: guard.NewConstructorGuard()}
}

func (q GetFleetStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetStatusQueryIsNotConstructed)
}

type GetFleetStatusQueryResponse struct {
	Stats    services.Stats
	Vehicles []services.VehicleState
	Leases   []services.LeaseView
}
