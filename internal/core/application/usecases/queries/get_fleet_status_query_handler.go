package queries

import (
	"context"

	"restaurant/internal/core/ports"
)

// GetFleetStatusQueryHandler gathers the three views from the coordinator.
// Each view is consistent on its own; the three are taken one after another.
type GetFleetStatusQueryHandler struct {
	reader ports.FleetReader
}

func NewGetFleetStatusQueryHandler(reader ports.FleetReader) GetFleetStatusQueryHandler {
	return GetFleetStatusQueryHandler{reader: reader}
}

func (h GetFleetStatusQueryHandler) Handle(
	_ context.Context,
	query GetFleetStatusQuery,
) (GetFleetStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFleetStatusQueryResponse{}, err
	}

	return GetFleetStatusQueryResponse{
		Stats:    h.reader.Stats(),
		Vehicles: h.reader.Fleet(),
		Leases:   h.reader.Leases(),
	}, nil
}
