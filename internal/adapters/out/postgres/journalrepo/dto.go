// Package journalrepo persists the delivery journal in PostgreSQL through GORM.
// It maps delivery.Event value objects to rows of the delivery_events table
// and back.
package journalrepo

import (
	"time"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// EventDTO is one row of delivery_events. Rows are insert-only.
type EventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   int64     `gorm:"not null;index:idx_delivery_events_order_at,priority:1"`
	VehicleID string    `gorm:"size:32"`
	Kind      string    `gorm:"size:16;not null"`
	Reason    string    `gorm:"size:256"`
	At        time.Time `gorm:"not null;index:idx_delivery_events_order_at,priority:2"`
}

// TableName overrides GORM's default pluralisation.
func (EventDTO) TableName() string {
	return "delivery_events"
}

func fromDomain(event delivery.Event) EventDTO {
	return EventDTO{
		ID:        event.ID().Bytes(),
		OrderID:   int64(event.OrderID()),
		VehicleID: event.VehicleID(),
		Kind:      event.Kind().String(),
		Reason:    event.Reason(),
		At:        event.At().UTC(),
	}
}

func toDomain(dto EventDTO) (delivery.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return delivery.Event{}, err
	}

	return delivery.RestoreEvent(
		id,
		order.ID(dto.OrderID),
		dto.VehicleID,
		delivery.EventKind(dto.Kind),
		dto.Reason,
		dto.At,
	)
}
