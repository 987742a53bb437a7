package journalrepo

import (
	"context"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.DeliveryJournal = (*GormJournalRepository)(nil)

// GormJournalRepository implements ports.DeliveryJournal using GORM.
type GormJournalRepository struct {
	db *gorm.DB
}

func NewGormJournalRepository(db *gorm.DB) *GormJournalRepository {
	return &GormJournalRepository{db: db}
}

// Migrate creates or updates the delivery_events table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&EventDTO{})
}

// Append inserts the event. Re-appending an event id is a no-op.
func (r *GormJournalRepository) Append(ctx context.Context, event delivery.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

// AppendAll inserts events in one transaction: either all of them are stored
// or none is.
func (r *GormJournalRepository) AppendAll(ctx context.Context, events []delivery.Event) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, event := range events {
		if err := event.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(event))
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&dtos).Error
	})
}

// History returns the events of one order ordered by time.
func (r *GormJournalRepository) History(ctx context.Context, orderID order.ID) ([]delivery.Event, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EventDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", int64(orderID)).
		Order("at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	events := make([]delivery.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}
