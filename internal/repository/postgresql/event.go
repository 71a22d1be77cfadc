package postgresql

import (
	"context"

	"github.com/bidhuripriyanshu/transport-scheduler/internal/db"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/repository"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/storage"
)

type EventRepo struct {
	db db.DB
}

func NewEventRepo(db db.DB) storage.EventRepository {
	return &EventRepo{db: db}
}

const eventInsert = `
        INSERT INTO events (
            kind, shipment_id, status, message, ride_no, confirmation_id, name, action, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `

func (r *EventRepo) Create(ctx context.Context, event *repository.Event) error {
	_, err := r.db.Exec(ctx, eventInsert,
		event.Kind, event.ShipmentID, event.Status, event.Message, event.RideNo,
		event.ConfirmationID, event.Name, event.Action, event.CreatedAt)
	return err
}

func (r *EventRepo) CreateTx(ctx context.Context, tx db.Tx, event *repository.Event) error {
	_, err := tx.Exec(ctx, eventInsert,
		event.Kind, event.ShipmentID, event.Status, event.Message, event.RideNo,
		event.ConfirmationID, event.Name, event.Action, event.CreatedAt)
	return err
}

// GetNotifications lists status notifications newest first.
func (r *EventRepo) GetNotifications(ctx context.Context) ([]*repository.Event, error) {
	var events []*repository.Event
	err := r.db.Select(ctx, &events, `
        SELECT * FROM events
        WHERE kind = $1
        ORDER BY created_at DESC
    `, repository.EventKindStatusNotification)
	return events, err
}

func (r *EventRepo) GetConfirmations(ctx context.Context) ([]*repository.Event, error) {
	var events []*repository.Event
	err := r.db.Select(ctx, &events, `
        SELECT * FROM events
        WHERE kind = $1
        ORDER BY created_at ASC
    `, repository.EventKindConfirmation)
	return events, err
}
