package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/bidhuripriyanshu/transport-scheduler/internal/db"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/repository"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/storage"
)

type ShipmentRepo struct {
	db db.DB
}

func NewShipmentRepo(db db.DB) storage.ShipmentRepository {
	return &ShipmentRepo{db: db}
}

const shipmentInsert = `
        INSERT INTO shipments (
            id, user_id, location, pickup, destination, pickup_coords, destination_coords,
            date_time, goods_description, vehicle_type, photo, route_distance, route_cost,
            status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
    `

func shipmentInsertArgs(s *repository.Shipment) []interface{} {
	return []interface{}{
		s.ID, s.UserID, s.Location, s.Pickup, s.Destination, s.PickupCoords, s.DestinationCoords,
		s.DateTime, s.GoodsDescription, s.VehicleType, s.Photo, s.RouteDistance, s.RouteCost,
		s.Status, s.CreatedAt, s.UpdatedAt,
	}
}

func (r *ShipmentRepo) Create(ctx context.Context, shipment *repository.Shipment) error {
	_, err := r.db.Exec(ctx, shipmentInsert, shipmentInsertArgs(shipment)...)
	return err
}

func (r *ShipmentRepo) CreateTx(ctx context.Context, tx db.Tx, shipment *repository.Shipment) error {
	_, err := tx.Exec(ctx, shipmentInsert, shipmentInsertArgs(shipment)...)
	return err
}

func (r *ShipmentRepo) GetByID(ctx context.Context, id string) (*repository.Shipment, error) {
	var shipment repository.Shipment
	err := r.db.Get(ctx, &shipment, "SELECT * FROM shipments WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &shipment, nil
}

func (r *ShipmentRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Shipment, error) {
	var shipment repository.Shipment
	err := tx.Get(ctx, &shipment, "SELECT * FROM shipments WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &shipment, nil
}

const shipmentUpdate = `
        UPDATE shipments
        SET
            user_id = $1,
            location = $2,
            pickup = $3,
            destination = $4,
            pickup_coords = $5,
            destination_coords = $6,
            date_time = $7,
            goods_description = $8,
            vehicle_type = $9,
            photo = $10,
            route_distance = $11,
            route_cost = $12,
            status = $13,
            updated_at = $14
        WHERE id = $15
    `

func shipmentUpdateArgs(s *repository.Shipment) []interface{} {
	return []interface{}{
		s.UserID, s.Location, s.Pickup, s.Destination, s.PickupCoords, s.DestinationCoords,
		s.DateTime, s.GoodsDescription, s.VehicleType, s.Photo, s.RouteDistance, s.RouteCost,
		s.Status, s.UpdatedAt, s.ID,
	}
}

func (r *ShipmentRepo) Update(ctx context.Context, shipment *repository.Shipment) error {
	_, err := r.db.Exec(ctx, shipmentUpdate, shipmentUpdateArgs(shipment)...)
	return err
}

func (r *ShipmentRepo) UpdateTx(ctx context.Context, tx db.Tx, shipment *repository.Shipment) error {
	_, err := tx.Exec(ctx, shipmentUpdate, shipmentUpdateArgs(shipment)...)
	return err
}

// GetAll lists every shipment in insertion order, for the transporter view.
func (r *ShipmentRepo) GetAll(ctx context.Context) ([]*repository.Shipment, error) {
	var shipments []*repository.Shipment
	err := r.db.Select(ctx, &shipments, "SELECT * FROM shipments ORDER BY created_at ASC")
	return shipments, err
}

func (r *ShipmentRepo) GetByUserID(ctx context.Context, userID string) ([]*repository.Shipment, error) {
	var shipments []*repository.Shipment
	err := r.db.Select(ctx, &shipments, `
        SELECT * FROM shipments
        WHERE user_id = $1
        ORDER BY created_at ASC
    `, userID)
	return shipments, err
}

func (r *ShipmentRepo) GetAllActive(ctx context.Context) ([]*repository.Shipment, error) {
	var shipments []*repository.Shipment
	err := r.db.Select(ctx, &shipments, `
        SELECT * FROM shipments
        WHERE status NOT IN ('delivered', 'rejected')
        ORDER BY created_at ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to get active shipments: %w", err)
	}
	return shipments, nil
}
