package repository

import (
	"errors"
	"time"
)

var (
	ErrObjectNotFound     = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("account already exists")
)

type Shipment struct {
	ID                string    `db:"id"`
	UserID            string    `db:"user_id"`
	Location          string    `db:"location"`
	Pickup            string    `db:"pickup"`
	Destination       string    `db:"destination"`
	PickupCoords      string    `db:"pickup_coords"`
	DestinationCoords string    `db:"destination_coords"`
	DateTime          time.Time `db:"date_time"`
	GoodsDescription  string    `db:"goods_description"`
	VehicleType       string    `db:"vehicle_type"`
	Photo             string    `db:"photo"`
	RouteDistance     float64   `db:"route_distance"`
	RouteCost         float64   `db:"route_cost"`
	Status            string    `db:"status"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type EventKind string

const (
	EventKindStatusNotification EventKind = "status_notification"
	EventKindConfirmation       EventKind = "confirmation"
)

// Event is the persisted notification record. The two original
// notification concepts (status notification and ride confirmation)
// share one table, discriminated by Kind.
type Event struct {
	ID             int64     `db:"id"`
	Kind           EventKind `db:"kind"`
	ShipmentID     string    `db:"shipment_id"`
	Status         string    `db:"status"`
	Message        string    `db:"message"`
	RideNo         int       `db:"ride_no"`
	ConfirmationID string    `db:"confirmation_id"`
	Name           string    `db:"name"`
	Action         string    `db:"action"`
	CreatedAt      time.Time `db:"created_at"`
}

type Feedback struct {
	ID         int64     `db:"id"`
	ShipmentID string    `db:"shipment_id"`
	RideNo     int       `db:"ride_no"`
	Rating     int       `db:"rating"`
	Comments   string    `db:"comments"`
	CreatedAt  time.Time `db:"created_at"`
}

type Account struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}
