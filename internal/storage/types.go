package storage

import (
	"strings"
	"time"
)

// Status is the shipment lifecycle status. Any member may overwrite any
// other; there is no transition table.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusInTransit, StatusDelivered:
		return true
	}
	return false
}

// Notification status echoes are a narrower, older vocabulary than the
// shipment lifecycle and are kept as-is.
const (
	NotificationApproved = "approved"
	NotificationRejected = "rejected"
	NotificationPending  = "pending"
)

func validNotificationStatus(s string) bool {
	return s == NotificationApproved || s == NotificationRejected || s == NotificationPending
}

const (
	RoleUser        = "user"
	RoleTransporter = "transporter"
)

type Shipment struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id,omitempty"`
	Location          string    `json:"location"`
	Pickup            string    `json:"pickup,omitempty"`
	Destination       string    `json:"destination,omitempty"`
	PickupCoords      string    `json:"pickup_coords,omitempty"`
	DestinationCoords string    `json:"destination_coords,omitempty"`
	DateTime          time.Time `json:"date_time"`
	GoodsDescription  string    `json:"goods_description"`
	VehicleType       string    `json:"vehicle_type"`
	Photo             string    `json:"photo"`
	RouteDistance     float64   `json:"route_distance,omitempty"`
	RouteCost         float64   `json:"route_cost,omitempty"`
	Status            Status    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type Notification struct {
	ID         int64     `json:"id"`
	ShipmentID string    `json:"shipment_id"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	RideNo     int       `json:"ride_no"`
	CreatedAt  time.Time `json:"created_at"`
}

type Confirmation struct {
	ID             int64     `json:"id"`
	ConfirmationID string    `json:"confirmation_id"`
	Name           string    `json:"name"`
	Action         string    `json:"action"`
	CreatedAt      time.Time `json:"created_at"`
}

type Feedback struct {
	ID         int64     `json:"id"`
	ShipmentID string    `json:"shipment_id"`
	RideNo     int       `json:"ride_no"`
	Rating     int       `json:"rating"`
	Comments   string    `json:"comments,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ValidationError carries every violated rule of one request. The
// message is the comma-joined violation list surfaced to the caller.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}
