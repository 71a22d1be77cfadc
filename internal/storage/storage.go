//go:generate mockgen -source ./storage.go -destination=./mocks/storage.go -package=mock_storage
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bidhuripriyanshu/transport-scheduler/internal/cache"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/db"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/repository"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/rideno"
)

type ShipmentRepository interface {
	Create(ctx context.Context, shipment *repository.Shipment) error
	CreateTx(ctx context.Context, tx db.Tx, shipment *repository.Shipment) error
	GetByID(ctx context.Context, id string) (*repository.Shipment, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Shipment, error)
	Update(ctx context.Context, shipment *repository.Shipment) error
	UpdateTx(ctx context.Context, tx db.Tx, shipment *repository.Shipment) error
	GetAll(ctx context.Context) ([]*repository.Shipment, error)
	GetByUserID(ctx context.Context, userID string) ([]*repository.Shipment, error)
	GetAllActive(ctx context.Context) ([]*repository.Shipment, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *repository.Event) error
	CreateTx(ctx context.Context, tx db.Tx, event *repository.Event) error
	GetNotifications(ctx context.Context) ([]*repository.Event, error)
	GetConfirmations(ctx context.Context) ([]*repository.Event, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, fb *repository.Feedback) error
	GetAll(ctx context.Context) ([]*repository.Feedback, error)
}

type AccountRepository interface {
	CreateAccount(ctx context.Context, name, email, password, role string) error
	Authenticate(ctx context.Context, email, password string) (*repository.Account, error)
}

// Storage owns shipment lifecycle transitions and notification
// dispatch. Both write paths run in a single transaction together with
// their outbox task so an event is never published for a state that was
// rolled back.
type Storage struct {
	db           db.DB
	shipmentRepo ShipmentRepository
	eventRepo    EventRepository
	feedbackRepo FeedbackRepository
	outboxRepo   OutboxTaskRepository
	cache        *cache.ShipmentCache
	topic        string

	timeNow func() time.Time
	newID   func() string
}

func NewStorage(
	db db.DB,
	shipmentRepo ShipmentRepository,
	eventRepo EventRepository,
	feedbackRepo FeedbackRepository,
	outboxRepo OutboxTaskRepository,
	shipmentCache *cache.ShipmentCache,
	topic string,
) *Storage {
	return &Storage{
		db:           db,
		shipmentRepo: shipmentRepo,
		eventRepo:    eventRepo,
		feedbackRepo: feedbackRepo,
		outboxRepo:   outboxRepo,
		cache:        shipmentCache,
		topic:        topic,
		timeNow:      time.Now,
		newID:        uuid.NewString,
	}
}

func (s *Storage) CreateShipment(ctx context.Context, shipment Shipment) (*Shipment, error) {
	var violations []string
	if shipment.DateTime.IsZero() {
		violations = append(violations, "Date and time are required")
	}
	if shipment.Photo == "" {
		violations = append(violations, "Photo is required")
	}
	if shipment.GoodsDescription == "" {
		violations = append(violations, "Goods description is required")
	}
	if shipment.VehicleType == "" {
		violations = append(violations, "Vehicle type is required")
	}
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	now := s.timeNow().UTC()
	shipment.ID = s.newID()
	shipment.Status = StatusPending
	shipment.CreatedAt = now
	shipment.UpdatedAt = now

	repoShipment := toRepoShipment(&shipment)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := s.shipmentRepo.CreateTx(ctx, tx, repoShipment); err != nil {
		return nil, fmt.Errorf("failed to add shipment: %w", err)
	}

	if err := s.enqueueEventTx(ctx, tx, repository.ShipmentEventPayload{
		Timestamp:  now,
		Action:     "shipment_created",
		ShipmentID: shipment.ID,
		UserID:     shipment.UserID,
		NewStatus:  string(StatusPending),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.cache.Set(repoShipment)

	return &shipment, nil
}

func (s *Storage) GetShipment(ctx context.Context, shipmentID string) (*Shipment, error) {
	if cached, found := s.cache.Get(shipmentID); found {
		return fromRepoShipment(cached), nil
	}

	repoShipment, err := s.shipmentRepo.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(repoShipment)
	return fromRepoShipment(repoShipment), nil
}

// TransitionShipment applies the next status unconditionally once the
// shipment is found. Membership of the status set is the only guard; any
// status may follow any other.
func (s *Storage) TransitionShipment(ctx context.Context, shipmentID string, next Status, message, actor string) (*Shipment, error) {
	if !next.Valid() {
		return nil, &ValidationError{Violations: []string{fmt.Sprintf("Invalid status: %s", next)}}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	repoShipment, err := s.shipmentRepo.GetByIDTx(ctx, tx, shipmentID)
	if err != nil {
		return nil, err
	}

	now := s.timeNow().UTC()
	oldStatus := repoShipment.Status
	repoShipment.Status = string(next)
	repoShipment.UpdatedAt = now

	if err := s.shipmentRepo.UpdateTx(ctx, tx, repoShipment); err != nil {
		return nil, fmt.Errorf("failed to update shipment: %w", err)
	}

	rideNumber := rideno.Checksum(shipmentID)
	if message == "" {
		message = fmt.Sprintf("Your shipment is now %s", next)
	}

	if err := s.eventRepo.CreateTx(ctx, tx, &repository.Event{
		Kind:       repository.EventKindStatusNotification,
		ShipmentID: shipmentID,
		Status:     statusEcho(next),
		Message:    message,
		RideNo:     rideNumber,
		CreatedAt:  now,
	}); err != nil {
		return nil, fmt.Errorf("failed to add notification: %w", err)
	}

	if err := s.enqueueEventTx(ctx, tx, repository.ShipmentEventPayload{
		Timestamp:  now,
		Action:     "shipment_transitioned",
		ShipmentID: shipmentID,
		UserID:     repoShipment.UserID,
		OldStatus:  oldStatus,
		NewStatus:  string(next),
		Message:    message,
		RideNo:     rideNumber,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.cache.Set(repoShipment)

	return fromRepoShipment(repoShipment), nil
}

func (s *Storage) ListShipments(ctx context.Context) ([]Shipment, error) {
	repoShipments, err := s.shipmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get shipments: %w", err)
	}
	return fromRepoShipments(repoShipments), nil
}

func (s *Storage) ListUserShipments(ctx context.Context, userID string) ([]Shipment, error) {
	repoShipments, err := s.shipmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user shipments: %w", err)
	}
	return fromRepoShipments(repoShipments), nil
}

// Notify records a status notification for an existing shipment. The
// ride number is the checksum of the shipment identifier.
func (s *Storage) Notify(ctx context.Context, shipmentID, status, message string) (*Notification, error) {
	var violations []string
	if shipmentID == "" {
		violations = append(violations, "Shipment ID is required")
	}
	if status == "" {
		violations = append(violations, "Status is required")
	} else if !validNotificationStatus(status) {
		violations = append(violations, fmt.Sprintf("Invalid status: %s", status))
	}
	if message == "" {
		violations = append(violations, "Message is required")
	}
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	if _, err := s.shipmentRepo.GetByID(ctx, shipmentID); err != nil {
		return nil, err
	}

	event := &repository.Event{
		Kind:       repository.EventKindStatusNotification,
		ShipmentID: shipmentID,
		Status:     status,
		Message:    message,
		RideNo:     rideno.Checksum(shipmentID),
		CreatedAt:  s.timeNow().UTC(),
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to add notification: %w", err)
	}

	return notificationFromEvent(event), nil
}

func (s *Storage) ListNotifications(ctx context.Context) ([]Notification, error) {
	events, err := s.eventRepo.GetNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	notifications := make([]Notification, len(events))
	for i, event := range events {
		notifications[i] = *notificationFromEvent(event)
	}
	return notifications, nil
}

func (s *Storage) Confirm(ctx context.Context, confirmationID, name, action string) (*Confirmation, error) {
	var violations []string
	if confirmationID == "" {
		violations = append(violations, "Confirmation ID is required")
	}
	if name == "" {
		violations = append(violations, "Name is required")
	}
	if action == "" {
		violations = append(violations, "Action is required")
	}
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	event := &repository.Event{
		Kind:           repository.EventKindConfirmation,
		ConfirmationID: confirmationID,
		Name:           name,
		Action:         action,
		CreatedAt:      s.timeNow().UTC(),
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to add confirmation: %w", err)
	}

	return confirmationFromEvent(event), nil
}

func (s *Storage) ListConfirmations(ctx context.Context) ([]Confirmation, error) {
	events, err := s.eventRepo.GetConfirmations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get confirmations: %w", err)
	}

	confirmations := make([]Confirmation, len(events))
	for i, event := range events {
		confirmations[i] = *confirmationFromEvent(event)
	}
	return confirmations, nil
}

func (s *Storage) RecordFeedback(ctx context.Context, shipmentID string, rideNumber, rating int, comments string) (*Feedback, error) {
	var violations []string
	if shipmentID == "" {
		violations = append(violations, "Shipment ID is required")
	}
	if rideNumber == 0 {
		violations = append(violations, "Ride number is required")
	}
	if rating == 0 {
		violations = append(violations, "Rating is required")
	} else if rating < 1 || rating > 5 {
		violations = append(violations, "Rating must be between 1 and 5")
	}
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	fb := &repository.Feedback{
		ShipmentID: shipmentID,
		RideNo:     rideNumber,
		Rating:     rating,
		Comments:   comments,
		CreatedAt:  s.timeNow().UTC(),
	}

	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		return nil, fmt.Errorf("failed to add feedback: %w", err)
	}

	return &Feedback{
		ShipmentID: fb.ShipmentID,
		RideNo:     fb.RideNo,
		Rating:     fb.Rating,
		Comments:   fb.Comments,
		CreatedAt:  fb.CreatedAt,
	}, nil
}

func (s *Storage) ListFeedback(ctx context.Context) ([]Feedback, error) {
	repoFeedback, err := s.feedbackRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}

	feedback := make([]Feedback, len(repoFeedback))
	for i, fb := range repoFeedback {
		feedback[i] = Feedback{
			ID:         fb.ID,
			ShipmentID: fb.ShipmentID,
			RideNo:     fb.RideNo,
			Rating:     fb.Rating,
			Comments:   fb.Comments,
			CreatedAt:  fb.CreatedAt,
		}
	}
	return feedback, nil
}

func (s *Storage) enqueueEventTx(ctx context.Context, tx db.Tx, payload repository.ShipmentEventPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	if err := s.outboxRepo.CreateTx(ctx, tx, &repository.OutboxTask{
		Payload: raw,
		Topic:   s.topic,
	}); err != nil {
		return fmt.Errorf("failed to enqueue outbox task: %w", err)
	}
	return nil
}

// statusEcho maps a lifecycle status to the older notification
// vocabulary kept for the notification records.
func statusEcho(status Status) string {
	switch status {
	case StatusConfirmed:
		return NotificationApproved
	case StatusRejected:
		return NotificationRejected
	default:
		return NotificationPending
	}
}

func toRepoShipment(s *Shipment) *repository.Shipment {
	return &repository.Shipment{
		ID:                s.ID,
		UserID:            s.UserID,
		Location:          s.Location,
		Pickup:            s.Pickup,
		Destination:       s.Destination,
		PickupCoords:      s.PickupCoords,
		DestinationCoords: s.DestinationCoords,
		DateTime:          s.DateTime,
		GoodsDescription:  s.GoodsDescription,
		VehicleType:       s.VehicleType,
		Photo:             s.Photo,
		RouteDistance:     s.RouteDistance,
		RouteCost:         s.RouteCost,
		Status:            string(s.Status),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func fromRepoShipment(s *repository.Shipment) *Shipment {
	return &Shipment{
		ID:                s.ID,
		UserID:            s.UserID,
		Location:          s.Location,
		Pickup:            s.Pickup,
		Destination:       s.Destination,
		PickupCoords:      s.PickupCoords,
		DestinationCoords: s.DestinationCoords,
		DateTime:          s.DateTime,
		GoodsDescription:  s.GoodsDescription,
		VehicleType:       s.VehicleType,
		Photo:             s.Photo,
		RouteDistance:     s.RouteDistance,
		RouteCost:         s.RouteCost,
		Status:            Status(s.Status),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func fromRepoShipments(repoShipments []*repository.Shipment) []Shipment {
	shipments := make([]Shipment, len(repoShipments))
	for i, repoShipment := range repoShipments {
		shipments[i] = *fromRepoShipment(repoShipment)
	}
	return shipments
}

func notificationFromEvent(e *repository.Event) *Notification {
	return &Notification{
		ID:         e.ID,
		ShipmentID: e.ShipmentID,
		Status:     e.Status,
		Message:    e.Message,
		RideNo:     e.RideNo,
		CreatedAt:  e.CreatedAt,
	}
}

func confirmationFromEvent(e *repository.Event) *Confirmation {
	return &Confirmation{
		ID:             e.ID,
		ConfirmationID: e.ConfirmationID,
		Name:           e.Name,
		Action:         e.Action,
		CreatedAt:      e.CreatedAt,
	}
}
