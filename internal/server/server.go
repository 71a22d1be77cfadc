//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/bidhuripriyanshu/transport-scheduler/internal/metrics"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/repository"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/storage"
)

type Storage interface {
	CreateShipment(ctx context.Context, shipment storage.Shipment) (*storage.Shipment, error)
	GetShipment(ctx context.Context, shipmentID string) (*storage.Shipment, error)
	TransitionShipment(ctx context.Context, shipmentID string, next storage.Status, message, actor string) (*storage.Shipment, error)
	ListShipments(ctx context.Context) ([]storage.Shipment, error)
	ListUserShipments(ctx context.Context, userID string) ([]storage.Shipment, error)
	Notify(ctx context.Context, shipmentID, status, message string) (*storage.Notification, error)
	ListNotifications(ctx context.Context) ([]storage.Notification, error)
	Confirm(ctx context.Context, confirmationID, name, action string) (*storage.Confirmation, error)
	ListConfirmations(ctx context.Context) ([]storage.Confirmation, error)
	RecordFeedback(ctx context.Context, shipmentID string, rideNumber, rating int, comments string) (*storage.Feedback, error)
	ListFeedback(ctx context.Context) ([]storage.Feedback, error)
}

type AccountRepo interface {
	CreateAccount(ctx context.Context, name, email, password, role string) error
	Authenticate(ctx context.Context, email, password string) (*repository.Account, error)
}

type Uploader interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

type Server struct {
	storage      Storage
	accounts     AccountRepo
	uploader     Uploader
	logger       *zap.Logger
	server       *http.Server
	startedAt    time.Time
	AuditManager *AuditManager
}

func New(storage Storage, accounts AccountRepo, uploader Uploader, logger *zap.Logger) *Server {
	auditManager := NewAuditManager(2, 5, 500*time.Millisecond, logger)
	return &Server{
		storage:      storage,
		accounts:     accounts,
		uploader:     uploader,
		logger:       logger,
		startedAt:    time.Now(),
		AuditManager: auditManager,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("http server shutdown completed")

	s.AuditManager.Shutdown(ctx)
	s.logger.Info("server shutdown completed")

	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/signup", s.handleSignup).Methods(http.MethodPost)

	router.HandleFunc("/shipments", s.handleCreateShipment).Methods(http.MethodPost)
	router.HandleFunc("/shipments", s.handleListShipments).Methods(http.MethodGet)
	router.HandleFunc("/shipments/{id}", s.handleGetShipment).Methods(http.MethodGet)
	router.HandleFunc("/shipments/{id}/status", s.handleTransitionShipment).Methods(http.MethodPut)
	router.HandleFunc("/users/{userID}/shipments", s.handleListUserShipments).Methods(http.MethodGet)

	router.HandleFunc("/notifications", s.handleNotify).Methods(http.MethodPost)
	router.HandleFunc("/notifications", s.handleListNotifications).Methods(http.MethodGet)

	router.HandleFunc("/confirmations", s.handleConfirm).Methods(http.MethodPost)
	router.HandleFunc("/confirmations", s.handleListConfirmations).Methods(http.MethodGet)

	router.HandleFunc("/feedback", s.handleRecordFeedback).Methods(http.MethodPost)
	router.HandleFunc("/feedback", s.handleListFeedback).Methods(http.MethodGet)

	return s.auditLogMiddleware(s.basicAuthMiddleware(router))
}

type contextKey string

const accountContextKey contextKey = "account"

// publicPaths need no credentials. Everything else requires a known
// account via basic auth.
var publicPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
	"/signup":  {},
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := publicPaths[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		email, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		account, err := s.accounts.Authenticate(r.Context(), email, password)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), accountContextKey, account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func accountFromContext(ctx context.Context) *repository.Account {
	account, _ := ctx.Value(accountContextKey).(*repository.Account)
	return account
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondStorageError maps domain errors onto HTTP statuses. Validation
// failures keep their message; everything unexpected is hidden behind a
// generic 500.
func (s *Server) respondStorageError(w http.ResponseWriter, operation string, err error) {
	var validationErr *storage.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, repository.ErrObjectNotFound):
		respondError(w, http.StatusNotFound, "not found")
	default:
		metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()
		s.logger.Error("operation failed", zap.String("operation", operation), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.startedAt).Round(time.Second).String(),
	})
}

// requireTransporter guards endpoints reserved for the transporter
// role. Returns false after writing the response when access is denied.
func (s *Server) requireTransporter(w http.ResponseWriter, r *http.Request) bool {
	account := accountFromContext(r.Context())
	if account == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return false
	}
	if account.Role != storage.RoleTransporter {
		respondError(w, http.StatusForbidden, "Transporter role required")
		return false
	}
	return true
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var signupRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	if err := json.NewDecoder(r.Body).Decode(&signupRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if signupRequest.Email == "" || signupRequest.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	role := signupRequest.Role
	if role == "" {
		role = storage.RoleUser
	}
	if role != storage.RoleUser && role != storage.RoleTransporter {
		respondError(w, http.StatusBadRequest, "Invalid role: "+role)
		return
	}

	err := s.accounts.CreateAccount(r.Context(), signupRequest.Name, signupRequest.Email, signupRequest.Password, role)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			respondError(w, http.StatusConflict, "Email already registered")
			return
		}
		s.respondStorageError(w, "signup", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "Account created"})
}

func (s *Server) handleCreateShipment(w http.ResponseWriter, r *http.Request) {
	var shipmentRequest struct {
		Location          string    `json:"location"`
		Pickup            string    `json:"pickup"`
		Destination       string    `json:"destination"`
		PickupCoords      string    `json:"pickup_coords"`
		DestinationCoords string    `json:"destination_coords"`
		DateTime          time.Time `json:"date_time"`
		GoodsDescription  string    `json:"goods_description"`
		VehicleType       string    `json:"vehicle_type"`
		PhotoName         string    `json:"photo_name"`
		PhotoData         string    `json:"photo_data"`
		RouteDistance     float64   `json:"route_distance"`
		RouteCost         float64   `json:"route_cost"`
	}

	if err := json.NewDecoder(r.Body).Decode(&shipmentRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account := accountFromContext(r.Context())
	if account == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// The photo is hosted before anything is persisted so a stored
	// shipment always references a reachable image.
	var photoURL string
	if shipmentRequest.PhotoData != "" {
		photoBytes, err := base64.StdEncoding.DecodeString(shipmentRequest.PhotoData)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid photo encoding")
			return
		}
		photoURL, err = s.uploader.Upload(r.Context(), shipmentRequest.PhotoName, photoBytes)
		if err != nil {
			metrics.OperationErrorsTotal.WithLabelValues("upload_photo").Inc()
			s.logger.Error("photo upload failed", zap.Error(err))
			respondError(w, http.StatusBadGateway, "Failed to store photo")
			return
		}
	}

	shipment, err := s.storage.CreateShipment(r.Context(), storage.Shipment{
		UserID:            account.ID,
		Location:          shipmentRequest.Location,
		Pickup:            shipmentRequest.Pickup,
		Destination:       shipmentRequest.Destination,
		PickupCoords:      shipmentRequest.PickupCoords,
		DestinationCoords: shipmentRequest.DestinationCoords,
		DateTime:          shipmentRequest.DateTime,
		GoodsDescription:  shipmentRequest.GoodsDescription,
		VehicleType:       shipmentRequest.VehicleType,
		Photo:             photoURL,
		RouteDistance:     shipmentRequest.RouteDistance,
		RouteCost:         shipmentRequest.RouteCost,
	})
	if err != nil {
		s.respondStorageError(w, "create_shipment", err)
		return
	}

	metrics.ShipmentsCreatedTotal.Inc()
	respondJSON(w, http.StatusCreated, shipment)
}

func (s *Server) handleGetShipment(w http.ResponseWriter, r *http.Request) {
	shipmentID := mux.Vars(r)["id"]
	if shipmentID == "" {
		respondError(w, http.StatusBadRequest, "Missing shipment ID")
		return
	}

	shipment, err := s.storage.GetShipment(r.Context(), shipmentID)
	if err != nil {
		s.respondStorageError(w, "get_shipment", err)
		return
	}

	respondJSON(w, http.StatusOK, shipment)
}

func (s *Server) handleListShipments(w http.ResponseWriter, r *http.Request) {
	if !s.requireTransporter(w, r) {
		return
	}

	shipments, err := s.storage.ListShipments(r.Context())
	if err != nil {
		s.respondStorageError(w, "list_shipments", err)
		return
	}

	respondJSON(w, http.StatusOK, shipments)
}

func (s *Server) handleListUserShipments(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]
	if userID == "" {
		respondError(w, http.StatusBadRequest, "Missing user ID")
		return
	}

	shipments, err := s.storage.ListUserShipments(r.Context(), userID)
	if err != nil {
		s.respondStorageError(w, "list_user_shipments", err)
		return
	}

	respondJSON(w, http.StatusOK, shipments)
}

func (s *Server) handleTransitionShipment(w http.ResponseWriter, r *http.Request) {
	shipmentID := mux.Vars(r)["id"]
	if shipmentID == "" {
		respondError(w, http.StatusBadRequest, "Missing shipment ID")
		return
	}

	account := accountFromContext(r.Context())
	if account == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if account.Role != storage.RoleTransporter {
		respondError(w, http.StatusForbidden, "Only transporters can change shipment status")
		return
	}

	var statusRequest struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&statusRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	shipment, err := s.storage.TransitionShipment(r.Context(), shipmentID, storage.Status(statusRequest.Status), statusRequest.Message, account.Email)
	if err != nil {
		s.respondStorageError(w, "transition_shipment", err)
		return
	}

	metrics.ShipmentTransitionsTotal.WithLabelValues(statusRequest.Status).Inc()
	respondJSON(w, http.StatusOK, shipment)
}

func (s *Server) handleNotify(w http.ResponseWriter, r *http.Request) {
	if !s.requireTransporter(w, r) {
		return
	}

	var notifyRequest struct {
		ShipmentID string `json:"shipment_id"`
		Status     string `json:"status"`
		Message    string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&notifyRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	notification, err := s.storage.Notify(r.Context(), notifyRequest.ShipmentID, notifyRequest.Status, notifyRequest.Message)
	if err != nil {
		s.respondStorageError(w, "notify", err)
		return
	}

	metrics.NotificationsCreatedTotal.Inc()
	respondJSON(w, http.StatusCreated, notification)
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := s.storage.ListNotifications(r.Context())
	if err != nil {
		s.respondStorageError(w, "list_notifications", err)
		return
	}

	respondJSON(w, http.StatusOK, notifications)
}

func (s *Server) handleConfirm(w http.ResponseWriter, r *http.Request) {
	var confirmRequest struct {
		ConfirmationID string `json:"confirmation_id"`
		Name           string `json:"name"`
		Action         string `json:"action"`
	}

	if err := json.NewDecoder(r.Body).Decode(&confirmRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	confirmation, err := s.storage.Confirm(r.Context(), confirmRequest.ConfirmationID, confirmRequest.Name, confirmRequest.Action)
	if err != nil {
		s.respondStorageError(w, "confirm", err)
		return
	}

	respondJSON(w, http.StatusCreated, confirmation)
}

func (s *Server) handleListConfirmations(w http.ResponseWriter, r *http.Request) {
	confirmations, err := s.storage.ListConfirmations(r.Context())
	if err != nil {
		s.respondStorageError(w, "list_confirmations", err)
		return
	}

	respondJSON(w, http.StatusOK, confirmations)
}

func (s *Server) handleRecordFeedback(w http.ResponseWriter, r *http.Request) {
	var feedbackRequest struct {
		ShipmentID string `json:"shipment_id"`
		RideNo     int    `json:"ride_no"`
		Rating     int    `json:"rating"`
		Comments   string `json:"comments"`
	}

	if err := json.NewDecoder(r.Body).Decode(&feedbackRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	feedback, err := s.storage.RecordFeedback(r.Context(), feedbackRequest.ShipmentID, feedbackRequest.RideNo, feedbackRequest.Rating, feedbackRequest.Comments)
	if err != nil {
		s.respondStorageError(w, "record_feedback", err)
		return
	}

	metrics.FeedbackRecordedTotal.Inc()
	respondJSON(w, http.StatusCreated, feedback)
}

func (s *Server) handleListFeedback(w http.ResponseWriter, r *http.Request) {
	feedback, err := s.storage.ListFeedback(r.Context())
	if err != nil {
		s.respondStorageError(w, "list_feedback", err)
		return
	}

	respondJSON(w, http.StatusOK, feedback)
}
