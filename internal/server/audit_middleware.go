package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-Type")
		skipRequestBody := strings.Contains(contentType, "multipart/form-data")
		entry := AuditLogEntry{
			Timestamp: time.Now(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   getHandlerName(r.URL.Path, r.Method),
		}

		if email, _, ok := r.BasicAuth(); ok {
			entry.Account = email
		}

		if strings.Contains(r.URL.Path, "/shipments/") {
			parts := strings.Split(r.URL.Path, "/")
			for i, part := range parts {
				if part == "shipments" && i+1 < len(parts) {
					entry.ShipmentID = parts[i+1]
					break
				}
			}
		}

		var requestBody []byte
		if !skipRequestBody && r.Body != nil {
			requestBody, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)

			if entry.ShipmentID != "" && strings.Contains(r.URL.Path, "/status") {
				var statusRequest struct {
					Status string `json:"status"`
				}
				if err := json.Unmarshal(requestBody, &statusRequest); err == nil {
					if shipment, err := s.storage.GetShipment(r.Context(), entry.ShipmentID); err == nil {
						entry.OldStatus = string(shipment.Status)
						entry.NewStatus = statusRequest.Status
					}
				}
			}
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.StatusCode()
		entry.Response = string(wrw.Body())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func getHandlerName(path string, method string) string {
	switch {
	case strings.HasPrefix(path, "/shipments"):
		switch {
		case method == http.MethodPost:
			return "handleCreateShipment"
		case strings.Contains(path, "/status"):
			return "handleTransitionShipment"
		case method == http.MethodGet && path == "/shipments":
			return "handleListShipments"
		case method == http.MethodGet:
			return "handleGetShipment"
		}
	case strings.HasPrefix(path, "/users") && strings.Contains(path, "/shipments"):
		return "handleListUserShipments"
	case strings.HasPrefix(path, "/notifications"):
		if method == http.MethodPost {
			return "handleNotify"
		}
		return "handleListNotifications"
	case strings.HasPrefix(path, "/confirmations"):
		if method == http.MethodPost {
			return "handleConfirm"
		}
		return "handleListConfirmations"
	case strings.HasPrefix(path, "/feedback"):
		if method == http.MethodPost {
			return "handleRecordFeedback"
		}
		return "handleListFeedback"
	case strings.HasPrefix(path, "/signup"):
		return "handleSignup"
	case strings.HasPrefix(path, "/health"):
		return "handleHealth"
	}

	return "unknown"
}
