package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wylmer7856/AgroStock-Web-sub003/internal/service"
	"github.com/wylmer7856/AgroStock-Web-sub003/pkg/httputil"
	"github.com/wylmer7856/AgroStock-Web-sub003/pkg/middleware"
	"github.com/wylmer7856/AgroStock-Web-sub003/pkg/validator"
)

// NotificationHandler handles HTTP requests for notification endpoints.
type NotificationHandler struct {
	service *service.NotificationService
	logger  *slog.Logger
}

// NewNotificationHandler creates a new notification HTTP handler.
func NewNotificationHandler(svc *service.NotificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{service: svc, logger: logger}
}

// --- Request DTOs ---

// CreateNotificationRequest is the JSON request body for creating a notification.
type CreateNotificationRequest struct {
	UserID        int64   `json:"user_id" validate:"required,gt=0"`
	Title         string  `json:"title" validate:"required,max=200"`
	Message       string  `json:"message" validate:"required,max=2000"`
	Category      string  `json:"category" validate:"omitempty,oneof=order stock price message system promotion"`
	ReferenceID   *int64  `json:"reference_id" validate:"omitempty,gt=0"`
	ReferenceType *string `json:"reference_type" validate:"omitempty,oneof=order product message user"`
}

// --- Response DTOs ---

// UnreadCountResponse carries the unread notification count.
type UnreadCountResponse struct {
	Count int `json:"count"`
}

// MarkAllReadResponse carries the number of notifications marked read.
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// --- Handlers ---

// Create handles POST /api/v1/notifications
func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req CreateNotificationRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	notification, err := h.service.CreateNotification(r.Context(), &service.CreateNotificationInput{
		UserID:        req.UserID,
		Title:         req.Title,
		Message:       req.Message,
		Category:      req.Category,
		ReferenceID:   req.ReferenceID,
		ReferenceType: req.ReferenceType,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: notification})
}

// List handles GET /api/v1/notifications?limit=&unread_only=
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	unreadOnly := r.URL.Query().Get("unread_only") == "true"

	notifications, err := h.service.ListNotifications(r.Context(), userID, limit, unreadOnly)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: notifications})
}

// MarkRead handles PUT /api/v1/notifications/{id}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	userID := middleware.UserIDFromContext(r.Context())

	if err := h.service.MarkNotificationRead(r.Context(), id, userID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: map[string]string{"status": "read"},
	})
}

// MarkAllRead handles PUT /api/v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	updated, err := h.service.MarkAllNotificationsRead(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: MarkAllReadResponse{Updated: updated},
	})
}

// Delete handles DELETE /api/v1/notifications/{id}
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	userID := middleware.UserIDFromContext(r.Context())

	if err := h.service.DeleteNotification(r.Context(), id, userID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: map[string]string{"status": "deleted"},
	})
}

// UnreadCount handles GET /api/v1/notifications/unread-count
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	count, err := h.service.UnreadCount(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: UnreadCountResponse{Count: count},
	})
}
