package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wylmer7856/AgroStock-Web-sub003/internal/domain"
	"github.com/wylmer7856/AgroStock-Web-sub003/internal/service"
	apperrors "github.com/wylmer7856/AgroStock-Web-sub003/pkg/errors"
	"github.com/wylmer7856/AgroStock-Web-sub003/pkg/middleware"
)

func setupNotificationRouter(repo *mockNotificationRepo) chi.Router {
	svc := service.NewNotificationService(repo, testLogger())
	h := NewNotificationHandler(svc, testLogger())

	r := chi.NewRouter()
	r.Route("/api/v1/notifications", func(r chi.Router) {
		r.With(middleware.RequireRole(middleware.RoleAdmin)).Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/unread-count", h.UnreadCount)
		r.Put("/read-all", h.MarkAllRead)
		r.Put("/{id}/read", h.MarkRead)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

func sampleNotification() *domain.Notification {
	return &domain.Notification{
		ID:        3,
		UserID:    1,
		Title:     "Order shipped",
		Message:   "Your order is on its way",
		Category:  domain.CategoryOrder,
		CreatedAt: time.Now().UTC(),
	}
}

func TestNotificationHandler_Create_AsAdmin(t *testing.T) {
	repo := new(mockNotificationRepo)
	router := setupNotificationRouter(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == 1 && n.Category == domain.CategoryOrder
	})).Return(sampleNotification(), nil)

	body, _ := json.Marshal(map[string]any{
		"user_id":  1,
		"title":    "Order shipped",
		"message":  "Your order is on its way",
		"category": "order",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications", bytes.NewReader(body))

	rec := doRequest(t, router, req, 99, middleware.RoleAdmin)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data domain.Notification `json:"data"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, int64(3), resp.Data.ID)
	repo.AssertExpectations(t)
}

func TestNotificationHandler_Create_ForbiddenForConsumer(t *testing.T) {
	repo := new(mockNotificationRepo)
	router := setupNotificationRouter(repo)

	body, _ := json.Marshal(map[string]any{
		"user_id": 1,
		"title":   "Hi",
		"message": "there",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications", bytes.NewReader(body))

	rec := doRequest(t, router, req, 1, middleware.RoleConsumer)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	repo.AssertNotCalled(t, "Create")
}

func TestNotificationHandler_Create_InvalidCategory(t *testing.T) {
	repo := new(mockNotificationRepo)
	router := setupNotificationRouter(repo)

	body, _ := json.Marshal(map[string]any{
		"user_id":  1,
		"title":    "Hi",
		"message":  "there",
		"category": "weather",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications", bytes.NewReader(body))

	rec := doRequest(t, router, req, 99, middleware.RoleAdmin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "Create")
}

func TestNotificationHandler_List(t *testing.T) {
	repo := new(mockNotificationRepo)
	router := setupNotificationRouter(repo)

	repo.On("ListForUser", mock.Anything, int64(1), 50, false).
		Return([]domain.Notification{*sampleNotification()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	rec := doRequest(t, router, req, 1, middleware.RoleConsumer)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []domain.Notification `json:"data"`
	}
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Data, 1)
	repo.AssertExpectations(t)
}

func TestNotificationHandler_List_UnreadOnlyWithLimit(t *testing.T) {
	repo := new(mockNotificationRepo)
	router := setupNotificationRouter(repo)

	repo.On("ListForUser", mock.Anything, int64(1), 10, true).
		Return([]domain.Notification{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications?limit=10&unread_only=true", nil)
	rec := doRequest(t, router, req, 1, middleware.RoleConsumer)
	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestNotificationHandler_MarkRead_OwnerScoped(t *testing.T) {
	repo := new(mockNotificationRepo)
	router := setupNotificationRouter(repo)

	repo.On("MarkRead", mock.Anything, int64(3), int64(1)).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/notifications/3/read", nil)
	rec := doRequest(t, router, req, 1, middleware.RoleConsumer)
	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestNotificationHandler_MarkRead_WrongOwner(t *testing.T) {
	repo := new(mockNotificationRepo)
	router := setupNotificationRouter(repo)

	repo.On("MarkRead", mock.Anything, int64(3), int64(2)).
		Return(apperrors.NotFound("notification", int64(3)))

	req := httptest.NewRequest(http.MethodPut, "/api/v1/notifications/3/read", nil)
	rec := doRequest(t, router, req, 2, middleware.RoleConsumer)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	repo.AssertExpectations(t)
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	repo := new(mockNotificationRepo)
	router := setupNotificationRouter(repo)

	repo.On("MarkAllRead", mock.Anything, int64(1)).Return(int64(4), nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/notifications/read-all", nil)
	rec := doRequest(t, router, req, 1, middleware.RoleConsumer)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data MarkAllReadResponse `json:"data"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, int64(4), resp.Data.Updated)
	repo.AssertExpectations(t)
}

func TestNotificationHandler_Delete(t *testing.T) {
	repo := new(mockNotificationRepo)
	router := setupNotificationRouter(repo)

	repo.On("Delete", mock.Anything, int64(3), int64(1)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/notifications/3", nil)
	rec := doRequest(t, router, req, 1, middleware.RoleConsumer)
	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestNotificationHandler_UnreadCount(t *testing.T) {
	repo := new(mockNotificationRepo)
	router := setupNotificationRouter(repo)

	repo.On("CountUnread", mock.Anything, int64(1)).Return(6, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/unread-count", nil)
	rec := doRequest(t, router, req, 1, middleware.RoleConsumer)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data UnreadCountResponse `json:"data"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, 6, resp.Data.Count)
	repo.AssertExpectations(t)
}
