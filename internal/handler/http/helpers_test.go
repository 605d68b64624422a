package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wylmer7856/AgroStock-Web-sub003/internal/domain"
	"github.com/wylmer7856/AgroStock-Web-sub003/pkg/middleware"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// doRequest executes req against router with the given actor injected into
// context, mirroring what the auth middleware does in production.
func doRequest(t *testing.T, router chi.Router, req *http.Request, userID int64, role string) *httptest.ResponseRecorder {
	t.Helper()
	req = req.WithContext(middleware.WithActor(req.Context(), userID, role))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ---------------------------------------------------------------------------
// Mock repositories (shared by the handler tests in this package)
// ---------------------------------------------------------------------------

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *mockReviewRepo) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *mockReviewRepo) List(ctx context.Context) ([]domain.Review, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepo) Update(ctx context.Context, id int64, rating *int, comment *string) error {
	args := m.Called(ctx, id, rating, comment)
	return args.Error(0)
}

func (m *mockReviewRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockReviewRepo) RatingSummary(ctx context.Context, productID int64) (*domain.RatingSummary, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatingSummary), args.Error(1)
}

type mockNotificationRepo struct {
	mock.Mock
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *mockNotificationRepo) ListForUser(ctx context.Context, userID int64, limit int, unreadOnly bool) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit, unreadOnly)
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *mockNotificationRepo) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockNotificationRepo) Delete(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *mockNotificationRepo) CountUnread(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

type mockWishlistRepo struct {
	mock.Mock
}

func (m *mockWishlistRepo) Add(ctx context.Context, userID, productID int64) (*domain.WishlistEntry, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WishlistEntry), args.Error(1)
}

func (m *mockWishlistRepo) ListForUser(ctx context.Context, userID int64) ([]domain.WishlistItem, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.WishlistItem), args.Error(1)
}

func (m *mockWishlistRepo) Remove(ctx context.Context, entryID, userID int64) error {
	args := m.Called(ctx, entryID, userID)
	return args.Error(0)
}

func (m *mockWishlistRepo) RemoveByProduct(ctx context.Context, productID, userID int64) error {
	args := m.Called(ctx, productID, userID)
	return args.Error(0)
}

func (m *mockWishlistRepo) Clear(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockWishlistRepo) Contains(ctx context.Context, productID, userID int64) (bool, error) {
	args := m.Called(ctx, productID, userID)
	return args.Bool(0), args.Error(1)
}

// decodeBody asserts the recorder wrote JSON and decodes it into dst.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	require.NoError(t, json.NewDecoder(rec.Body).Decode(dst))
}
