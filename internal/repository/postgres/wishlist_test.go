package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/wylmer7856/AgroStock-Web-sub003/pkg/errors"
)

func newWishlistTestFixture(t *testing.T) (*WishlistRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := NewWishlistRepository(mock)
	return repo, mock
}

// ---------------------------------------------------------------------------
// Add
// ---------------------------------------------------------------------------

func TestWishlistRepository_Add_Success(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM products").
		WithArgs(int64(20)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM wishlist_items").
		WithArgs(int64(1), int64(20)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery("INSERT INTO wishlist_items").
		WithArgs(int64(1), int64(20)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), now))
	mock.ExpectCommit()

	entry, err := repo.Add(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(5), entry.ID)
	assert.Equal(t, int64(1), entry.UserID)
	assert.Equal(t, int64(20), entry.ProductID)
	assert.Equal(t, now, entry.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistRepository_Add_ProductNotFound(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM products").
		WithArgs(int64(404)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	entry, err := repo.Add(context.Background(), 1, 404)
	require.Error(t, err)
	assert.Nil(t, entry)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "expected ErrNotFound, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistRepository_Add_Duplicate(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM products").
		WithArgs(int64(20)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM wishlist_items").
		WithArgs(int64(1), int64(20)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	entry, err := repo.Add(context.Background(), 1, 20)
	require.Error(t, err)
	assert.Nil(t, entry)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicate), "expected ErrDuplicate, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistRepository_Add_ConcurrentDuplicate(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM products").
		WithArgs(int64(20)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM wishlist_items").
		WithArgs(int64(1), int64(20)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery("INSERT INTO wishlist_items").
		WithArgs(int64(1), int64(20)).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "wishlist_items_user_id_product_id_key" (SQLSTATE 23505)`))
	mock.ExpectRollback()

	entry, err := repo.Add(context.Background(), 1, 20)
	require.Error(t, err)
	assert.Nil(t, entry)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicate), "expected ErrDuplicate, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// ListForUser
// ---------------------------------------------------------------------------

func TestWishlistRepository_ListForUser_Success(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	now := time.Now().UTC().Truncate(time.Microsecond)

	rows := pgxmock.NewRows([]string{
		"id", "user_id", "product_id", "created_at", "name", "price_cents", "unit", "image_url",
	}).
		AddRow(int64(5), int64(1), int64(20), now, "Heirloom Tomatoes", int64(450), "kg", "https://img.example/tomatoes.jpg").
		AddRow(int64(4), int64(1), int64(21), now.Add(-time.Hour), "Raw Honey", int64(1200), "jar", "")
	mock.ExpectQuery("SELECT (.+) FROM wishlist_items w").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	items, err := repo.ListForUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Heirloom Tomatoes", items[0].Product.Name)
	assert.Equal(t, int64(20), items[0].Product.ID)
	assert.Equal(t, int64(450), items[0].Product.PriceCents)
	assert.Equal(t, "Raw Honey", items[1].Product.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistRepository_ListForUser_Empty(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{
		"id", "user_id", "product_id", "created_at", "name", "price_cents", "unit", "image_url",
	})
	mock.ExpectQuery("SELECT (.+) FROM wishlist_items w").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	items, err := repo.ListForUser(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, items, "should return empty slice, not nil")
	assert.Len(t, items, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// Remove
// ---------------------------------------------------------------------------

func TestWishlistRepository_Remove_Success(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM wishlist_items WHERE id =").
		WithArgs(int64(5), int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Remove(context.Background(), 5, 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistRepository_Remove_NotFound(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM wishlist_items WHERE id =").
		WithArgs(int64(99), int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Remove(context.Background(), 99, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "expected ErrNotFound, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// RemoveByProduct
// ---------------------------------------------------------------------------

func TestWishlistRepository_RemoveByProduct_Success(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM wishlist_items WHERE product_id =").
		WithArgs(int64(20), int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.RemoveByProduct(context.Background(), 20, 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistRepository_RemoveByProduct_NotFound(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM wishlist_items WHERE product_id =").
		WithArgs(int64(404), int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.RemoveByProduct(context.Background(), 404, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "expected ErrNotFound, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// Clear
// ---------------------------------------------------------------------------

func TestWishlistRepository_Clear_Success(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM wishlist_items WHERE user_id =").
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	removed, err := repo.Clear(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistRepository_Clear_AlreadyEmpty(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM wishlist_items WHERE user_id =").
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	removed, err := repo.Clear(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// Contains
// ---------------------------------------------------------------------------

func TestWishlistRepository_Contains_True(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"exists"}).AddRow(true)
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(1), int64(20)).
		WillReturnRows(rows)

	exists, err := repo.Contains(context.Background(), 20, 1)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistRepository_Contains_Error(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(1), int64(20)).
		WillReturnError(errors.New("query failed"))

	exists, err := repo.Contains(context.Background(), 20, 1)
	require.Error(t, err)
	assert.False(t, exists)
	assert.Contains(t, err.Error(), "check wishlist entry exists")
	assert.NoError(t, mock.ExpectationsWereMet())
}
