package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wylmer7856/AgroStock-Web-sub003/internal/service"
	"github.com/wylmer7856/AgroStock-Web-sub003/pkg/httputil"
	"github.com/wylmer7856/AgroStock-Web-sub003/pkg/middleware"
)

// WishlistHandler handles HTTP requests for wishlist endpoints.
type WishlistHandler struct {
	service *service.WishlistService
	logger  *slog.Logger
}

// NewWishlistHandler creates a new wishlist HTTP handler.
func NewWishlistHandler(svc *service.WishlistService, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{service: svc, logger: logger}
}

// --- Response DTOs ---

// WishlistContainsResponse indicates whether a product is in the wishlist.
type WishlistContainsResponse struct {
	Contains bool `json:"contains"`
}

// WishlistClearResponse carries the number of entries removed.
type WishlistClearResponse struct {
	Removed int64 `json:"removed"`
}

// --- Handlers ---

// Add handles POST /api/v1/wishlist/{productId}
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, chi.URLParam(r, "productId"))
	if !ok {
		return
	}

	userID := middleware.UserIDFromContext(r.Context())

	entry, err := h.service.AddToWishlist(r.Context(), userID, productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: entry})
}

// List handles GET /api/v1/wishlist
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	items, err := h.service.ListWishlist(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: items})
}

// Remove handles DELETE /api/v1/wishlist/{entryId}
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	entryID, ok := httputil.ParseID(w, chi.URLParam(r, "entryId"))
	if !ok {
		return
	}

	userID := middleware.UserIDFromContext(r.Context())

	if err := h.service.RemoveFromWishlist(r.Context(), entryID, userID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: map[string]string{"status": "removed"},
	})
}

// RemoveByProduct handles DELETE /api/v1/wishlist/product/{productId}
func (h *WishlistHandler) RemoveByProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, chi.URLParam(r, "productId"))
	if !ok {
		return
	}

	userID := middleware.UserIDFromContext(r.Context())

	if err := h.service.RemoveProductFromWishlist(r.Context(), productID, userID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: map[string]string{"status": "removed"},
	})
}

// Clear handles DELETE /api/v1/wishlist
func (h *WishlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	removed, err := h.service.ClearWishlist(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: WishlistClearResponse{Removed: removed},
	})
}

// Contains handles GET /api/v1/wishlist/contains/{productId}
func (h *WishlistHandler) Contains(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, chi.URLParam(r, "productId"))
	if !ok {
		return
	}

	userID := middleware.UserIDFromContext(r.Context())

	contains, err := h.service.InWishlist(r.Context(), productID, userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: WishlistContainsResponse{Contains: contains},
	})
}
