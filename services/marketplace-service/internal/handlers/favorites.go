package handlers

import (
	"net/http"
	"strings"

	"github.com/randevuapp/randevu/libs/httpx"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/storage"
)

type FavoriteHandler struct {
	favorites *storage.FavoriteRepository
	shops     *storage.ShopRepository
}

func NewFavoriteHandler(favorites *storage.FavoriteRepository, shops *storage.ShopRepository) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, shops: shops}
}

func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	shopID := strings.TrimSpace(r.PathValue("shopId"))
	if shopID == "" {
		httpx.Error(w, http.StatusBadRequest, "shop id is required")
		return
	}

	if _, err := h.shops.GetByID(r.Context(), shopID); err != nil {
		if storage.IsNotFound(err) {
			httpx.Error(w, http.StatusNotFound, "shop not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to load shop")
		return
	}

	if err := h.favorites.Add(r.Context(), uid, shopID); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to add favorite")
		return
	}
	httpx.Message(w, http.StatusOK, "favorited")
}

func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	shopID := strings.TrimSpace(r.PathValue("shopId"))
	if shopID == "" {
		httpx.Error(w, http.StatusBadRequest, "shop id is required")
		return
	}

	if err := h.favorites.Remove(r.Context(), uid, shopID); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to remove favorite")
		return
	}
	httpx.Message(w, http.StatusOK, "unfavorited")
}

func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	shops, err := h.favorites.ListShops(r.Context(), uid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to list favorites")
		return
	}
	httpx.JSON(w, http.StatusOK, shops)
}
