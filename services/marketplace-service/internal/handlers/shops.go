package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/randevuapp/randevu/libs/httpx"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/model"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/search"
	"github.com/randevuapp/randevu/services/marketplace-service/internal/storage"
)

type ShopHandler struct {
	shops   *storage.ShopRepository
	catalog *storage.CatalogRepository
}

func NewShopHandler(shops *storage.ShopRepository, catalog *storage.CatalogRepository) *ShopHandler {
	return &ShopHandler{shops: shops, catalog: catalog}
}

func (h *ShopHandler) List(w http.ResponseWriter, r *http.Request) {
	shops, err := h.shops.ListActive(r.Context(), 0)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to list shops")
		return
	}
	httpx.JSON(w, http.StatusOK, shops)
}

func (h *ShopHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.PathValue("category"))
	if category == "" {
		httpx.Error(w, http.StatusBadRequest, "category is required")
		return
	}
	shops, err := h.shops.ListByCategory(r.Context(), category, 0)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to list shops")
		return
	}
	httpx.JSON(w, http.StatusOK, shops)
}

type shopDetail struct {
	Shop     model.Shop          `json:"shop"`
	Services []model.ShopService `json:"services"`
	Staff    []model.Staff       `json:"staff"`
}

// Get returns the assembled shop view: the shop row plus its catalog, so the
// client renders the detail page from one response.
func (h *ShopHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		httpx.Error(w, http.StatusBadRequest, "shop id is required")
		return
	}

	shop, err := h.shops.GetByID(r.Context(), id)
	if err != nil {
		if storage.IsNotFound(err) {
			httpx.Error(w, http.StatusNotFound, "shop not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to load shop")
		return
	}

	services, err := h.catalog.ListServices(r.Context(), id)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to load services")
		return
	}
	staff, err := h.catalog.ListStaff(r.Context(), id)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to load staff")
		return
	}

	httpx.JSON(w, http.StatusOK, shopDetail{Shop: shop, Services: services, Staff: staff})
}

func (h *ShopHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	services, err := h.catalog.ListServices(r.Context(), id)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to load services")
		return
	}
	httpx.JSON(w, http.StatusOK, services)
}

func (h *ShopHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	staff, err := h.catalog.ListStaff(r.Context(), id)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to load staff")
		return
	}
	httpx.JSON(w, http.StatusOK, staff)
}

func (h *ShopHandler) MyShops(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	shops, err := h.shops.ListByOwner(r.Context(), uid)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to list shops")
		return
	}
	httpx.JSON(w, http.StatusOK, shops)
}

func (h *ShopHandler) Search(w http.ResponseWriter, r *http.Request) {
	shops, err := h.shops.ListActive(r.Context(), 500)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "search failed")
		return
	}

	q := r.URL.Query()
	results := search.Filter(shops, search.Params{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		Location: q.Get("location"),
	})
	search.Rank(results)
	httpx.JSON(w, http.StatusOK, results)
}

type shopRequest struct {
	Name         string             `json:"name"`
	Category     string             `json:"category"`
	Description  string             `json:"description"`
	Address      string             `json:"address"`
	City         string             `json:"city"`
	District     string             `json:"district"`
	Contact      string             `json:"contact"`
	ImageMain    string             `json:"image_main"`
	ImageGallery []string           `json:"image_gallery"`
	WorkingHours model.WeekSchedule `json:"working_hours"`
	IsActive     *bool              `json:"is_active"`
}

func validWorkingHours(ws model.WeekSchedule) bool {
	valid := map[string]bool{
		"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
		"friday": true, "saturday": true, "sunday": true,
	}
	for day, hours := range ws {
		if !valid[strings.ToLower(day)] {
			return false
		}
		if hours.Open == "" || hours.Close == "" || hours.Open >= hours.Close {
			return false
		}
	}
	return true
}

func (h *ShopHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req shopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	if req.Name == "" || req.Category == "" {
		httpx.Error(w, http.StatusBadRequest, "name and category required")
		return
	}
	if !validWorkingHours(req.WorkingHours) {
		httpx.Error(w, http.StatusBadRequest, "invalid working_hours")
		return
	}

	id, err := h.shops.Create(r.Context(), model.Shop{
		OwnerID:      uid,
		Name:         req.Name,
		Category:     req.Category,
		Description:  strings.TrimSpace(req.Description),
		Address:      strings.TrimSpace(req.Address),
		City:         strings.TrimSpace(req.City),
		District:     strings.TrimSpace(req.District),
		Contact:      strings.TrimSpace(req.Contact),
		ImageMain:    strings.TrimSpace(req.ImageMain),
		ImageGallery: req.ImageGallery,
		WorkingHours: req.WorkingHours,
	})
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to create shop")
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (h *ShopHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		httpx.Error(w, http.StatusBadRequest, "shop id is required")
		return
	}

	var req shopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		httpx.Error(w, http.StatusBadRequest, "name required")
		return
	}
	if !validWorkingHours(req.WorkingHours) {
		httpx.Error(w, http.StatusBadRequest, "invalid working_hours")
		return
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	err := h.shops.Update(r.Context(), model.Shop{
		ID:           id,
		OwnerID:      uid,
		Name:         req.Name,
		Category:     strings.TrimSpace(req.Category),
		Description:  strings.TrimSpace(req.Description),
		Address:      strings.TrimSpace(req.Address),
		City:         strings.TrimSpace(req.City),
		District:     strings.TrimSpace(req.District),
		Contact:      strings.TrimSpace(req.Contact),
		ImageMain:    strings.TrimSpace(req.ImageMain),
		ImageGallery: req.ImageGallery,
		WorkingHours: req.WorkingHours,
		IsActive:     isActive,
	})
	if err != nil {
		if storage.IsNotFound(err) {
			httpx.Error(w, http.StatusForbidden, "not the shop owner")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to update shop")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// requireOwner resolves the shop and checks the caller owns it.
func (h *ShopHandler) requireOwner(w http.ResponseWriter, r *http.Request, shopID string) (string, bool) {
	uid, ok := requireUser(w, r)
	if !ok {
		return "", false
	}
	ownerID, err := h.shops.OwnerOf(r.Context(), shopID)
	if err != nil {
		if storage.IsNotFound(err) {
			httpx.Error(w, http.StatusNotFound, "shop not found")
			return "", false
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to load shop")
		return "", false
	}
	if ownerID != uid {
		httpx.Error(w, http.StatusForbidden, "not the shop owner")
		return "", false
	}
	return uid, true
}

type serviceRequest struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discounted_price"`
	Description     string  `json:"description"`
}

func (h *ShopHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	shopID := strings.TrimSpace(r.PathValue("id"))
	if _, ok := h.requireOwner(w, r, shopID); !ok {
		return
	}

	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.DurationMinutes <= 0 {
		httpx.Error(w, http.StatusBadRequest, "name and duration_minutes required")
		return
	}

	id, err := h.catalog.CreateService(r.Context(), model.ShopService{
		ShopID:          shopID,
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		DiscountedPrice: req.DiscountedPrice,
		Description:     strings.TrimSpace(req.Description),
	})
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to create service")
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (h *ShopHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	shopID := strings.TrimSpace(r.PathValue("id"))
	serviceID := strings.TrimSpace(r.PathValue("serviceId"))
	if _, ok := h.requireOwner(w, r, shopID); !ok {
		return
	}

	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.DurationMinutes <= 0 {
		httpx.Error(w, http.StatusBadRequest, "name and duration_minutes required")
		return
	}

	err := h.catalog.UpdateService(r.Context(), model.ShopService{
		ID:              serviceID,
		ShopID:          shopID,
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		DiscountedPrice: req.DiscountedPrice,
		Description:     strings.TrimSpace(req.Description),
	})
	if err != nil {
		if storage.IsNotFound(err) {
			httpx.Error(w, http.StatusNotFound, "service not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to update service")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ShopHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	shopID := strings.TrimSpace(r.PathValue("id"))
	serviceID := strings.TrimSpace(r.PathValue("serviceId"))
	if _, ok := h.requireOwner(w, r, shopID); !ok {
		return
	}

	if err := h.catalog.DeleteService(r.Context(), shopID, serviceID); err != nil {
		if storage.IsNotFound(err) {
			httpx.Error(w, http.StatusNotFound, "service not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to delete service")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ShopHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	shopID := strings.TrimSpace(r.PathValue("id"))
	if _, ok := h.requireOwner(w, r, shopID); !ok {
		return
	}

	var req struct {
		Name     string `json:"name"`
		IsActive *bool  `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		httpx.Error(w, http.StatusBadRequest, "name is required")
		return
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	id, err := h.catalog.CreateStaff(r.Context(), model.Staff{
		ShopID:   shopID,
		Name:     req.Name,
		IsActive: isActive,
	})
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to create staff")
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (h *ShopHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	shopID := strings.TrimSpace(r.PathValue("id"))
	staffID := strings.TrimSpace(r.PathValue("staffId"))
	if _, ok := h.requireOwner(w, r, shopID); !ok {
		return
	}

	if err := h.catalog.DeleteStaff(r.Context(), shopID, staffID); err != nil {
		if storage.IsNotFound(err) {
			httpx.Error(w, http.StatusNotFound, "staff not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to delete staff")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
