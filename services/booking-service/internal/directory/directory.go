package directory

import "context"

// ShopInfo is the slice of marketplace data booking needs to validate and
// denormalize appointments: ownership, working hours, and the catalog.
type ShopInfo struct {
	ID           string              `json:"id"`
	OwnerID      string              `json:"owner_id"`
	Name         string              `json:"name"`
	Address      string              `json:"address"`
	ImageMain    string              `json:"image_main"`
	IsActive     bool                `json:"is_active"`
	WorkingHours map[string]DayHours `json:"working_hours"`
	Services     []ServiceInfo       `json:"services"`
	Staff        []StaffInfo         `json:"staff"`
}

type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type ServiceInfo struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discounted_price"`
}

type StaffInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// Service looks up a catalog service by id.
func (s ShopInfo) Service(id string) (ServiceInfo, bool) {
	for _, svc := range s.Services {
		if svc.ID == id {
			return svc, true
		}
	}
	return ServiceInfo{}, false
}

// StaffMember looks up a staff member by id.
func (s ShopInfo) StaffMember(id string) (StaffInfo, bool) {
	for _, st := range s.Staff {
		if st.ID == id {
			return st, true
		}
	}
	return StaffInfo{}, false
}

// Loader resolves shop directory data. Implementations: the marketplace HTTP
// client, its gRPC counterpart, a Redis cache wrapper, and a per-request memo.
type Loader interface {
	Shop(ctx context.Context, shopID string) (ShopInfo, error)
}
