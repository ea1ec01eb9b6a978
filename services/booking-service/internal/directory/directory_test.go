package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

type countingLoader struct {
	calls int
	shops map[string]ShopInfo
}

func (c *countingLoader) Shop(_ context.Context, shopID string) (ShopInfo, error) {
	c.calls++
	info, ok := c.shops[shopID]
	if !ok {
		return ShopInfo{}, ErrNotFound
	}
	return info, nil
}

func TestMemoDeduplicatesLookups(t *testing.T) {
	base := &countingLoader{shops: map[string]ShopInfo{
		"shop-a": {ID: "shop-a", Name: "Star Berber"},
		"shop-b": {ID: "shop-b", Name: "Elite Bayan Kuaför"},
	}}
	memo := NewMemo(base)

	// Ten lookups across two shops must hit the wrapped loader twice.
	order := []string{"shop-a", "shop-b", "shop-a", "shop-a", "shop-b", "shop-a", "shop-b", "shop-b", "shop-a", "shop-b"}
	for _, id := range order {
		info, err := memo.Shop(context.Background(), id)
		if err != nil {
			t.Fatalf("lookup %s: %v", id, err)
		}
		if info.ID != id {
			t.Fatalf("lookup %s returned %s", id, info.ID)
		}
	}
	if base.calls != 2 {
		t.Fatalf("expected 2 loader calls for 2 distinct shops, got %d", base.calls)
	}
}

func TestMemoDoesNotCacheErrors(t *testing.T) {
	base := &countingLoader{shops: map[string]ShopInfo{}}
	memo := NewMemo(base)

	for i := 0; i < 2; i++ {
		if _, err := memo.Shop(context.Background(), "ghost"); err == nil {
			t.Fatal("expected error for unknown shop")
		}
	}
	if base.calls != 2 {
		t.Fatalf("expected failed lookups to pass through, got %d calls", base.calls)
	}
}

func TestHTTPLoaderDecodesShopDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/shops/shop-1" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"shop": {
					"id": "shop-1",
					"owner_id": "owner-1",
					"name": "Star Berber",
					"address": "Moda Cad. 5",
					"is_active": true,
					"working_hours": {"monday": {"open": "09:00", "close": "18:00"}}
				},
				"services": [{"id": "svc-1", "name": "Saç Kesimi", "duration_minutes": 45, "price": 350}],
				"staff": [{"id": "stf-1", "name": "Mehmet", "is_active": true}]
			}
		}`))
	}))
	defer srv.Close()

	loader := NewHTTPLoader(srv.URL)
	info, err := loader.Shop(context.Background(), "shop-1")
	if err != nil {
		t.Fatalf("Shop: %v", err)
	}
	if info.OwnerID != "owner-1" || info.Name != "Star Berber" {
		t.Fatalf("unexpected shop info: %+v", info)
	}
	if info.WorkingHours["monday"].Open != "09:00" {
		t.Fatalf("working hours not decoded: %+v", info.WorkingHours)
	}
	svc, ok := info.Service("svc-1")
	if !ok || svc.DurationMinutes != 45 {
		t.Fatalf("service not decoded: %+v", info.Services)
	}
	if _, ok := info.StaffMember("stf-1"); !ok {
		t.Fatalf("staff not decoded: %+v", info.Staff)
	}
}

func TestHTTPLoaderNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success": false, "error": "shop not found"}`))
	}))
	defer srv.Close()

	loader := NewHTTPLoader(srv.URL)
	if _, err := loader.Shop(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
