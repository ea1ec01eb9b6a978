package search

import (
	"testing"

	"github.com/randevuapp/randevu/services/marketplace-service/internal/model"
)

func fixtureShops() []model.Shop {
	return []model.Shop{
		{ID: "1", Name: "Star Berber", Category: "Berber", City: "Istanbul", District: "Kadıköy", IsActive: true},
		{ID: "2", Name: "Elite Bayan Kuaför", Category: "Kuaför", City: "Istanbul", District: "Beşiktaş", IsActive: true},
		{ID: "3", Name: "Modern Erkek Kuaförü", Category: "Berber", Description: "modern styles", City: "Ankara", District: "Çankaya", IsActive: true},
		{ID: "4", Name: "Closed Shop", Category: "Berber", City: "Istanbul", IsActive: false},
	}
}

func ids(shops []model.Shop) []string {
	out := make([]string, 0, len(shops))
	for _, s := range shops {
		out = append(out, s.ID)
	}
	return out
}

func TestFilterQuery(t *testing.T) {
	got := Filter(fixtureShops(), Params{Query: "star"})
	if len(got) != 1 || got[0].Name != "Star Berber" {
		t.Fatalf("query star: expected only Star Berber, got %v", ids(got))
	}
}

func TestFilterCategory(t *testing.T) {
	got := Filter(fixtureShops(), Params{Category: "Kuaför"})
	if len(got) != 1 || got[0].Name != "Elite Bayan Kuaför" {
		t.Fatalf("category Kuaför: expected only Elite Bayan Kuaför, got %v", ids(got))
	}
}

func TestFilterLocation(t *testing.T) {
	got := Filter(fixtureShops(), Params{Location: "Ankara"})
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("location Ankara: expected shop 3, got %v", ids(got))
	}

	got = Filter(fixtureShops(), Params{Location: "kadıköy"})
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("district kadıköy: expected shop 1, got %v", ids(got))
	}
}

func TestFilterExcludesInactive(t *testing.T) {
	got := Filter(fixtureShops(), Params{})
	for _, s := range got {
		if s.ID == "4" {
			t.Fatal("inactive shop should not appear in results")
		}
	}
}

func TestRankOrdering(t *testing.T) {
	shops := []model.Shop{
		{ID: "low", RatingAverage: 3.0, BookingCount: 10},
		{ID: "premium", IsPremium: true, RatingAverage: 2.0},
		{ID: "high", RatingAverage: 4.8, BookingCount: 5},
		{ID: "busy", RatingAverage: 4.8, BookingCount: 50},
	}
	Rank(shops)

	want := []string{"premium", "busy", "high", "low"}
	for i, id := range want {
		if shops[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s (full order %v)", i, id, shops[i].ID, ids(shops))
		}
	}
}
