package search

import (
	"sort"
	"strings"

	"github.com/randevuapp/randevu/services/marketplace-service/internal/model"
)

type Params struct {
	Query    string
	Category string
	Location string
}

// Filter applies the marketplace search semantics in application memory:
// free-text query matches name, description or category as a case-insensitive
// substring; category is an exact (case-insensitive) match; location matches
// either city or district.
func Filter(shops []model.Shop, p Params) []model.Shop {
	q := strings.ToLower(strings.TrimSpace(p.Query))
	category := strings.ToLower(strings.TrimSpace(p.Category))
	location := strings.ToLower(strings.TrimSpace(p.Location))

	out := make([]model.Shop, 0, len(shops))
	for _, s := range shops {
		if !s.IsActive {
			continue
		}
		if q != "" {
			name := strings.ToLower(s.Name)
			desc := strings.ToLower(s.Description)
			cat := strings.ToLower(s.Category)
			if !strings.Contains(name, q) && !strings.Contains(desc, q) && !strings.Contains(cat, q) {
				continue
			}
		}
		if category != "" && strings.ToLower(s.Category) != category {
			continue
		}
		if location != "" {
			city := strings.ToLower(s.City)
			district := strings.ToLower(s.District)
			if city != location && district != location {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// Rank orders results premium first, then rating average descending, then
// booking count descending. Stable so equal shops keep their input order.
func Rank(shops []model.Shop) {
	sort.SliceStable(shops, func(i, j int) bool {
		a, b := shops[i], shops[j]
		if a.IsPremium != b.IsPremium {
			return a.IsPremium
		}
		if a.RatingAverage != b.RatingAverage {
			return a.RatingAverage > b.RatingAverage
		}
		return a.BookingCount > b.BookingCount
	})
}
