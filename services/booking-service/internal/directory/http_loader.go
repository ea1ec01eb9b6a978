package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrNotFound = errors.New("shop not found")

// HTTPLoader fetches shop detail from the marketplace service over HTTP.
type HTTPLoader struct {
	baseURL string
	client  *http.Client
}

func NewHTTPLoader(baseURL string) *HTTPLoader {
	return &HTTPLoader{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 3 * time.Second},
	}
}

type shopDetailEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Data    struct {
		Shop struct {
			ID           string              `json:"id"`
			OwnerID      string              `json:"owner_id"`
			Name         string              `json:"name"`
			Address      string              `json:"address"`
			ImageMain    string              `json:"image_main"`
			IsActive     bool                `json:"is_active"`
			WorkingHours map[string]DayHours `json:"working_hours"`
		} `json:"shop"`
		Services []ServiceInfo `json:"services"`
		Staff    []StaffInfo   `json:"staff"`
	} `json:"data"`
}

func (l *HTTPLoader) Shop(ctx context.Context, shopID string) (ShopInfo, error) {
	endpoint := l.baseURL + "/api/v1/shops/" + url.PathEscape(shopID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ShopInfo{}, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return ShopInfo{}, fmt.Errorf("marketplace request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ShopInfo{}, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return ShopInfo{}, fmt.Errorf("marketplace returned status %d", resp.StatusCode)
	}

	var env shopDetailEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return ShopInfo{}, fmt.Errorf("invalid marketplace response: %w", err)
	}
	if !env.Success {
		return ShopInfo{}, fmt.Errorf("marketplace error: %s", env.Error)
	}

	return ShopInfo{
		ID:           env.Data.Shop.ID,
		OwnerID:      env.Data.Shop.OwnerID,
		Name:         env.Data.Shop.Name,
		Address:      env.Data.Shop.Address,
		ImageMain:    env.Data.Shop.ImageMain,
		IsActive:     env.Data.Shop.IsActive,
		WorkingHours: env.Data.Shop.WorkingHours,
		Services:     env.Data.Services,
		Staff:        env.Data.Staff,
	}, nil
}
