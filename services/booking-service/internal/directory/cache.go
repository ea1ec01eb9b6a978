package directory

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedLoader fronts a Loader with a Redis TTL cache. Misses and cache
// failures fall through to the wrapped loader; only lookups that resolve get
// cached, so a missing shop is re-checked every time.
type CachedLoader struct {
	next   Loader
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedLoader(next Loader, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedLoader {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachedLoader{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

func cacheKey(shopID string) string {
	return "directory:shop:" + shopID
}

func (l *CachedLoader) Shop(ctx context.Context, shopID string) (ShopInfo, error) {
	raw, err := l.rdb.Get(ctx, cacheKey(shopID)).Bytes()
	if err == nil {
		var info ShopInfo
		if jsonErr := json.Unmarshal(raw, &info); jsonErr == nil {
			return info, nil
		}
	} else if err != redis.Nil {
		l.logger.Warn("directory cache read failed", "err", err, "shop_id", shopID)
	}

	info, err := l.next.Shop(ctx, shopID)
	if err != nil {
		return ShopInfo{}, err
	}

	if raw, err := json.Marshal(info); err == nil {
		if err := l.rdb.Set(ctx, cacheKey(shopID), raw, l.ttl).Err(); err != nil {
			l.logger.Warn("directory cache write failed", "err", err, "shop_id", shopID)
		}
	}
	return info, nil
}

// Memo deduplicates lookups within one request: assembling a list of N
// appointments over M shops costs at most M loader calls. Not safe for
// concurrent use; create one per request.
type Memo struct {
	next Loader
	seen map[string]ShopInfo
}

func NewMemo(next Loader) *Memo {
	return &Memo{next: next, seen: make(map[string]ShopInfo)}
}

func (m *Memo) Shop(ctx context.Context, shopID string) (ShopInfo, error) {
	if info, ok := m.seen[shopID]; ok {
		return info, nil
	}
	info, err := m.next.Shop(ctx, shopID)
	if err != nil {
		return ShopInfo{}, err
	}
	m.seen[shopID] = info
	return info, nil
}
