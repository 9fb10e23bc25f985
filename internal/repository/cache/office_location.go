package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/organization"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/redis"
	goredis "github.com/redis/go-redis/v9"
)

const officeLocationPrefix = "office_location"

// Store is the part of the redis client the cache uses.
type Store interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// cachedOfficeLocationRepository is a read-through cache in front of the
// database repository. Only locations the database returned are cached, and
// any cache failure falls back to the database.
type cachedOfficeLocationRepository struct {
	next   organization.OfficeLocationRepository
	store  Store
	prefix string
	ttl    time.Duration
}

// GetByOrganizationID implements organization.OfficeLocationRepository.
func (r *cachedOfficeLocationRepository) GetByOrganizationID(ctx context.Context, organizationID string) (organization.OfficeLocation, error) {
	key := redis.Key(r.prefix, officeLocationPrefix, organizationID)

	raw, err := r.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var office organization.OfficeLocation
		if jsonErr := json.Unmarshal(raw, &office); jsonErr == nil && office.OrganizationID == organizationID {
			return office, nil
		}
		slog.WarnContext(ctx, "discarding unreadable cached office location", "key", key)
		if delErr := r.store.Del(ctx, key).Err(); delErr != nil {
			slog.WarnContext(ctx, "failed to delete cached office location", "key", key, "error", delErr)
		}
	case errors.Is(err, goredis.Nil):
	default:
		slog.WarnContext(ctx, "office location cache unavailable", "key", key, "error", err)
	}

	office, err := r.next.GetByOrganizationID(ctx, organizationID)
	if err != nil {
		return organization.OfficeLocation{}, err
	}

	payload, err := json.Marshal(office)
	if err != nil {
		return office, nil
	}
	if err := r.store.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "failed to cache office location", "key", key, "error", err)
	}

	return office, nil
}

func NewCachedOfficeLocationRepository(next organization.OfficeLocationRepository, store Store, prefix string, ttl time.Duration) organization.OfficeLocationRepository {
	return &cachedOfficeLocationRepository{
		next:   next,
		store:  store,
		prefix: prefix,
		ttl:    ttl,
	}
}
