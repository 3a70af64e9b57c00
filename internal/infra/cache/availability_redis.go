package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/therapy-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/therapy-scheduler/internal/models"
)

const (
	keyAllAvailability      = "availability:all"
	keyProviderAvailability = "availability:provider:"
)

// CachedRepository keeps active weekly availability in redis. Every other
// call goes straight to the wrapped repository. Cache failures are logged
// and never fail the request.
type CachedRepository struct {
	domain.Repository

	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewCachedRepository(
	next domain.Repository,
	rdb *redis.Client,
	ttl time.Duration,
	log *zap.Logger,
) *CachedRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedRepository{Repository: next, rdb: rdb, ttl: ttl, log: log}
}

func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func providerKey(id uuid.UUID) string {
	return keyProviderAvailability + id.String()
}

func (r *CachedRepository) ListWeeklyAvailability(
	ctx context.Context,
) ([]models.WeeklyAvailability, error) {
	return r.cached(ctx, keyAllAvailability, func() ([]models.WeeklyAvailability, error) {
		return r.Repository.ListWeeklyAvailability(ctx)
	})
}

func (r *CachedRepository) ListProviderAvailability(
	ctx context.Context,
	providerID uuid.UUID,
) ([]models.WeeklyAvailability, error) {
	return r.cached(ctx, providerKey(providerID), func() ([]models.WeeklyAvailability, error) {
		return r.Repository.ListProviderAvailability(ctx, providerID)
	})
}

func (r *CachedRepository) ReplaceWeeklyAvailability(
	ctx context.Context,
	providerID uuid.UUID,
	rows []models.WeeklyAvailability,
) error {
	if err := r.Repository.ReplaceWeeklyAvailability(ctx, providerID, rows); err != nil {
		return err
	}

	if err := r.rdb.Del(ctx, keyAllAvailability, providerKey(providerID)).Err(); err != nil {
		r.log.Warn("availability cache invalidation failed",
			zap.String("provider_id", providerID.String()),
			zap.Error(err),
		)
	}
	return nil
}

func (r *CachedRepository) cached(
	ctx context.Context,
	key string,
	load func() ([]models.WeeklyAvailability, error),
) ([]models.WeeklyAvailability, error) {

	raw, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var rows []models.WeeklyAvailability
		if jerr := json.Unmarshal(raw, &rows); jerr == nil {
			return rows, nil
		}
		r.log.Warn("availability cache entry unreadable", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		r.log.Warn("availability cache read failed", zap.String("key", key), zap.Error(err))
	}

	rows, err := load()
	if err != nil {
		return nil, err
	}

	if b, jerr := json.Marshal(rows); jerr == nil {
		if serr := r.rdb.Set(ctx, key, b, r.ttl).Err(); serr != nil {
			r.log.Warn("availability cache write failed", zap.String("key", key), zap.Error(serr))
		}
	}

	return rows, nil
}

var _ domain.Repository = (*CachedRepository)(nil)
