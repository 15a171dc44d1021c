package repository

import (
	"context"
	"encoding/json"

	"backend/internal/cache"
	"backend/internal/model"

	"go.uber.org/zap"
)

// cachedEnterpriseRepository decorates an EnterpriseRepository with
// cache-aside reads and invalidate-on-write. Cache failures are logged
// and the request falls through to the store; they never fail a call.
type cachedEnterpriseRepository struct {
	inner EnterpriseRepository
	cache *cache.Cache
	log   *zap.Logger
}

// NewCachedEnterpriseRepository wraps repo with the enterprise cache
func NewCachedEnterpriseRepository(repo EnterpriseRepository, c *cache.Cache, log *zap.Logger) EnterpriseRepository {
	return &cachedEnterpriseRepository{inner: repo, cache: c, log: log}
}

func (r *cachedEnterpriseRepository) GetByID(ctx context.Context, id string) (*model.Enterprise, error) {
	key := cache.Key(cache.KeyPrefixEnterprise, id)

	var cached model.Enterprise
	hit, err := r.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		r.log.Warn("enterprise cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return &cached, nil
	}

	enterprise, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.SetJSON(ctx, key, enterprise, cache.TTLEnterprise); err != nil {
		r.log.Warn("enterprise cache write failed", zap.String("key", key), zap.Error(err))
	}

	return enterprise, nil
}

func (r *cachedEnterpriseRepository) List(ctx context.Context, query EnterpriseListQuery) (*EnterpriseList, error) {
	key := r.listKey(query)

	var cached EnterpriseList
	hit, err := r.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		r.log.Warn("enterprise list cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return &cached, nil
	}

	list, err := r.inner.List(ctx, query)
	if err != nil {
		return nil, err
	}

	if err := r.cache.SetJSON(ctx, key, list, cache.TTLEnterpriseList); err != nil {
		r.log.Warn("enterprise list cache write failed", zap.String("key", key), zap.Error(err))
	}

	return list, nil
}

func (r *cachedEnterpriseRepository) Create(ctx context.Context, enterprise *model.Enterprise) error {
	if err := r.inner.Create(ctx, enterprise); err != nil {
		return err
	}
	r.invalidate(ctx, enterprise.ID.String())
	return nil
}

func (r *cachedEnterpriseRepository) Update(ctx context.Context, enterprise *model.Enterprise) error {
	if err := r.inner.Update(ctx, enterprise); err != nil {
		return err
	}
	r.invalidate(ctx, enterprise.ID.String())
	return nil
}

func (r *cachedEnterpriseRepository) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

// invalidate drops the single-entity key and the whole list namespace,
// so any write forces the next list read back to the store.
func (r *cachedEnterpriseRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.Delete(ctx, cache.Key(cache.KeyPrefixEnterprise, id)); err != nil {
		r.log.Warn("enterprise cache invalidation failed", zap.String("id", id), zap.Error(err))
	}
	if err := r.cache.DeletePrefix(ctx, cache.KeyPrefixEnterpriseList); err != nil {
		r.log.Warn("enterprise list cache invalidation failed", zap.Error(err))
	}
}

func (r *cachedEnterpriseRepository) listKey(query EnterpriseListQuery) string {
	raw, _ := json.Marshal(query)
	return cache.KeyPrefixEnterpriseList + string(raw)
}
