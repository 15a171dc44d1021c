package repository

import (
	"context"
	"strings"
	"testing"

	"backend/internal/cache"
	"backend/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type cacheFixture struct {
	db    *gorm.DB
	redis *miniredis.Miniredis
	repo  EnterpriseRepository
}

func newCacheFixture(t *testing.T) *cacheFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Enterprise{}))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return &cacheFixture{
		db:    db,
		redis: mr,
		repo:  NewCachedEnterpriseRepository(NewEnterpriseRepository(db), cache.New(rdb), zap.NewNop()),
	}
}

func (f *cacheFixture) seedEnterprise(t *testing.T, name, code string) *model.Enterprise {
	t.Helper()
	enterprise := &model.Enterprise{
		Name:              name,
		UnifiedSocialCode: code,
		LegalPerson:       "王强",
	}
	require.NoError(t, f.repo.Create(context.Background(), enterprise))
	return enterprise
}

func (f *cacheFixture) listCacheKeys(prefix string) []string {
	var matched []string
	for _, key := range f.redis.Keys() {
		if strings.HasPrefix(key, prefix) {
			matched = append(matched, key)
		}
	}
	return matched
}

func TestGetByIDServesFromCache(t *testing.T) {
	f := newCacheFixture(t)
	ctx := context.Background()
	enterprise := f.seedEnterprise(t, "杭州示例网络有限公司", "91330000MA27X1GF8B")

	got, err := f.repo.GetByID(ctx, enterprise.ID.String())
	require.NoError(t, err)
	assert.Equal(t, enterprise.Name, got.Name)
	assert.True(t, f.redis.Exists(cache.KeyPrefixEnterprise+enterprise.ID.String()))

	// Change the row behind the cache's back: the stale name proves the
	// second read never touched the store.
	require.NoError(t, f.db.Model(&model.Enterprise{}).
		Where("id = ?", enterprise.ID).
		Update("name", "改名了").Error)

	got, err = f.repo.GetByID(ctx, enterprise.ID.String())
	require.NoError(t, err)
	assert.Equal(t, enterprise.Name, got.Name)
}

func TestUpdateInvalidatesEntityCache(t *testing.T) {
	f := newCacheFixture(t)
	ctx := context.Background()
	enterprise := f.seedEnterprise(t, "深圳示例电子有限公司", "91440300MA5EY3K98C")

	_, err := f.repo.GetByID(ctx, enterprise.ID.String())
	require.NoError(t, err)
	require.True(t, f.redis.Exists(cache.KeyPrefixEnterprise+enterprise.ID.String()))

	enterprise.Name = "深圳示例电子集团有限公司"
	require.NoError(t, f.repo.Update(ctx, enterprise))
	assert.False(t, f.redis.Exists(cache.KeyPrefixEnterprise+enterprise.ID.String()))

	got, err := f.repo.GetByID(ctx, enterprise.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "深圳示例电子集团有限公司", got.Name)
}

func TestListCacheInvalidatedOnWrite(t *testing.T) {
	f := newCacheFixture(t)
	ctx := context.Background()
	f.seedEnterprise(t, "广州示例物流有限公司", "91440100MA9W2T1D3E")

	query := EnterpriseListQuery{Page: 1, PageSize: 20}
	list, err := f.repo.List(ctx, query)
	require.NoError(t, err)
	assert.EqualValues(t, 1, list.Total)
	require.NotEmpty(t, f.listCacheKeys(cache.KeyPrefixEnterpriseList))

	// Distinct filter combinations get distinct keys.
	_, err = f.repo.List(ctx, EnterpriseListQuery{Page: 1, PageSize: 20, Keyword: "物流"})
	require.NoError(t, err)
	assert.Len(t, f.listCacheKeys(cache.KeyPrefixEnterpriseList), 2)

	f.seedEnterprise(t, "成都示例食品有限公司", "91510100MA6CJ4R67F")
	assert.Empty(t, f.listCacheKeys(cache.KeyPrefixEnterpriseList))

	list, err = f.repo.List(ctx, query)
	require.NoError(t, err)
	assert.EqualValues(t, 2, list.Total)
}

func TestDeleteSoftDeletesAndInvalidates(t *testing.T) {
	f := newCacheFixture(t)
	ctx := context.Background()
	enterprise := f.seedEnterprise(t, "武汉示例建材有限公司", "91420100MA4KX8B51G")

	_, err := f.repo.GetByID(ctx, enterprise.ID.String())
	require.NoError(t, err)

	require.NoError(t, f.repo.Delete(ctx, enterprise.ID.String()))
	assert.False(t, f.redis.Exists(cache.KeyPrefixEnterprise+enterprise.ID.String()))

	_, err = f.repo.GetByID(ctx, enterprise.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The tombstoned row is still there for the restore path.
	var kept model.Enterprise
	require.NoError(t, f.db.Unscoped().First(&kept, "id = ?", enterprise.ID).Error)
	assert.True(t, kept.DeletedAt.Valid)

	assert.ErrorIs(t, f.repo.Delete(ctx, enterprise.ID.String()), gorm.ErrRecordNotFound)
}
