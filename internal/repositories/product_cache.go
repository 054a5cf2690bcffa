package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/logger"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// setIfGeneration writes the entry only while the product's generation is
// still the one observed before the database read.
var setIfGeneration = redis.NewScript(`
	local current = tonumber(redis.call('GET', KEYS[2]) or '0')
	if current ~= tonumber(ARGV[2]) then
		return 0
	end
	if tonumber(ARGV[3]) > 0 then
		redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
	else
		redis.call('SET', KEYS[1], ARGV[1])
	end
	return 1
`)

// minGenerationTTL keeps generation counters around longer than any in-flight read.
const minGenerationTTL = time.Minute

// ProductCacheRepository caches product reads in Redis.
// Every eviction bumps a per-product generation; Set is refused when the
// generation moved since the caller read it, so a read that started before an
// eviction cannot put the old row back.
type ProductCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached products
}

// NewProductCacheRepository creates a new repository instance with the given TTL
func NewProductCacheRepository(client *redis.Client, expiration time.Duration) *ProductCacheRepository {
	return &ProductCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func productKey(productID uuid.UUID) string {
	return fmt.Sprintf("product:%s", productID)
}

func generationKey(productID uuid.UUID) string {
	return fmt.Sprintf("product:%s:gen", productID)
}

func (r *ProductCacheRepository) generationTTL() time.Duration {
	if r.exp > minGenerationTTL {
		return r.exp
	}
	return minGenerationTTL
}

// Generation returns the product's current cache generation, 0 when it was never evicted.
func (r *ProductCacheRepository) Generation(ctx context.Context, productID uuid.UUID) (int64, error) {
	gen, err := r.client.Get(ctx, generationKey(productID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return gen, err
}

// Get returns the cached product, or nil on a cache miss.
func (r *ProductCacheRepository) Get(ctx context.Context, productID uuid.UUID) (*models.ProductDB, error) {
	key := productKey(productID)

	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		logger.Log.Debugw("cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		logger.Log.Infow("key", key, "result", nil, "error", err)
		return nil, err
	}

	var product models.ProductDB
	if err := json.Unmarshal(val, &product); err != nil {
		logger.Log.Infow("key", key, "value", string(val), "result", nil, "error", err)
		return nil, err
	}

	logger.Log.Infow("key", key, "result", product.ProductID, "error", nil)
	return &product, nil
}

// Set caches product with the repository TTL unless the product was evicted
// after gen was read. stored reports whether the entry was written.
func (r *ProductCacheRepository) Set(ctx context.Context, product *models.ProductDB, gen int64) (stored bool, err error) {
	key := productKey(product.ProductID)

	data, err := json.Marshal(product)
	if err != nil {
		return false, err
	}
	res, err := setIfGeneration.Run(ctx, r.client,
		[]string{key, generationKey(product.ProductID)},
		data, gen, r.exp.Milliseconds(),
	).Int()

	logger.Log.Infow("key", key, "generation", gen, "result", res, "error", err)
	return res == 1, err
}

// Delete evicts the product so the next read goes to the database,
// and bumps its generation so reads already in flight are not cached.
func (r *ProductCacheRepository) Delete(ctx context.Context, productID uuid.UUID) error {
	key := productKey(productID)
	genKey := generationKey(productID)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, r.generationTTL())
		pipe.Del(ctx, key)
		return nil
	})

	logger.Log.Infow("key", key, "result", "deleted", "error", err)
	return err
}
