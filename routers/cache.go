package routers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	dbModels "zoo-service/db-utils/models"
)

func cacheKey(entity string, id uint) string {
	return fmt.Sprintf("%s:%d", entity, id)
}

// serveCached - writes the cached mapping json when the key is still there,
// misses and cache errors both fall through to the database path.
func serveCached(c *gin.Context, rdb *redis.Client, key string) bool {
	cached, err := rdb.Get(c.Request.Context(), key).Bytes()
	if err != nil {
		return false
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
	return true
}

// storeCached - keeps the serialized mapping around for the configured ttl, a
// failed write only costs the next request a database read.
func storeCached(c *gin.Context, rdb *redis.Client, ttl time.Duration, key string, mapping *dbModels.Mapping) {
	body, err := json.Marshal(mapping)
	if err != nil {
		return
	}
	rdb.Set(c.Request.Context(), key, body, ttl)
}

// dropCached - invalidates after a write, the next read repopulates.
func dropCached(c *gin.Context, rdb *redis.Client, key string) {
	rdb.Del(c.Request.Context(), key)
}
