package middleware

import (
	"database/sql"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"zoo-service/db-utils/repository"
)

// ApiMiddleware - hangs the shared mutex, the database handle, the
// repositories and the cache client on the context for routers to use.
func ApiMiddleware(
	mu *sync.Mutex,
	db *sql.DB,
	animals repository.AnimalRepository,
	enclosures repository.EnclosureRepository,
	zookeepers repository.ZookeeperRepository,
	stats repository.StatsRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("mutexObject", mu)
		c.Set("databaseObject", db)
		c.Set("animalRepository", animals)
		c.Set("enclosureRepository", enclosures)
		c.Set("zookeeperRepository", zookeepers)
		c.Set("statsRepository", stats)
		c.Set("cacheObject", cache)
		c.Set("cacheTTL", cacheTTL)
		c.Next()
	}
}
