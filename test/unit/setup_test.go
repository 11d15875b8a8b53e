package unit

import (
	"database/sql"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"zoo-service/db-utils/repository"
	"zoo-service/middleware"
)

// fixed record timestamp, keeps the expected response bodies stable
var testTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// newTestEngine - engine wired the way main wires it but against mock
// repositories. The database handle and the cache client point at closed
// ports, so cache lookups always miss and health probes see the connections
// as down.
func newTestEngine(
	animals repository.AnimalRepository,
	enclosures repository.EnclosureRepository,
	zookeepers repository.ZookeeperRepository,
	stats repository.StatsRepository,
) *gin.Engine {
	gin.SetMode(gin.TestMode)

	var mu sync.Mutex
	db, _ := sql.Open("postgres", "user=zoo host=localhost port=1 dbname=zoo sslmode=disable")
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:1", DialTimeout: time.Second})

	r := gin.Default()
	r.Use(middleware.ApiMiddleware(&mu, db, animals, enclosures, zookeepers, stats, rdb, time.Minute))
	return r
}
