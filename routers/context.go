package routers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"zoo-service/db-utils/repository"
)

// retrieve middleware objects, a 502 means ApiMiddleware was not installed

func retrieveMutex(c *gin.Context) (*sync.Mutex, bool) {
	mu, ok := c.MustGet("mutexObject").(*sync.Mutex)
	if !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to retrieve mutex object"})
	}
	return mu, ok
}

func retrieveDatabase(c *gin.Context) (*sql.DB, bool) {
	db, ok := c.MustGet("databaseObject").(*sql.DB)
	if !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to retrieve database object"})
	}
	return db, ok
}

func retrieveAnimalRepository(c *gin.Context) (repository.AnimalRepository, bool) {
	rp, ok := c.MustGet("animalRepository").(repository.AnimalRepository)
	if !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to retrieve animal repository"})
	}
	return rp, ok
}

func retrieveEnclosureRepository(c *gin.Context) (repository.EnclosureRepository, bool) {
	rp, ok := c.MustGet("enclosureRepository").(repository.EnclosureRepository)
	if !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to retrieve enclosure repository"})
	}
	return rp, ok
}

func retrieveZookeeperRepository(c *gin.Context) (repository.ZookeeperRepository, bool) {
	rp, ok := c.MustGet("zookeeperRepository").(repository.ZookeeperRepository)
	if !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to retrieve zookeeper repository"})
	}
	return rp, ok
}

func retrieveStatsRepository(c *gin.Context) (repository.StatsRepository, bool) {
	rp, ok := c.MustGet("statsRepository").(repository.StatsRepository)
	if !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to retrieve stats repository"})
	}
	return rp, ok
}

func retrieveCache(c *gin.Context) (*redis.Client, time.Duration, bool) {
	rdb, ok := c.MustGet("cacheObject").(*redis.Client)
	if !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to retrieve cache object"})
		return nil, 0, false
	}
	ttl, ok := c.MustGet("cacheTTL").(time.Duration)
	if !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to retrieve cache ttl"})
		return nil, 0, false
	}
	return rdb, ttl, true
}

func parseIDParam(c *gin.Context) (uint, bool) {
	// retrieving URL id param
	id, err := strconv.Atoi(c.Param("id"))
	// invalid id
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID must be a number"})
		return 0, false
	}
	return uint(id), true
}

// respondRepositoryError - translate a repository failure into a status code,
// lookup misses become a 404 with a stable message.
func respondRepositoryError(c *gin.Context, err error, notFoundMessage string) {
	var notFound *repository.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
