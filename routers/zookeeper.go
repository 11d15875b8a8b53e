package routers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	dbModels "zoo-service/db-utils/models"
	"zoo-service/models"
)

func GetZookeepers(c *gin.Context) {
	repo, ok := retrieveZookeeperRepository(c)
	if !ok {
		return
	}
	mu, ok := retrieveMutex(c)
	if !ok {
		return
	}
	mu.Lock()
	defer mu.Unlock()

	zookeepers, err := repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	mappings := make([]*dbModels.Mapping, 0, len(zookeepers))
	for _, zookeeper := range zookeepers {
		mappings = append(mappings, zookeeper.ToMapping())
	}
	c.JSON(http.StatusOK, mappings)
}

func GetZookeeperCount(c *gin.Context) {
	repo, ok := retrieveZookeeperRepository(c)
	if !ok {
		return
	}
	mu, ok := retrieveMutex(c)
	if !ok {
		return
	}
	mu.Lock()
	defer mu.Unlock()

	count, err := repo.GetCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("X-Item-Length", strconv.FormatInt(count, 10))
	c.Status(http.StatusOK)
}

func GetZookeeperByID(c *gin.Context) {
	repo, ok := retrieveZookeeperRepository(c)
	if !ok {
		return
	}
	mu, ok := retrieveMutex(c)
	if !ok {
		return
	}
	rdb, ttl, ok := retrieveCache(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	key := cacheKey("zookeeper", id)
	if serveCached(c, rdb, key) {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	zookeeper, err := repo.FindByID(id)
	if err != nil {
		respondRepositoryError(c, err, "Zookeeper not found")
		return
	}
	mapping := zookeeper.ToMapping()
	storeCached(c, rdb, ttl, key, mapping)
	c.JSON(http.StatusOK, mapping)
}

// GetZookeeperEnclosures - the enclosures a keeper works, derived through the
// animals assigned to him.
func GetZookeeperEnclosures(c *gin.Context) {
	repo, ok := retrieveZookeeperRepository(c)
	if !ok {
		return
	}
	mu, ok := retrieveMutex(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	enclosures, err := repo.FindEnclosures(id)
	if err != nil {
		respondRepositoryError(c, err, "Zookeeper not found")
		return
	}
	mappings := make([]*dbModels.Mapping, 0, len(enclosures))
	for _, enclosure := range enclosures {
		mappings = append(mappings, enclosure.ToMapping())
	}
	c.JSON(http.StatusOK, mappings)
}

func CreateZookeeper(c *gin.Context) {
	repo, ok := retrieveZookeeperRepository(c)
	if !ok {
		return
	}
	mu, ok := retrieveMutex(c)
	if !ok {
		return
	}

	// incorrect input format handling
	var zookeeper models.Zookeeper
	if err := c.ShouldBindJSON(&zookeeper); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mu.Lock()
	defer mu.Unlock()

	created, err := repo.Create(zookeeper)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, created.ToMapping())
}

func ReplaceZookeeper(c *gin.Context) {
	repo, ok := retrieveZookeeperRepository(c)
	if !ok {
		return
	}
	mu, ok := retrieveMutex(c)
	if !ok {
		return
	}
	rdb, _, ok := retrieveCache(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var zookeeper models.Zookeeper
	if err := c.ShouldBindJSON(&zookeeper); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mu.Lock()
	defer mu.Unlock()

	replaced, err := repo.Replace(id, zookeeper)
	if err != nil {
		respondRepositoryError(c, err, "Zookeeper not found")
		return
	}
	dropCached(c, rdb, cacheKey("zookeeper", id))
	c.JSON(http.StatusOK, replaced.ToMapping())
}

func DeleteZookeeper(c *gin.Context) {
	repo, ok := retrieveZookeeperRepository(c)
	if !ok {
		return
	}
	mu, ok := retrieveMutex(c)
	if !ok {
		return
	}
	rdb, _, ok := retrieveCache(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	_, err := repo.Delete(id)
	if err != nil {
		respondRepositoryError(c, err, "Zookeeper not found")
		return
	}
	dropCached(c, rdb, cacheKey("zookeeper", id))
	c.Status(http.StatusNoContent)
}
