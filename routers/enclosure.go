package routers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	dbModels "zoo-service/db-utils/models"
	"zoo-service/models"
)

func GetEnclosures(c *gin.Context) {
	repo, ok := retrieveEnclosureRepository(c)
	if !ok {
		return
	}
	mu, ok := retrieveMutex(c)
	if !ok {
		return
	}
	mu.Lock()
	defer mu.Unlock()

	enclosures, err := repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	mappings := make([]*dbModels.Mapping, 0, len(enclosures))
	for _, enclosure := range enclosures {
		mappings = append(mappings, enclosure.ToMapping())
	}
	c.JSON(http.StatusOK, mappings)
}

func GetEnclosureCount(c *gin.Context) {
	repo, ok := retrieveEnclosureRepository(c)
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

func GetEnclosureByID(c *gin.Context) {
	repo, ok := retrieveEnclosureRepository(c)
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

	key := cacheKey("enclosure", id)
	if serveCached(c, rdb, key) {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	enclosure, err := repo.FindByID(id)
	if err != nil {
		respondRepositoryError(c, err, "Enclosure not found")
		return
	}
	mapping := enclosure.ToMapping()
	storeCached(c, rdb, ttl, key, mapping)
	c.JSON(http.StatusOK, mapping)
}

// GetEnclosureAnimals - the animals housed in one enclosure, they reference
// the enclosure by id and are listed in their serialized form.
func GetEnclosureAnimals(c *gin.Context) {
	enclosureRepo, ok := retrieveEnclosureRepository(c)
	if !ok {
		return
	}
	animalRepo, ok := retrieveAnimalRepository(c)
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

	// the enclosure itself must exist
	if _, err := enclosureRepo.FindByID(id); err != nil {
		respondRepositoryError(c, err, "Enclosure not found")
		return
	}
	animals, err := animalRepo.FindByEnclosure(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	mappings := make([]*dbModels.Mapping, 0, len(animals))
	for _, animal := range animals {
		mappings = append(mappings, animal.ToMapping())
	}
	c.JSON(http.StatusOK, mappings)
}

func CreateEnclosure(c *gin.Context) {
	repo, ok := retrieveEnclosureRepository(c)
	if !ok {
		return
	}
	mu, ok := retrieveMutex(c)
	if !ok {
		return
	}

	// incorrect input format handling
	var enclosure models.Enclosure
	if err := c.ShouldBindJSON(&enclosure); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mu.Lock()
	defer mu.Unlock()

	created, err := repo.Create(enclosure)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, created.ToMapping())
}

func ReplaceEnclosure(c *gin.Context) {
	repo, ok := retrieveEnclosureRepository(c)
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

	var enclosure models.Enclosure
	if err := c.ShouldBindJSON(&enclosure); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mu.Lock()
	defer mu.Unlock()

	replaced, err := repo.Replace(id, enclosure)
	if err != nil {
		respondRepositoryError(c, err, "Enclosure not found")
		return
	}
	dropCached(c, rdb, cacheKey("enclosure", id))
	c.JSON(http.StatusOK, replaced.ToMapping())
}

func DeleteEnclosure(c *gin.Context) {
	repo, ok := retrieveEnclosureRepository(c)
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
		respondRepositoryError(c, err, "Enclosure not found")
		return
	}
	dropCached(c, rdb, cacheKey("enclosure", id))
	c.Status(http.StatusNoContent)
}

// UpdateEnclosureVisitors - open or close one enclosure for visitors.
func UpdateEnclosureVisitors(c *gin.Context) {
	repo, ok := retrieveEnclosureRepository(c)
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

	// incorrect input format handling
	var input struct {
		OpenToVisitors bool `json:"open_to_visitors"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mu.Lock()
	defer mu.Unlock()

	updated, err := repo.UpdateVisitors(id, input.OpenToVisitors)
	if err != nil {
		respondRepositoryError(c, err, "Enclosure not found")
		return
	}
	dropCached(c, rdb, cacheKey("enclosure", id))
	c.JSON(http.StatusOK, updated.ToMapping())
}
