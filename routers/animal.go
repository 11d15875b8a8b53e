package routers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	dbModels "zoo-service/db-utils/models"
	"zoo-service/models"
)

func GetAnimals(c *gin.Context) {
	repo, ok := retrieveAnimalRepository(c)
	if !ok {
		return
	}
	mu, ok := retrieveMutex(c)
	if !ok {
		return
	}
	mu.Lock()
	defer mu.Unlock()

	// select all active records from the animals table
	animals, err := repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// convert the records into their serialized form
	mappings := make([]*dbModels.Mapping, 0, len(animals))
	for _, animal := range animals {
		mappings = append(mappings, animal.ToMapping())
	}
	// return all animals
	c.JSON(http.StatusOK, mappings)
}

func GetAnimalCount(c *gin.Context) {
	repo, ok := retrieveAnimalRepository(c)
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
	// set the custom item length header to number of records in DB
	c.Header("X-Item-Length", strconv.FormatInt(count, 10))
	c.Status(http.StatusOK)
}

func GetAnimalByID(c *gin.Context) {
	repo, ok := retrieveAnimalRepository(c)
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

	// serve the cached mapping when we still have it
	key := cacheKey("animal", id)
	if serveCached(c, rdb, key) {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	animal, err := repo.FindByID(id)
	if err != nil {
		respondRepositoryError(c, err, "Animal not found")
		return
	}
	mapping := animal.ToMapping()
	storeCached(c, rdb, ttl, key, mapping)
	// send the requested animal
	c.JSON(http.StatusOK, mapping)
}

func CreateAnimal(c *gin.Context) {
	repo, ok := retrieveAnimalRepository(c)
	if !ok {
		return
	}
	mu, ok := retrieveMutex(c)
	if !ok {
		return
	}

	// incorrect input format handling
	var animal models.Animal
	if err := c.ShouldBindJSON(&animal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mu.Lock()
	defer mu.Unlock()

	created, err := repo.Create(animal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// return created animal
	c.JSON(http.StatusOK, created.ToMapping())
}

func ReplaceAnimal(c *gin.Context) {
	repo, ok := retrieveAnimalRepository(c)
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
	var animal models.Animal
	if err := c.ShouldBindJSON(&animal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mu.Lock()
	defer mu.Unlock()

	replaced, err := repo.Replace(id, animal)
	if err != nil {
		respondRepositoryError(c, err, "Animal not found")
		return
	}
	// drop any cached copy of the old record
	dropCached(c, rdb, cacheKey("animal", id))
	c.JSON(http.StatusOK, replaced.ToMapping())
}

func DeleteAnimal(c *gin.Context) {
	repo, ok := retrieveAnimalRepository(c)
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
		respondRepositoryError(c, err, "Animal not found")
		return
	}
	dropCached(c, rdb, cacheKey("animal", id))
	c.Status(http.StatusNoContent)
}

// MoveAnimal - change only the enclosure reference of one animal.
func MoveAnimal(c *gin.Context) {
	repo, ok := retrieveAnimalRepository(c)
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
		EnclosureID uint `json:"enclosure_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mu.Lock()
	defer mu.Unlock()

	moved, err := repo.UpdateEnclosure(id, input.EnclosureID)
	if err != nil {
		respondRepositoryError(c, err, "Animal not found")
		return
	}
	dropCached(c, rdb, cacheKey("animal", id))
	c.JSON(http.StatusOK, moved.ToMapping())
}
