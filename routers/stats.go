package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStats - zoo wide report assembled by the raw reporting queries, served
// as one ordered mapping.
func GetStats(c *gin.Context) {
	repo, ok := retrieveStatsRepository(c)
	if !ok {
		return
	}
	mu, ok := retrieveMutex(c)
	if !ok {
		return
	}
	mu.Lock()
	defer mu.Unlock()

	stats, err := repo.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
