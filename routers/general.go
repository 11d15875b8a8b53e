package routers

import (
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"zoo-service/models"
)

func OptionsHandler(c *gin.Context) {
	// success
	c.Status(http.StatusNoContent)
}

// HealthHandler - probes the two backing connections, a lost connection
// degrades the status but the endpoint itself keeps answering 200.
func HealthHandler(c *gin.Context) {
	db, ok := retrieveDatabase(c)
	if !ok {
		return
	}
	rdb, _, ok := retrieveCache(c)
	if !ok {
		return
	}

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Unix(),
		Database:  "up",
		Cache:     "up",
	}
	if err := db.PingContext(c.Request.Context()); err != nil {
		response.Status = "degraded"
		response.Database = "down"
	}
	if err := rdb.Ping(c.Request.Context()).Err(); err != nil {
		response.Status = "degraded"
		response.Cache = "down"
	}
	c.JSON(http.StatusOK, response)
}

// TraceRecordRoute - echoes the record payload of a TRACE request on one of
// the collection paths, the body shape is not validated beyond being json.
func TraceRecordRoute(c *gin.Context) {
	var record map[string]any
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// correct header
	c.Header("Content-Type", "message/http")
	// send processed proxy list
	c.Header("Via", c.GetHeader("Via"))
	// send body as is
	c.JSON(http.StatusOK, record)
}

func ConnectHandler(c *gin.Context) {
	// parse the destination url
	remote, err := url.Parse("http://" + c.Request.Host)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Host URL"})
		return
	}

	// connecting to the destination server via tcp
	destConn, err := net.Dial("tcp", remote.Host)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to connect to destination"})
		return
	}

	// make it callers responsibility to close the connection
	clientConn, _, err := c.Writer.Hijack()
	if err != nil {
		destConn.Close()
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to hijack the connection"})
		return
	}

	log.Println("TCP connection established. Starting to forward traffic")

	// launch a go-routine to forward traffic
	go func() {
		defer clientConn.Close()
		defer destConn.Close()
		if _, err := io.Copy(destConn, clientConn); err != nil {
			log.Printf("Tunnel upstream copy ended: %v", err)
		}
	}()

	if _, err = io.Copy(clientConn, destConn); err != nil {
		log.Printf("Tunnel downstream copy ended: %v", err)
	}
	clientConn.Close()
	destConn.Close()
	log.Println("Connection closed")
}
