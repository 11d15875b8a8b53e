package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	ginratelimit "github.com/ljahier/gin-ratelimit"

	"zoo-service/middleware"
	"zoo-service/routers"
	"zoo-service/service"
	"zoo-service/utils"
)

// collection paths that answer TRACE requests
func traceablePath(path string) bool {
	switch path {
	case "/animals", "/enclosures", "/zookeepers":
		return true
	}
	return false
}

func main() {
	// load configuration
	_cfg := utils.LoadConfiguration("config.json")
	// startup databases and repositories
	service := service.NewService(&_cfg)

	// get an engine instance
	r := gin.Default()
	r.ForwardedByClientIP = true
	r.SetTrustedProxies([]string{"127.0.0.1"})

	// middleware
	r.Use(middleware.CORSMiddleware())                                       // preflight requests
	r.Use(middleware.RequestIDMiddleware())                                  // response tracing
	tb := ginratelimit.NewTokenBucket(_cfg.RequestsPerMinute, 1*time.Minute) // rate limiting
	r.Use(ginratelimit.RateLimitByIP(tb))
	// shared objects for the routers
	r.Use(middleware.ApiMiddleware(
		service.Mutex,
		service.SQLClient,
		service.AnimalRepository,
		service.EnclosureRepository,
		service.ZookeeperRepository,
		service.StatsRepository,
		service.RedisClient,
		time.Duration(_cfg.CacheTTL)*time.Second,
	))

	// middleware for connect and trace handlers
	r.Use(func(c *gin.Context) {
		if c.Request.Method == "CONNECT" {
			routers.ConnectHandler(c)
		} else if c.Request.Method == "TRACE" && traceablePath(c.Request.URL.Path) {
			routers.TraceRecordRoute(c)
		} else {
			c.Next()
		}
	})
	r.OPTIONS("/*path", routers.OptionsHandler) // all URLs

	// animals
	r.GET("/animals", routers.GetAnimals)
	r.HEAD("/animals", routers.GetAnimalCount)
	r.GET("/animals/:id", routers.GetAnimalByID)
	r.POST("/animals", routers.CreateAnimal)
	r.PUT("/animals/:id", routers.ReplaceAnimal)
	r.DELETE("/animals/:id", routers.DeleteAnimal)
	r.PATCH("/animals/:id/enclosure", routers.MoveAnimal) // change only the enclosure reference

	// enclosures
	r.GET("/enclosures", routers.GetEnclosures)
	r.HEAD("/enclosures", routers.GetEnclosureCount)
	r.GET("/enclosures/:id", routers.GetEnclosureByID)
	r.GET("/enclosures/:id/animals", routers.GetEnclosureAnimals)
	r.POST("/enclosures", routers.CreateEnclosure)
	r.PUT("/enclosures/:id", routers.ReplaceEnclosure)
	r.DELETE("/enclosures/:id", routers.DeleteEnclosure)
	r.PATCH("/enclosures/:id/visitors", routers.UpdateEnclosureVisitors) // open or close for visitors

	// zookeepers
	r.GET("/zookeepers", routers.GetZookeepers)
	r.HEAD("/zookeepers", routers.GetZookeeperCount)
	r.GET("/zookeepers/:id", routers.GetZookeeperByID)
	r.GET("/zookeepers/:id/enclosures", routers.GetZookeeperEnclosures)
	r.POST("/zookeepers", routers.CreateZookeeper)
	r.PUT("/zookeepers/:id", routers.ReplaceZookeeper)
	r.DELETE("/zookeepers/:id", routers.DeleteZookeeper)

	// service wide
	r.GET("/health", routers.HealthHandler)
	r.GET("/stats", routers.GetStats)

	// setup database health checking loop
	go utils.DataBaseHealthPollingLoop(service.PostgresClient, time.Duration(_cfg.DBHealthInterval)*time.Second)
	// run the server
	err := r.Run(":" + _cfg.ServerPort)
	if err != nil {
		log.Fatal(err)
	}
}
