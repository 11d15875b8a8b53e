package service

import (
	"database/sql"
	"sync"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	dbutils "zoo-service/db-utils"
	"zoo-service/db-utils/repository"
	"zoo-service/utils"
)

// Service - owns the database and cache connections and the repositories the
// routers work against. Routers receive them through ApiMiddleware.
type Service struct {
	Config              *utils.Config
	AnimalRepository    repository.AnimalRepository
	EnclosureRepository repository.EnclosureRepository
	ZookeeperRepository repository.ZookeeperRepository
	StatsRepository     repository.StatsRepository
	PostgresClient      *gorm.DB
	SQLClient           *sql.DB
	RedisClient         *redis.Client
	Mutex               *sync.Mutex
}

func NewService(config *utils.Config) *Service {
	// DB mutex shared by all request handlers
	var mu sync.Mutex
	// setup db connection
	db := dbutils.Connect(config.DBUser, config.DBPassword, config.DBHost, config.DBName, config.DBSSLMode, config.DBPort)
	// separate plain handle for the reporting queries
	sqlDB := dbutils.ConnectSQL(config.DBUser, config.DBPassword, config.DBHost, config.DBName, config.DBSSLMode, config.DBPort)
	// setup cache connection
	rdb := dbutils.ConnectRedis(config.RedisAddress, config.RedisPassword, config.RedisDB)
	// setup repositories
	return &Service{
		Config:              config,
		AnimalRepository:    repository.NewAnimalRepositoryImpl(db),
		EnclosureRepository: repository.NewEnclosureRepositoryImpl(db),
		ZookeeperRepository: repository.NewZookeeperRepositoryImpl(db),
		StatsRepository:     repository.NewStatsRepositoryImpl(sqlDB),
		PostgresClient:      db,
		SQLClient:           sqlDB,
		RedisClient:         rdb,
		Mutex:               &mu,
	}
}
