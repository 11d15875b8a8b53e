package dbutils

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"zoo-service/db-utils/migrations"
)

func connectionString(DBUser, DBPassword, DBHost, DBName, DBSSLMode, DBPort string) string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=%s", DBUser, DBPassword, DBHost, DBPort, DBName, DBSSLMode)
}

func Connect(DBUser, DBPassword, DBHost, DBName, DBSSLMode, DBPort string) *gorm.DB {
	// construct a connection string
	connStr := connectionString(DBUser, DBPassword, DBHost, DBName, DBSSLMode, DBPort)
	// connect to database
	var db *gorm.DB
	var err error

	// retry mechanism
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(postgres.Open(connStr), &gorm.Config{})
		if err == nil {
			fmt.Println("Connected to the database")
			break
		}

		log.Printf("Failed to connect to database, attempt %d/%d: %v", i+1, maxRetries, err)
		time.Sleep(1 * time.Second) // wait for 1 second before retrying
	}

	if err != nil {
		log.Fatal("Could not connect to the database after several attempts: ", err)
	}

	// creating tables if not exist
	err = migrations.MigrateAllTables(db)
	if err != nil {
		log.Fatal(err)
	}
	// return database object reference
	return db
}

// ConnectSQL - separate plain database/sql handle over the pq driver, used by
// the raw reporting queries.
func ConnectSQL(DBUser, DBPassword, DBHost, DBName, DBSSLMode, DBPort string) *sql.DB {
	connStr := connectionString(DBUser, DBPassword, DBHost, DBName, DBSSLMode, DBPort)

	var db *sql.DB
	var err error

	// retry mechanism
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", connStr)
		if err == nil {
			err = db.Ping()
		}
		if err == nil {
			fmt.Println("Connected to the reporting database handle")
			break
		}

		log.Printf("Failed to open reporting handle, attempt %d/%d: %v", i+1, maxRetries, err)
		time.Sleep(1 * time.Second)
	}

	if err != nil {
		log.Fatal("Could not open the reporting database handle after several attempts: ", err)
	}
	return db
}
