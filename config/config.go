package config

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the process-wide database handle, initialized once at startup.
var DB *gorm.DB

// Config holds the settings read from the environment at startup.
type Config struct {
	Port          string
	DSN           string
	AdminEmail    string
	AdminPassword string
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", "7000"),
		DSN:           getenv("MYSQL_DSN", "tripwheels:tripwheels@tcp(localhost:3306)/tripwheels?charset=utf8mb4&parseTime=True&loc=Local"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@tripwheels.com"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ConnectDatabase opens the MySQL connection and stores it in DB. The store
// is only reachable over the network, so a few retries cover slow container
// startup; a connection that never comes up is fatal.
func ConnectDatabase(cfg Config) error {
	var err error
	for i := 0; i < 10; i++ {
		DB, err = gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{})
		if err == nil {
			sqlDB, dbErr := DB.DB()
			if dbErr == nil {
				if pingErr := sqlDB.Ping(); pingErr == nil {
					logrus.Info("connected to MySQL database")
					return nil
				}
			}
		}
		logrus.WithError(err).Warn("retrying DB connection...")
		time.Sleep(3 * time.Second)
	}
	return err
}
