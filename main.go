package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vivekkumar001-ops/TripWheels/config"
	"github.com/vivekkumar001-ops/TripWheels/models"
	"github.com/vivekkumar001-ops/TripWheels/routes"
	"github.com/vivekkumar001-ops/TripWheels/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	logrus.Info("connecting to MySQL...")
	if err := config.ConnectDatabase(cfg); err != nil {
		logrus.WithError(err).Fatal("DB connection failed")
	}
	db := config.DB

	if err := migrate(db); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	utils.SeedAdminUser(db, cfg.AdminEmail, cfg.AdminPassword)
	utils.SeedDummyVehicles(db)

	r := routes.SetupRouter(db, "templates/*.html")

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.WithFields(logrus.Fields{
		"url":       "http://localhost" + addr,
		"login":     "http://localhost" + addr + "/login",
		"register":  "http://localhost" + addr + "/register",
		"dashboard": "http://localhost" + addr + "/dashboard",
		"admin":     cfg.AdminEmail,
	}).Info("TripWheels server started")

	if err := r.Run(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Booking{},
		&models.Contact{},
		&models.Session{},
	)
}
