package postgres

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/quickcart/payments/internal/config"
	"github.com/quickcart/payments/internal/infrastructure/logger"
	"github.com/quickcart/payments/internal/infrastructure/postgres/models"
)

func MustInitPaymentDB(cfg *config.PaymentConfig) *gorm.DB {
	dsn := cfg.PaymentDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init payment db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.PaymentModel{}, &logger.WebhookEventLog{})

	return db
}

func MustInitOrderDB(cfg *config.OrderConfig) *gorm.DB {
	dsn := cfg.OrderDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init order db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.OrderModel{}, &models.OrderItemModel{}, &logger.WebhookEventLog{})

	return db
}
