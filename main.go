package main

import (
	"time"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/config"
	chatControllers "github.com/QUANG221222/website-selling-cosmetics-v2-api/controllers/chat"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/metrics"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/models"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/providers"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("starting beautify api")

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("connect database")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Cosmetic{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Address{},
		&models.ChatRoom{},
		&models.ChatMessage{},
	); err != nil {
		logrus.WithError(err).Fatal("auto migrate")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.WebsiteDomain},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	deps := routes.Dependencies{
		DB:      db,
		Config:  cfg,
		Mailer:  providers.NewBrevoMailer(cfg.BrevoAPIKey, cfg.BrevoSenderName, cfg.BrevoSenderEmail),
		VietQR:  providers.NewVietQRClient(cfg.VietQRClientID, cfg.VietQRAPIKey, cfg.BankAccountNumber, cfg.BankAccountName, cfg.BankBin),
		Metrics: metrics.NewOrderMetrics(),
		ChatHub: chatControllers.NewHub(),
	}

	routes.SetupRoutes(r, deps)

	logrus.WithField("port", cfg.Port).Info("server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
