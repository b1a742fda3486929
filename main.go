package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/efeurhobobullish/SwiftBuy/config"
	"github.com/efeurhobobullish/SwiftBuy/controllers"
	_ "github.com/efeurhobobullish/SwiftBuy/docs"
	"github.com/efeurhobobullish/SwiftBuy/middleware"
	"github.com/efeurhobobullish/SwiftBuy/repositories"
	"github.com/efeurhobobullish/SwiftBuy/routes"
	"github.com/efeurhobobullish/SwiftBuy/services"
)

// @title SwiftBuy API
// @version 1.0
// @description Storefront API: product catalog, session carts, checkout
// @BasePath /
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectRedis()
	defer config.CloseRedis()

	// Explicit wiring: the stores are created once here and handed down,
	// no package-level singletons.
	catalog := repositories.NewCatalogRepository()
	carts := repositories.NewCartRepository()
	orders := repositories.NewOrderRepository()
	sessions := repositories.NewSessionRepository(config.RedisClient, config.AppConfig.SessionTTL)

	productSvc := services.NewProductService(catalog)
	checkoutSvc := services.NewCheckoutService(nil)
	authSvc := services.NewAuthService(sessions)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, &routes.Controllers{
		Auth:     controllers.NewAuthController(authSvc),
		Product:  controllers.NewProductController(productSvc),
		Cart:     controllers.NewCartController(carts, productSvc),
		Checkout: controllers.NewCheckoutController(checkoutSvc, carts, orders, authSvc),
		Order:    controllers.NewOrderController(orders),
	})

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
