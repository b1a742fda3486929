package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/efeurhobobullish/SwiftBuy/config"
	"github.com/efeurhobobullish/SwiftBuy/controllers"
	_ "github.com/efeurhobobullish/SwiftBuy/docs"
	"github.com/efeurhobobullish/SwiftBuy/middleware"
	"github.com/efeurhobobullish/SwiftBuy/repositories"
	"github.com/efeurhobobullish/SwiftBuy/routes"
	"github.com/efeurhobobullish/SwiftBuy/services"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.ConnectRedis()

		catalog := repositories.NewCatalogRepository()
		carts := repositories.NewCartRepository()
		orders := repositories.NewOrderRepository()
		sessions := repositories.NewSessionRepository(config.RedisClient, config.AppConfig.SessionTTL)

		productSvc := services.NewProductService(catalog)
		checkoutSvc := services.NewCheckoutService(nil)
		authSvc := services.NewAuthService(sessions)

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, &routes.Controllers{
			Auth:     controllers.NewAuthController(authSvc),
			Product:  controllers.NewProductController(productSvc),
			Cart:     controllers.NewCartController(carts, productSvc),
			Checkout: controllers.NewCheckoutController(checkoutSvc, carts, orders, authSvc),
			Order:    controllers.NewOrderController(orders),
		})
	})
}

// Handler adapts the gin engine to a serverless function entrypoint.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
