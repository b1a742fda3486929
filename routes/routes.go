package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/efeurhobobullish/SwiftBuy/controllers"
	"github.com/efeurhobobullish/SwiftBuy/middleware"
)

// Controllers bundles the wired controllers for route registration. The
// stores behind them are owned by the caller (created at startup, passed
// down explicitly).
type Controllers struct {
	Auth     *controllers.AuthController
	Product  *controllers.ProductController
	Cart     *controllers.CartController
	Checkout *controllers.CheckoutController
	Order    *controllers.OrderController
}

func SetupRoutes(router *gin.Engine, ctrl *Controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", ctrl.Auth.Register)
	router.POST("/auth/login", ctrl.Auth.Login)
	router.GET("/categories", ctrl.Product.GetAllCategories)
	router.GET("/products", ctrl.Product.GetAllProducts)
	router.GET("/products/:id", ctrl.Product.GetProductByID)
	router.GET("/delivery-options", ctrl.Checkout.GetDeliveryOptions)

	session := router.Group("/")
	session.Use(middleware.SessionMiddleware())
	{
		session.GET("/cart", ctrl.Cart.GetCart)
		session.POST("/cart/items", ctrl.Cart.AddItem)
		session.PATCH("/cart/items/:productId", ctrl.Cart.UpdateItem)
		session.DELETE("/cart/items/:productId", ctrl.Cart.RemoveItem)
		session.DELETE("/cart", ctrl.Cart.ClearCart)

		session.POST("/checkout/quote", ctrl.Checkout.Quote)
		session.POST("/checkout", ctrl.Checkout.Submit)

		session.GET("/orders", ctrl.Order.GetOrders)
		session.GET("/orders/:id", ctrl.Order.GetOrderByID)
	}

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", ctrl.Auth.GetProfile)
		auth.POST("/auth/logout", ctrl.Auth.Logout)
	}
}
