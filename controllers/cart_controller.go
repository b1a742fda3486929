package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/efeurhobobullish/SwiftBuy/models"
	"github.com/efeurhobobullish/SwiftBuy/repositories"
	"github.com/efeurhobobullish/SwiftBuy/services"
)

type CartController struct {
	Carts    *repositories.CartRepository
	Products *services.ProductService
}

func NewCartController(carts *repositories.CartRepository, products *services.ProductService) *CartController {
	return &CartController{Carts: carts, Products: products}
}

func (ctrl *CartController) cart(c *gin.Context) *models.Cart {
	return ctrl.Carts.Get(c.GetString("session_id"))
}

func cartPayload(cart *models.Cart) gin.H {
	return gin.H{
		"items":       cart.Items,
		"total_items": cart.TotalItems(),
		"total_price": cart.TotalPrice(),
	}
}

// @Summary Get cart
// @Description Get the session's cart with derived totals
// @Tags Cart
// @Produce json
// @Param X-Session-Id header string false "Session ID"
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart := ctrl.cart(c)
	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": cartPayload(cart)})
}

// @Summary Add item to cart
// @Description Add one unit of a product; an existing line is incremented
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-Id header string false "Session ID"
// @Param request body models.AddCartItemRequest true "Add Item Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	product, err := ctrl.Products.GetProductByID(req.ProductID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	cart := ctrl.cart(c)
	cart.AddItem(product)

	c.JSON(200, gin.H{"success": true, "message": "Item added to cart", "data": cartPayload(cart)})
}

// @Summary Update item quantity
// @Description Set the quantity of a cart line; 0 or below removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-Id header string false "Session ID"
// @Param productId path string true "Product ID"
// @Param request body models.UpdateCartItemRequest true "Quantity Request"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	cart := ctrl.cart(c)
	cart.UpdateQuantity(c.Param("productId"), req.Quantity)

	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": cartPayload(cart)})
}

// @Summary Remove item from cart
// @Description Delete a cart line; absent lines are a no-op
// @Tags Cart
// @Produce json
// @Param X-Session-Id header string false "Session ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cart := ctrl.cart(c)
	cart.RemoveItem(c.Param("productId"))

	c.JSON(200, gin.H{"success": true, "message": "Item removed", "data": cartPayload(cart)})
}

// @Summary Clear cart
// @Description Empty the session's cart unconditionally
// @Tags Cart
// @Produce json
// @Param X-Session-Id header string false "Session ID"
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	cart := ctrl.cart(c)
	cart.Clear()

	c.JSON(200, gin.H{"success": true, "message": "Cart cleared", "data": cartPayload(cart)})
}
