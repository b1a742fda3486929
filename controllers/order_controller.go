package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/efeurhobobullish/SwiftBuy/repositories"
)

type OrderController struct {
	Orders *repositories.OrderRepository
}

func NewOrderController(orders *repositories.OrderRepository) *OrderController {
	return &OrderController{Orders: orders}
}

// @Summary List orders
// @Description Get the orders placed by this session
// @Tags Orders
// @Produce json
// @Param X-Session-Id header string false "Session ID"
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	orders := ctrl.Orders.ListBySession(c.GetString("session_id"))
	c.JSON(200, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}

// @Summary Get order by reference
// @Description Get order details for the order tracking view
// @Tags Orders
// @Produce json
// @Param id path string true "Order reference"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	order, err := ctrl.Orders.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved", "data": order})
}
