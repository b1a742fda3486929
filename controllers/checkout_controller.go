package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/efeurhobobullish/SwiftBuy/models"
	"github.com/efeurhobobullish/SwiftBuy/repositories"
	"github.com/efeurhobobullish/SwiftBuy/services"
)

type CheckoutController struct {
	Checkout *services.CheckoutService
	Carts    *repositories.CartRepository
	Orders   *repositories.OrderRepository
	Auth     *services.AuthService
}

func NewCheckoutController(checkout *services.CheckoutService, carts *repositories.CartRepository, orders *repositories.OrderRepository, auth *services.AuthService) *CheckoutController {
	return &CheckoutController{Checkout: checkout, Carts: carts, Orders: orders, Auth: auth}
}

// @Summary Get delivery options
// @Description List the available delivery cities with fees and estimates
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Router /delivery-options [get]
func (ctrl *CheckoutController) GetDeliveryOptions(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Delivery options retrieved", "data": ctrl.Checkout.DeliveryOptions()})
}

// @Summary Quote checkout pricing
// @Description Recompute the subtotal/fee/total breakdown for the cart and a delivery city
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-Id header string false "Session ID"
// @Param request body models.QuoteRequest true "Quote Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout/quote [post]
func (ctrl *CheckoutController) Quote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "City is required"})
		return
	}

	option, err := ctrl.Checkout.DeliveryOptionByCity(req.City)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "No delivery option for city"})
		return
	}

	cart := ctrl.Carts.Get(c.GetString("session_id"))
	breakdown, err := ctrl.Checkout.ComputeBreakdown(cart, option)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Breakdown computed", "data": breakdown})
}

// @Summary Submit order
// @Description Finalize checkout: charge payment, create the order, clear the cart
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-Id header string false "Session ID"
// @Param request body models.CheckoutRequest true "Checkout Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Submit(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	option, err := ctrl.Checkout.DeliveryOptionByCity(req.City)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "No delivery option for city"})
		return
	}

	sessionID := c.GetString("session_id")
	cart := ctrl.Carts.Get(sessionID)

	// Guest checkout is allowed; the order is stamped when a user is
	// logged in on this session.
	user, _ := ctrl.Auth.CurrentUser(c.Request.Context(), sessionID)

	addr := models.Address{
		Street:     strings.TrimSpace(req.Street),
		City:       option.City,
		State:      option.State,
		PostalCode: strings.TrimSpace(req.PostalCode),
	}

	order, err := ctrl.Checkout.SubmitOrder(c.Request.Context(), cart, option, addr, user, req.PaymentMethod, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyCart):
			c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
		case errors.Is(err, models.ErrIncompleteAddress):
			c.JSON(400, gin.H{"success": false, "message": "Please enter your delivery address"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Payment failed: " + err.Error()})
		}
		return
	}

	ctrl.Orders.Create(sessionID, order)
	cart.Clear()

	c.JSON(201, gin.H{"success": true, "message": "Order created successfully", "data": order})
}
