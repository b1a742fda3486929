package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/efeurhobobullish/SwiftBuy/models"
)

// PaymentProcessor is the boundary to the payment provider. A real gateway
// integration can replace MockPaymentProcessor without touching checkout.
type PaymentProcessor interface {
	Charge(ctx context.Context, amount int, email, reference string) error
}

// MockPaymentProcessor approves every charge. It still honors context
// cancellation so callers can abort a submit in flight.
type MockPaymentProcessor struct{}

func (MockPaymentProcessor) Charge(ctx context.Context, amount int, email, reference string) error {
	return ctx.Err()
}

var deliveryOptions = []models.DeliveryOption{
	{City: "Lagos", State: "Lagos", Fee: 1500, EstimatedDays: 1},
	{City: "Abuja", State: "FCT", Fee: 2000, EstimatedDays: 2},
	{City: "Port Harcourt", State: "Rivers", Fee: 2500, EstimatedDays: 3},
	{City: "Kano", State: "Kano", Fee: 3000, EstimatedDays: 4},
	{City: "Ibadan", State: "Oyo", Fee: 2000, EstimatedDays: 2},
	{City: "Benin City", State: "Edo", Fee: 2500, EstimatedDays: 3},
}

// CheckoutService prices carts and finalizes orders. It never mutates the
// cart and never navigates; clearing the cart after a successful submit is
// the caller's job.
type CheckoutService struct {
	payments PaymentProcessor
}

func NewCheckoutService(payments PaymentProcessor) *CheckoutService {
	if payments == nil {
		payments = MockPaymentProcessor{}
	}
	return &CheckoutService{payments: payments}
}

// DeliveryOptions returns the available delivery destinations.
func (s *CheckoutService) DeliveryOptions() []models.DeliveryOption {
	out := make([]models.DeliveryOption, len(deliveryOptions))
	copy(out, deliveryOptions)
	return out
}

// DeliveryOptionByCity finds the option for a city, case-insensitively.
func (s *CheckoutService) DeliveryOptionByCity(city string) (models.DeliveryOption, error) {
	for _, opt := range deliveryOptions {
		if strings.EqualFold(opt.City, strings.TrimSpace(city)) {
			return opt, nil
		}
	}
	return models.DeliveryOption{}, models.ErrUnknownCity
}

// ComputeBreakdown derives the subtotal/fee/total triple for the cart and
// delivery option. It is pure and safe to call on every address keystroke.
func (s *CheckoutService) ComputeBreakdown(cart *models.Cart, option models.DeliveryOption) (models.PricingBreakdown, error) {
	if cart.IsEmpty() {
		return models.PricingBreakdown{}, models.ErrEmptyCart
	}
	subtotal := cart.TotalPrice()
	return models.PricingBreakdown{
		Subtotal:    subtotal,
		DeliveryFee: option.Fee,
		Total:       subtotal + option.Fee,
	}, nil
}

// ValidateAddress checks the one independently required field. City, state
// and postal code default from the selected delivery option.
func (s *CheckoutService) ValidateAddress(addr models.Address) error {
	if strings.TrimSpace(addr.Street) == "" {
		return models.ErrIncompleteAddress
	}
	return nil
}

// SubmitOrder charges the payment boundary and returns the finalized order.
// The order carries a value snapshot of the cart lines; later cart mutations
// do not affect it.
func (s *CheckoutService) SubmitOrder(ctx context.Context, cart *models.Cart, option models.DeliveryOption, addr models.Address, user models.User, paymentMethod, email string) (models.Order, error) {
	breakdown, err := s.ComputeBreakdown(cart, option)
	if err != nil {
		return models.Order{}, err
	}
	if err := s.ValidateAddress(addr); err != nil {
		return models.Order{}, err
	}

	if addr.City == "" {
		addr.City = option.City
	}
	if addr.State == "" {
		addr.State = option.State
	}
	if paymentMethod == "" {
		paymentMethod = "Paystack"
	}
	if email == "" {
		email = user.Email
	}

	reference := generateOrderReference()
	if err := s.payments.Charge(ctx, breakdown.Total, email, reference); err != nil {
		return models.Order{}, err
	}

	now := time.Now()
	return models.Order{
		ID:                reference,
		UserID:            user.ID,
		Items:             cart.Snapshot(),
		TotalAmount:       breakdown.Total,
		Subtotal:          breakdown.Subtotal,
		DeliveryFee:       breakdown.DeliveryFee,
		DeliveryAddress:   addr,
		PaymentMethod:     paymentMethod,
		Status:            models.OrderStatusProcessing,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(time.Duration(option.EstimatedDays) * 24 * time.Hour),
	}, nil
}

// generateOrderReference returns a reference unique per invocation. The
// timestamp keeps references readable, the uuid fragment guarantees two
// submits in the same second still differ.
func generateOrderReference() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().Unix(), uuid.NewString()[:8])
}
