package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"dora-eats/internal/models"
)

// CheckoutOptions lists every enumerated choice the checkout form offers.
type CheckoutOptions struct {
	FulfillmentTypes []models.Choice `json:"fulfillmentTypes"`
	PickupLocations  []models.Choice `json:"pickupLocations"`
	PickupTimeSlots  []models.Choice `json:"pickupTimeSlots"`
	PaymentMethods   []models.Choice `json:"paymentMethods"`
}

func orderNumber() string {
	return fmt.Sprintf("DORA-%d", 10000+rand.IntN(90000))
}

func (s *Service) CheckoutOptions() CheckoutOptions {
	return CheckoutOptions{
		FulfillmentTypes: models.FulfillmentChoices(),
		PickupLocations:  s.options.PickupLocations,
		PickupTimeSlots:  s.options.PickupTimeSlots,
		PaymentMethods:   models.PaymentChoices(),
	}
}

// ValidateOrder returns ErrValidation wrapping a checkout.ErrorSet when any
// rule fails.
func (s *Service) ValidateOrder(_ context.Context, fields models.Fields) (models.OrderRequest, error) {
	req, errs := s.validator.Validate(fields)
	s.metrics.ObserveValidation(errs.Fields())
	if errs != nil {
		return models.OrderRequest{}, fmt.Errorf("%w: %w", ErrValidation, errs)
	}
	return req, nil
}

// PlaceOrder validates the form, then makes exactly one placement call for
// the session's cart. A session cannot place a second order until the first
// call has returned.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, fields models.Fields) (models.PlacedOrder, error) {
	req, err := s.ValidateOrder(ctx, fields)
	if err != nil {
		return models.PlacedOrder{}, err
	}

	release, ok := s.repo.InFlight.Acquire(sessionID)
	if !ok {
		return models.PlacedOrder{}, ErrInFlight
	}
	defer release()

	unlock := s.carts.lock(sessionID)
	cart, _ := s.repo.CartCache.GetCart(sessionID)
	unlock()
	if cart.Empty() {
		return models.PlacedOrder{}, ErrEmptyCart
	}

	s.notify(ctx, Notification{
		Kind:        NotifyProcessing,
		SessionID:   sessionID,
		Title:       "Processing your magical order!",
		Description: "Hold on to your Gadget Hats!",
	})

	order := models.PlacedOrder{
		Number:        s.nextNumber(),
		PlacedAt:      s.now().UTC(),
		Request:       req.Redacted(),
		Lines:         cart.Lines,
		Subtotal:      cart.Subtotal(),
		Currency:      s.money.Symbol,
		EstimatedTime: s.eta,
	}
	log := logrus.WithFields(logrus.Fields{
		"session":     sessionID,
		"order":       order.Number,
		"fulfillment": req.Fulfillment.Kind(),
		"payment":     req.Payment.Method(),
	})

	start := time.Now()
	if err := s.placer.Place(ctx, order); err != nil {
		s.metrics.ObserveSubmission("failed", time.Since(start))
		log.WithError(err).Error("order placement failed")
		s.notify(ctx, Notification{
			Kind:        NotifyFailed,
			SessionID:   sessionID,
			OrderNumber: order.Number,
			Title:       "We could not place your order.",
			Description: ErrSubmission.Error(),
		})
		return models.PlacedOrder{}, fmt.Errorf("%w: %w", ErrSubmission, err)
	}
	s.metrics.ObserveSubmission("placed", time.Since(start))

	s.clearPlaced(sessionID, order.Lines)
	s.repo.OrderCache.PutOrder(order)
	log.WithField("subtotal", order.Subtotal).Info("order placed")

	s.notify(ctx, Notification{
		Kind:        NotifyPlaced,
		SessionID:   sessionID,
		OrderNumber: order.Number,
		Title:       "Your order has been placed!",
		Description: "Estimated time: " + order.EstimatedTime,
	})
	return order, nil
}

// clearPlaced removes what was ordered from the session's cart. Lines added
// while the order was in flight are kept.
func (s *Service) clearPlaced(sessionID string, placed []models.CartLine) {
	unlock := s.carts.lock(sessionID)
	defer unlock()

	cart, ok := s.repo.CartCache.GetCart(sessionID)
	if !ok {
		return
	}
	cart.Subtract(placed)
	if cart.Empty() {
		s.repo.CartCache.DeleteCart(sessionID)
		return
	}
	s.repo.CartCache.PutCart(cart)
}

func (s *Service) GetOrder(number string) (models.PlacedOrder, error) {
	return s.repo.OrderCache.GetOrder(number)
}
