package services

import (
	"amazon-shop/logging"
	"amazon-shop/metrics"
	"amazon-shop/models"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrEmptyCart = errors.New("cart is empty")

type CheckoutService struct {
	orders   OrderStore
	users    UserStore
	notifier OrderNotifier
	now      func() time.Time
}

// NewCheckoutService builds checkout. notifier may be nil.
func NewCheckoutService(orders OrderStore, users UserStore, notifier OrderNotifier) *CheckoutService {
	return &CheckoutService{
		orders:   orders,
		users:    users,
		notifier: notifier,
		now:      time.Now,
	}
}

// Checkout turns the session's cart into an order and empties the cart.
// The cart is only cleared once the order is stored. Guests may check out;
// their orders carry user id 0 and get no confirmation email.
func (s *CheckoutService) Checkout(ctx context.Context, sess *models.Session, req models.CheckoutRequest) (*models.Order, error) {
	if sess.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	items := sess.Cart.Snapshot()
	total, err := models.SumItems(items)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:      sess.UserID,
		Name:        strings.TrimSpace(req.Name),
		Address:     strings.TrimSpace(req.Address),
		PaymentInfo: MaskPaymentInfo(req.PaymentInfo),
		Items:       items,
		TotalCost:   total,
		OrderTime:   s.now().UTC(),
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	sess.Cart.Clear()
	sess.MarkModified()
	metrics.OrdersPlaced.Inc()

	logging.Info().
		Str("order_id", order.ID).
		Int("user_id", order.UserID).
		Int("lines", len(order.Items)).
		Str("total", order.TotalCost.String()).
		Msg("order placed")

	s.notify(ctx, order)
	return order, nil
}

func (s *CheckoutService) notify(ctx context.Context, order *models.Order) {
	if s.notifier == nil || order.UserID == 0 {
		return
	}

	user, err := s.users.FindByID(ctx, order.UserID)
	if err != nil {
		logging.Warn().Err(err).Int("user_id", order.UserID).Msg("order confirmation skipped, user lookup failed")
		return
	}
	if err := s.notifier.SendOrderConfirmation(user.Email, order); err != nil {
		logging.Warn().Err(err).Str("order_id", order.ID).Msg("order confirmation email failed")
	}
}

// MaskPaymentInfo keeps only the last four characters.
func MaskPaymentInfo(info string) string {
	compact := strings.Join(strings.Fields(info), "")
	runes := []rune(compact)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-4:])
}
