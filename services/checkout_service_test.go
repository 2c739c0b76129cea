package services

import (
	"amazon-shop/models"
	"amazon-shop/repositories/memory"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingOrderStore struct{}

func (failingOrderStore) Insert(context.Context, *models.Order) error {
	return errors.New("mongo unavailable")
}

type recordingNotifier struct {
	to     []string
	orders []*models.Order
	err    error
}

func (n *recordingNotifier) SendOrderConfirmation(toEmail string, order *models.Order) error {
	n.to = append(n.to, toEmail)
	n.orders = append(n.orders, order)
	return n.err
}

func checkoutFixture(t *testing.T) (*models.Session, *memory.UserStore) {
	t.Helper()
	users := memory.NewUserStore()
	user := &models.User{Username: "alice", Email: "a@x.com", PasswordHash: "h"}
	require.NoError(t, users.Create(context.Background(), user))

	sess := models.NewSession("sid", "csrf")
	sess.Login(user)
	sess.Cart.Add(models.CartItem{ProductID: "p1", Name: "P", Price: models.USD(1000), Quantity: 2})
	sess.Cart.Add(models.CartItem{ProductID: "p2", Name: "Q", Price: models.USD(34900), Quantity: 1})
	sess.ClearModified()
	return sess, users
}

var validCheckout = models.CheckoutRequest{Name: " Alice ", Address: "1 Main St", PaymentInfo: "4111 1111 1111 1234"}

func TestCheckoutPersistsSnapshotAndClearsCart(t *testing.T) {
	sess, users := checkoutFixture(t)
	orders := memory.NewOrderStore()
	notifier := &recordingNotifier{}
	svc := NewCheckoutService(orders, users, notifier)
	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	before := sess.Cart.Snapshot()
	wantTotal, err := sess.Cart.Total()
	require.NoError(t, err)

	order, err := svc.Checkout(context.Background(), sess, validCheckout)
	require.NoError(t, err)

	assert.True(t, sess.Cart.IsEmpty())
	assert.True(t, sess.Modified())

	stored := orders.All()
	require.Len(t, stored, 1)
	assert.Equal(t, before, stored[0].Items)
	assert.Equal(t, wantTotal, stored[0].TotalCost)
	assert.Equal(t, models.USD(36900), stored[0].TotalCost)
	assert.Equal(t, "Alice", stored[0].Name)
	assert.Equal(t, "1 Main St", stored[0].Address)
	assert.Equal(t, "************1234", stored[0].PaymentInfo)
	assert.Equal(t, fixed, stored[0].OrderTime)
	assert.Equal(t, sess.UserID, stored[0].UserID)
	assert.Equal(t, order.ID, stored[0].ID)

	assert.Equal(t, []string{"a@x.com"}, notifier.to)
}

func TestCheckoutEmptyCart(t *testing.T) {
	sess, users := checkoutFixture(t)
	sess.Cart.Clear()
	orders := memory.NewOrderStore()
	svc := NewCheckoutService(orders, users, nil)

	_, err := svc.Checkout(context.Background(), sess, validCheckout)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, orders.All())
}

func TestGuestCheckoutSkipsConfirmation(t *testing.T) {
	sess, users := checkoutFixture(t)
	sess.Logout()
	orders := memory.NewOrderStore()
	notifier := &recordingNotifier{}
	svc := NewCheckoutService(orders, users, notifier)

	order, err := svc.Checkout(context.Background(), sess, validCheckout)
	require.NoError(t, err)

	assert.Equal(t, 0, order.UserID)
	assert.True(t, sess.Cart.IsEmpty())
	require.Len(t, orders.All(), 1)
	assert.Equal(t, 0, orders.All()[0].UserID)
	assert.Empty(t, notifier.to)
}

func TestCheckoutKeepsCartWhenInsertFails(t *testing.T) {
	sess, users := checkoutFixture(t)
	svc := NewCheckoutService(failingOrderStore{}, users, nil)

	_, err := svc.Checkout(context.Background(), sess, validCheckout)
	assert.Error(t, err)
	assert.Equal(t, 2, sess.Cart.Len())
}

func TestCheckoutSucceedsWhenEmailFails(t *testing.T) {
	sess, users := checkoutFixture(t)
	orders := memory.NewOrderStore()
	svc := NewCheckoutService(orders, users, &recordingNotifier{err: errors.New("smtp down")})

	_, err := svc.Checkout(context.Background(), sess, validCheckout)
	require.NoError(t, err)
	assert.Len(t, orders.All(), 1)
}

func TestMaskPaymentInfo(t *testing.T) {
	assert.Equal(t, "************1234", MaskPaymentInfo("4111 1111 1111 1234"))
	assert.Equal(t, "***", MaskPaymentInfo("abc"))
	assert.Equal(t, "*bcde", MaskPaymentInfo("abcde"))
	assert.Equal(t, "", MaskPaymentInfo(""))
}
