package controllers

import (
	"amazon-shop/logging"
	"amazon-shop/middleware"
	"amazon-shop/models"
	"amazon-shop/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	checkout *services.CheckoutService
	carts    *services.CartService
	sessions *middleware.SessionManager
}

func NewOrderController(checkout *services.CheckoutService, carts *services.CartService, sessions *middleware.SessionManager) *OrderController {
	return &OrderController{checkout: checkout, carts: carts, sessions: sessions}
}

// CheckoutForm godoc
// @Summary Checkout form
// @Tags Orders
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /checkout [get]
func (ctrl *OrderController) CheckoutForm(c *gin.Context) {
	ctrl.renderCheckout(c, http.StatusOK, models.CheckoutRequest{}, models.FieldErrors{})
}

// Checkout godoc
// @Summary Place an order
// @Description Stores the cart as an order and empties it
// @Tags Orders
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "Recipient name"
// @Param address formData string true "Shipping address"
// @Param payment_info formData string true "Payment information"
// @Param csrf_token formData string true "Anti-forgery token"
// @Success 302 {string} string "Redirect to /home"
// @Failure 400 {string} string "Checkout form with field errors"
// @Failure 403 {string} string "HTML error page"
// @Router /checkout [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var req models.CheckoutRequest
	if errs := bindForm(c, &req); errs != nil {
		sess.AddFlash(models.FlashDanger, "Please correct the errors below.")
		ctrl.renderCheckout(c, http.StatusBadRequest, req, errs)
		return
	}

	order, err := ctrl.checkout.Checkout(c.Request.Context(), sess, req)
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		sess.AddFlash(models.FlashInfo, "Your cart is empty.")
		ctrl.sessions.Redirect(c, "/cart")
		return
	case err != nil:
		logging.Error().Err(err).Int("user_id", sess.UserID).Msg("checkout failed")
		sess.AddFlash(models.FlashDanger, "We could not place your order. Please try again.")
		ctrl.sessions.Redirect(c, "/checkout")
		return
	}

	logging.Debug().Str("order_id", order.ID).Msg("checkout complete")
	sess.AddFlash(models.FlashSuccess, "Order placed successfully!")
	ctrl.sessions.Redirect(c, "/home")
}

func (ctrl *OrderController) renderCheckout(c *gin.Context, status int, form models.CheckoutRequest, errs models.FieldErrors) {
	sess := middleware.CurrentSession(c)

	items, total, err := ctrl.carts.View(&sess.Cart)
	if err != nil {
		logging.Error().Err(err).Str("session_id", sess.ID).Msg("failed to total cart")
		middleware.RenderError(c, http.StatusInternalServerError, "We could not load your cart. Please try again.")
		return
	}

	issueSession(c, ctrl.sessions)
	c.HTML(status, "checkout.html", middleware.PageData(c, gin.H{
		"Title":  "Checkout",
		"Items":  items,
		"Total":  total,
		"Form":   form,
		"Errors": errs,
	}))
}
