package controllers

import (
	"amazon-shop/logging"
	"amazon-shop/middleware"
	"amazon-shop/models"
	"amazon-shop/services"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	carts    *services.CartService
	sessions *middleware.SessionManager
}

func NewCartController(carts *services.CartService, sessions *middleware.SessionManager) *CartController {
	return &CartController{carts: carts, sessions: sessions}
}

// AddToCart godoc
// @Summary Add a product to the cart
// @Description Appends a cart line priced from the catalog, then redirects to /home
// @Tags Cart
// @Accept x-www-form-urlencoded
// @Produce html
// @Param product_id path string true "Product ID"
// @Param quantity formData int true "Quantity (1-1000)"
// @Param csrf_token formData string true "Anti-forgery token"
// @Success 302 {string} string "Redirect to /home"
// @Failure 403 {string} string "HTML error page"
// @Failure 404 {string} string "HTML error page"
// @Router /add_to_cart/{product_id} [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var req models.AddToCartRequest
	if errs := bindForm(c, &req); errs != nil {
		sess.AddFlash(models.FlashDanger, "Please enter a quantity between 1 and 1000.")
		ctrl.sessions.Redirect(c, "/home")
		return
	}

	item, err := ctrl.carts.AddToCart(c.Request.Context(), &sess.Cart, c.Param("product_id"), req.Quantity)
	switch {
	case errors.Is(err, models.ErrProductNotFound):
		middleware.RenderError(c, http.StatusNotFound, "That product does not exist.")
		return
	case errors.Is(err, services.ErrInvalidQuantity):
		sess.AddFlash(models.FlashDanger, "Please enter a quantity between 1 and 1000.")
		ctrl.sessions.Redirect(c, "/home")
		return
	case err != nil:
		logging.Error().Err(err).Str("product_id", c.Param("product_id")).Msg("failed to add to cart")
		sess.AddFlash(models.FlashDanger, "We could not add that item to your cart. Please try again.")
		ctrl.sessions.Redirect(c, "/home")
		return
	}

	sess.MarkModified()
	sess.AddFlash(models.FlashSuccess, fmt.Sprintf("Added %d x %s to your cart.", item.Quantity, item.Name))
	ctrl.sessions.Redirect(c, "/home")
}

// RemoveFromCart godoc
// @Summary Remove a product from the cart
// @Description Removes the first cart line for the product, then redirects to /cart
// @Tags Cart
// @Produce html
// @Param product_id path string true "Product ID"
// @Param csrf_token query string true "Anti-forgery token"
// @Success 302 {string} string "Redirect to /cart"
// @Failure 403 {string} string "HTML error page"
// @Router /remove_from_cart/{product_id} [get]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	if ctrl.carts.RemoveFromCart(&sess.Cart, c.Param("product_id")) {
		sess.MarkModified()
		sess.AddFlash(models.FlashInfo, "Product removed from cart!")
	} else {
		sess.AddFlash(models.FlashInfo, "That product was not in your cart.")
	}
	ctrl.sessions.Redirect(c, "/cart")
}

// ViewCart godoc
// @Summary Show the cart
// @Tags Cart
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /cart [get]
func (ctrl *CartController) ViewCart(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	items, total, err := ctrl.carts.View(&sess.Cart)
	if err != nil {
		logging.Error().Err(err).Str("session_id", sess.ID).Msg("failed to total cart")
		middleware.RenderError(c, http.StatusInternalServerError, "We could not load your cart. Please try again.")
		return
	}

	c.HTML(http.StatusOK, "cart.html", middleware.PageData(c, gin.H{
		"Title": "Cart",
		"Items": items,
		"Total": total,
	}))
}
