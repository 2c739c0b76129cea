package controllers

import (
	"amazon-shop/logging"
	"amazon-shop/middleware"
	"amazon-shop/models"
	"amazon-shop/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	catalog  *services.CatalogService
	sessions *middleware.SessionManager
}

func NewProductController(catalog *services.CatalogService, sessions *middleware.SessionManager) *ProductController {
	return &ProductController{catalog: catalog, sessions: sessions}
}

// Welcome godoc
// @Summary Welcome page
// @Tags Pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (ctrl *ProductController) Welcome(c *gin.Context) {
	c.HTML(http.StatusOK, "welcome.html", middleware.PageData(c, gin.H{"Title": "Welcome"}))
}

// Home godoc
// @Summary Product catalog
// @Description Lists every product with an add-to-cart form
// @Tags Products
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 500 {string} string "HTML error page"
// @Router /home [get]
func (ctrl *ProductController) Home(c *gin.Context) {
	products, err := ctrl.catalog.ListProducts(c.Request.Context())
	if err != nil {
		logging.Error().Err(err).Msg("failed to list products")
		middleware.RenderError(c, http.StatusInternalServerError, "The catalog is unavailable right now. Please try again later.")
		return
	}

	issueSession(c, ctrl.sessions)
	c.HTML(http.StatusOK, "home.html", middleware.PageData(c, gin.H{
		"Title":    "Products",
		"Products": products,
	}))
}

// ListProducts godoc
// @Summary List products
// @Description Catalog as JSON
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Product}
// @Failure 500 {object} models.ErrorResponse
// @Router /api/products [get]
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	products, err := ctrl.catalog.ListProducts(c.Request.Context())
	if err != nil {
		logging.Error().Err(err).Msg("failed to list products")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve products",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
	})
}
