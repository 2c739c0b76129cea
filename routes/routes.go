package routes

import (
	"amazon-shop/controllers"
	"amazon-shop/middleware"
	"amazon-shop/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Dependencies struct {
	Catalog   *services.CatalogService
	Carts     *services.CartService
	Checkout  *services.CheckoutService
	Auth      *services.AuthService
	Sessions  *middleware.SessionManager
	StaticDir string
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	controllers.RegisterValidators()

	productCtrl := controllers.NewProductController(deps.Catalog, deps.Sessions)
	cartCtrl := controllers.NewCartController(deps.Carts, deps.Sessions)
	orderCtrl := controllers.NewOrderController(deps.Checkout, deps.Carts, deps.Sessions)
	authCtrl := controllers.NewAuthController(deps.Auth, deps.Sessions)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/api/products", productCtrl.ListProducts)
	if deps.StaticDir != "" {
		router.Static("/static", deps.StaticDir)
	}

	csrf := middleware.RequireCSRF()
	login := middleware.RequireLogin(deps.Sessions)

	pages := router.Group("/")
	pages.Use(deps.Sessions.Handler())
	{
		pages.GET("/", productCtrl.Welcome)
		pages.GET("/home", productCtrl.Home)

		pages.POST("/add_to_cart/:product_id", csrf, cartCtrl.AddToCart)
		pages.GET("/remove_from_cart/:product_id", csrf, cartCtrl.RemoveFromCart)
		pages.GET("/cart", cartCtrl.ViewCart)

		pages.GET("/checkout", orderCtrl.CheckoutForm)
		pages.POST("/checkout", csrf, orderCtrl.Checkout)

		pages.GET("/register", authCtrl.RegisterForm)
		pages.POST("/register", csrf, authCtrl.Register)
		pages.GET("/login", authCtrl.LoginForm)
		pages.POST("/login", csrf, authCtrl.Login)
		pages.GET("/logout", login, csrf, authCtrl.Logout)
	}

	router.NoRoute(func(c *gin.Context) {
		middleware.RenderError(c, http.StatusNotFound, "The page you are looking for does not exist.")
	})
}
