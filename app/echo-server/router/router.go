package router

import (
	"quickBite/internal/middleware"
	"quickBite/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
	users.POST("/logout", handler.Logout, authRequired)
}

func SetupCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler, authRequired echo.MiddlewareFunc) {
	restaurants := api.Group("/restaurants", authRequired)

	restaurants.GET("", handler.ListRestaurants)
	restaurants.GET("/:id/menu", handler.GetRestaurantMenu)

	restaurants.POST("", handler.CreateRestaurant, middleware.AdminOnly())
	restaurants.POST("/:id/menu", handler.AddMenuItem, middleware.AdminOnly())
}

func SetupCartRoutes(api *echo.Group, handler *rest.CartHandler, authRequired echo.MiddlewareFunc) {
	cart := api.Group("/cart", authRequired)

	cart.POST("/add/:item_id", handler.Add)
	cart.GET("", handler.View)
	cart.DELETE("/remove/:item_id", handler.Remove)
}

func SetupCheckoutRoutes(api *echo.Group, handler *rest.CheckoutHandler, authRequired echo.MiddlewareFunc) {
	api.POST("/payment", handler.SelectPayment, authRequired)
	api.GET("/final_order/:payment_method", handler.FinalOrder, authRequired)
}

func SetupOrdersRoutes(api *echo.Group, handler *rest.OrdersHandler, authRequired echo.MiddlewareFunc) {
	orders := api.Group("/orders", authRequired)

	orders.POST("", handler.PlaceOrder)
	orders.GET("", handler.GetAllOrders)
	orders.GET("/:id", handler.GetOrderByID)
}
