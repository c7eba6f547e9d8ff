package routes

import (
	"pharmahub/addresses"
	"pharmahub/auth"
	"pharmahub/cart"
	"pharmahub/catalog"
	"pharmahub/middleware"
	"pharmahub/orderfeed"
	"pharmahub/orders"
	"pharmahub/profile"
	"pharmahub/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, api *auth.API, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(api.Register))
	router.POST("/api/auth/login", rl.Limit(api.Login))
	router.GET("/api/auth/me", middleware.Authenticate(api.Me))
	router.POST("/api/auth/logout", api.Logout)
	router.POST("/api/auth/refresh", rl.Limit(api.RefreshToken))
}

func AddCatalogRoutes(router *httprouter.Router) {
	router.GET("/api/categories", catalog.GetCategories)
	router.GET("/api/products", catalog.GetProducts)
	router.GET("/api/products/:id", catalog.GetProduct)
}

func AddAddressRoutes(router *httprouter.Router, api *addresses.API) {
	router.GET("/api/addresses", middleware.Authenticate(api.List))
	router.POST("/api/addresses", middleware.Authenticate(api.Create))
	router.PUT("/api/addresses/:id", middleware.Authenticate(api.Update))
	router.DELETE("/api/addresses/:id", middleware.Authenticate(api.Delete))
}

func AddCartRoutes(router *httprouter.Router, api *cart.API) {
	router.GET("/api/cart", middleware.Authenticate(api.Get))
	router.POST("/api/cart", middleware.Authenticate(api.Add))
	router.PUT("/api/cart/:id", middleware.Authenticate(api.UpdateQuantity))
	router.DELETE("/api/cart/:id", middleware.Authenticate(api.Remove))
	router.DELETE("/api/cart", middleware.Authenticate(api.Clear))
}

func AddOrderRoutes(router *httprouter.Router, api *orders.API, hub *orderfeed.Hub) {
	router.GET("/api/orders", middleware.Authenticate(api.List))
	router.GET("/api/orders/:id", middleware.Authenticate(api.GetByID))
	router.POST("/api/orders", middleware.Authenticate(api.Create))
	router.PUT("/api/orders/:id/cancel", middleware.Authenticate(api.Cancel))
	router.PUT("/api/orders/:id/status", middleware.Authenticate(middleware.RequireAdmin(api.SetStatus)))
	router.GET("/api/orders/:id/invoice", middleware.Authenticate(api.Invoice))

	// websocket clients authenticate via query token inside the handler
	router.GET("/ws/orders", orderfeed.WebSocketHandler(hub))
}

func AddUserRoutes(router *httprouter.Router, api *profile.API) {
	router.GET("/api/users", middleware.Authenticate(middleware.RequireAdmin(api.ListUsers)))
	router.GET("/api/users/:id", middleware.Authenticate(api.GetUser))
	router.PUT("/api/users/:id", middleware.Authenticate(api.UpdateUser))
}
