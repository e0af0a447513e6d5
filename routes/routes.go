package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/gymmats-store/gymmats-api/controllers/cart"
	"github.com/gymmats-store/gymmats-api/controllers/diagnostics"
	productcontroller "github.com/gymmats-store/gymmats-api/controllers/product"
	"github.com/gymmats-store/gymmats-api/database"
)

// SetupRoutes is the single entry-point that wires up every endpoint.
func SetupRoutes(r *gin.Engine, store database.Store) {
	r.GET("/", diagnostics.Root)
	r.GET("/test", diagnostics.TestDatabase(store))
	r.POST("/seed", productcontroller.SeedProduct(store))

	api := r.Group("/api")
	{
		api.GET("/products/:slug", productcontroller.GetProductBySlug(store)) // GET /api/products/:slug
		api.POST("/cart/add", cartControllers.AddToCart(store))               // POST /api/cart/add
		api.GET("/cart/:cart_id", cartControllers.GetCart(store))             // GET /api/cart/:cart_id
	}
}
