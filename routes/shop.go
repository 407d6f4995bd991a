package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/adityaanand10062000/storefront-api/controllers/cart"
	productcontroller "github.com/adityaanand10062000/storefront-api/controllers/product"
	"github.com/adityaanand10062000/storefront-api/middleware"
)

// SetupShopRoutes registers the catalog and cart endpoints. Everything but
// checkout is open to anonymous visitors; the cart lives in their session.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", productcontroller.ListProducts(db))
	r.GET("/index", productcontroller.ListProducts(db))

	r.GET("/add_to_cart/:product_id", cartControllers.AddToCart(db))
	r.GET("/cart", cartControllers.ViewCart())
	r.GET("/remove_from_cart/:product_id", cartControllers.RemoveFromCart())

	r.GET("/checkout", middleware.RequireAuth, cartControllers.Checkout())
}
