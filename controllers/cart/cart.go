package cartControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adityaanand10062000/storefront-api/models"
	"github.com/adityaanand10062000/storefront-api/utils"
)

// GET /add_to_cart/:product_id
//
// AddToCart puts one unit of the product into the session cart. The first
// add of a product snapshots its name, price and image; further adds only
// raise the quantity and keep the original snapshot.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.String(http.StatusNotFound, "Product not found")
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.String(http.StatusNotFound, "Product not found")
			} else {
				c.String(http.StatusInternalServerError, "Failed to look up product")
			}
			return
		}

		cart := utils.CartFromSession(c)
		item := cart.Add(product)
		if err := utils.SaveCart(c, cart); err != nil {
			c.String(http.StatusInternalServerError, "Failed to save cart")
			return
		}

		utils.AddFlash(c, "success", fmt.Sprintf("%s has been added to your cart.", item.Name))

		back := c.Request.Referer()
		if back == "" {
			back = "/"
		}
		c.Redirect(http.StatusFound, back)
	}
}

// GET /cart
//
// ViewCart renders the cart contents and the running total. Pure read, the
// session is not touched.
func ViewCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := utils.CartFromSession(c)
		c.HTML(http.StatusOK, "cart.html", utils.ViewData(c, "Shopping Cart", gin.H{
			"cart":        cart,
			"total_price": cart.Total(),
		}))
	}
}

// GET /remove_from_cart/:product_id
//
// RemoveFromCart drops the product's line from the session cart. Removing a
// product that is not in the cart is a silent no-op.
func RemoveFromCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := utils.CartFromSession(c)
		if cart.Remove(c.Param("product_id")) {
			if err := utils.SaveCart(c, cart); err != nil {
				c.String(http.StatusInternalServerError, "Failed to save cart")
				return
			}
			utils.AddFlash(c, "success", "Item removed from cart.")
		}
		c.Redirect(http.StatusFound, "/cart")
	}
}

// GET /checkout (authenticated)
//
// Checkout discards the whole session cart, even an already empty one, and
// shows the confirmation page. Simplified checkout: no order rows are
// written and no stock is touched until payment processing exists.
func Checkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := utils.DropCart(c); err != nil {
			c.String(http.StatusInternalServerError, "Failed to clear cart")
			return
		}
		c.HTML(http.StatusOK, "order_success.html", utils.ViewData(c, "Thank You!", nil))
	}
}
