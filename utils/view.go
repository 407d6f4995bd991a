package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/adityaanand10062000/storefront-api/models"
)

// CurrentUserKey is the gin context key under which the auth middleware
// stores the resolved user for the request.
const CurrentUserKey = "current_user"

// CurrentUser returns the authenticated user for this request, if any.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

// ViewData merges the request-scoped pieces every template needs (current
// user, cart badge, flash messages) with the handler's own data. Call it
// only when actually rendering, it drains the flash queue.
func ViewData(c *gin.Context, title string, data gin.H) gin.H {
	out := gin.H{"title": title}
	for k, v := range data {
		out[k] = v
	}

	out["cart_total_quantity"] = CartFromSession(c).Units()
	if user, ok := CurrentUser(c); ok {
		out["current_user"] = user
	}
	out["flashes"] = TakeFlashes(c)
	return out
}
