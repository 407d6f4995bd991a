package utils

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/adityaanand10062000/storefront-api/models"
)

const cartSessionKey = "cart"

// CartFromSession returns the session cart, or an empty one if the session
// has none yet.
func CartFromSession(c *gin.Context) models.Cart {
	s := sessions.Default(c)
	if cart, ok := s.Get(cartSessionKey).(models.Cart); ok {
		return cart
	}
	return models.Cart{}
}

// SaveCart writes cart back into the session.
func SaveCart(c *gin.Context, cart models.Cart) error {
	s := sessions.Default(c)
	s.Set(cartSessionKey, cart)
	return s.Save()
}

// DropCart removes the cart from the session entirely.
func DropCart(c *gin.Context) error {
	s := sessions.Default(c)
	s.Delete(cartSessionKey)
	return s.Save()
}
