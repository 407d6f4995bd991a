package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	userControllers "github.com/adityaanand10062000/storefront-api/controllers/user"
	"github.com/adityaanand10062000/storefront-api/middleware"
)

// SetupAuthRoutes registers registration, login and logout. The credential
// submissions sit behind the per-IP rate limiter.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client) {
	limiter := middleware.RateLimiter(rdb)

	r.GET("/register", userControllers.RegisterForm())
	r.POST("/register", limiter, userControllers.Register(db))

	r.GET("/login", userControllers.LoginForm())
	r.POST("/login", limiter, userControllers.Login(db))

	r.GET("/logout", userControllers.Logout())
}
