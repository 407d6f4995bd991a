package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/adityaanand10062000/storefront-api/middleware"
)

// SetupRoutes is the single entry-point that wires the whole HTTP surface
// onto r. rdb may be nil, which disables rate limiting.
func SetupRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client) {
	// Every request resolves its identity once, up front.
	r.Use(middleware.CurrentUser(db))

	SetupShopRoutes(r, db)
	SetupAuthRoutes(r, db, rdb)
}
