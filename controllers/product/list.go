package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adityaanand10062000/storefront-api/models"
	"github.com/adityaanand10062000/storefront-api/utils"
)

// ListProducts renders the storefront, optionally filtered by the `query`
// parameter as a case-insensitive substring of the product name. An empty
// query lists everything.
func ListProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")

		tx := db.Model(&models.Product{})
		if query != "" {
			tx = tx.Where("name ILIKE ?", "%"+query+"%")
		}

		var products []models.Product
		if err := tx.Find(&products).Error; err != nil {
			c.String(http.StatusInternalServerError, "Failed to fetch products")
			return
		}

		c.HTML(http.StatusOK, "index.html", utils.ViewData(c, "Home", gin.H{
			"products": products,
			"query":    query,
		}))
	}
}
