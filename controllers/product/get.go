package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymmats-store/gymmats-api/database"
)

// GetProductBySlug returns a single product with its variants and images.
// URL param: /api/products/:slug
func GetProductBySlug(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
			return
		}

		slug := c.Param("slug")
		product, err := store.FindProductBySlug(c.Request.Context(), slug)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
